package infra

import (
	"context"
	"fmt"

	"github.com/umalmyha/imaging-leads/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongodb connects to mongo and checks primary responds
func Mongodb(ctx context.Context, cfg config.MongoCfg) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to mongo - %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("didn't get response from mongo after sending ping request - %w", err)
	}
	return client, nil
}
