package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/config"
	"github.com/umalmyha/imaging-leads/internal/infra"
	"google.golang.org/grpc"
)

const connectTimeout = 5 * time.Second

// @title       Imaging leads API
// @version     1.0
// @description Lead intake for medical imaging price comparison site and staff review dashboard.
// @BasePath    /
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name Authorization
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("unknown log level %s - %v", cfg.LogLevel, err)
	}
	logrus.SetLevel(lvl)

	conns, err := connect(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer disconnect(conns)

	svcs, err := infra.BuildServices(cfg, conns)
	if err != nil {
		logrus.Fatalf("failed to build services - %v", err)
	}

	if err := ensureAdmin(cfg.AuthCfg.AdminCfg, svcs); err != nil {
		logrus.Fatal(err)
	}

	start(cfg, svcs)
}

func connect(cfg *config.Config) (infra.Connections, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var conns infra.Connections

	pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		return conns, err
	}
	conns.Postgres = pgPool

	if cfg.StorageBackend == config.StorageMongo {
		mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			disconnect(conns)
			return conns, err
		}
		conns.Mongo = mongoClient
	}

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		disconnect(conns)
		return conns, err
	}
	conns.Redis = redisClient

	conns.Publisher = infra.Publisher(cfg.KafkaCfg)
	return conns, nil
}

func disconnect(conns infra.Connections) {
	if conns.Publisher != nil {
		if err := conns.Publisher.Close(); err != nil {
			logrus.Errorf("failed to close events publisher - %v", err)
		}
	}

	if conns.Redis != nil {
		if err := conns.Redis.Close(); err != nil {
			logrus.Errorf("failed to close redis connection - %v", err)
		}
	}

	if conns.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := conns.Mongo.Disconnect(ctx); err != nil {
			logrus.Errorf("failed to disconnect from mongo - %v", err)
		}
	}

	if conns.Postgres != nil {
		conns.Postgres.Close()
	}
}

func ensureAdmin(cfg config.AdminCfg, svcs *infra.Services) error {
	if cfg.Email == "" || cfg.Password == "" {
		logrus.Warn("bootstrap staff account is not configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := svcs.Auth.EnsureStaff(ctx, cfg.Email, cfg.Password); err != nil {
		return fmt.Errorf("failed to ensure bootstrap staff account - %w", err)
	}
	return nil
}

func start(cfg *config.Config, svcs *infra.Services) {
	app := infra.Router(cfg, svcs)
	grpcSrv := infra.GrpcServer(svcs)

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 2)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port))
	}()

	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GrpcCfg.Port))
		if err != nil {
			errorCh <- fmt.Errorf("failed to listen grpc port - %w", err)
			return
		}
		errorCh <- grpcSrv.Serve(lis)
	}()

	select {
	case <-shutdownCh:
		logrus.Info("shutdown signal has been sent, stopping the servers...")
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, grpc.ErrServerStopped) {
			logrus.Errorf("shutting down the servers, unexpected error occurred - %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
	defer cancel()

	grpcSrv.GracefulStop()
	if err := app.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to stop server gracefully - %v", err)
	}
}
