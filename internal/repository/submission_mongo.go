package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umalmyha/imaging-leads/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

const (
	submissionsCollection = "lead_submissions"
	countersCollection    = "counters"
)

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

type mongoSubmissionRepository struct {
	db *mongo.Database
}

// NewMongoSubmissionRepository builds mongo SubmissionRepository
func NewMongoSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepository{db: db}
}

func (r *mongoSubmissionRepository) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	var s model.Submission
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *mongoSubmissionRepository) FindAll(ctx context.Context) ([]model.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	subs := make([]model.Submission, 0)
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoSubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}

	doc := *s
	doc.ID = id
	doc.Version = 1
	doc.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.collection().InsertOne(ctx, &doc); err != nil {
		return err
	}

	*s = doc
	return nil
}

func (r *mongoSubmissionRepository) Update(ctx context.Context, s *model.Submission, expectedVersion int) error {
	filter := bson.M{"_id": s.ID, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{"status": s.Status, "notes": s.Notes},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if res.MatchedCount > 0 {
		s.Version = expectedVersion + 1
		return nil
	}

	count, err := r.collection().CountDocuments(ctx, bson.M{"_id": s.ID})
	if err != nil {
		return err
	}

	if count == 0 {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("submission %d doesn't exist", s.ID))
	}
	return apperrors.ErrVersionConflict
}

func (r *mongoSubmissionRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("submission %d doesn't exist", id))
	}
	return nil
}

func (r *mongoSubmissionRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var c counter
	err := r.db.Collection(countersCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": submissionsCollection}, bson.M{"$inc": bson.M{"seq": 1}}, opts).
		Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}

func (r *mongoSubmissionRepository) collection() *mongo.Collection {
	return r.db.Collection(submissionsCollection)
}
