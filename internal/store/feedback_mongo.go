package store

import (
	"context"
	"fmt"
	"time"

	"restaurant-foh-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackMongo persists customer feedback in the "feedbacks"
// collection. Append-only: no update or delete exists.
type FeedbackMongo struct {
	Coll *mongo.Collection
}

func NewFeedbackMongo(db *mongo.Database) *FeedbackMongo {
	return &FeedbackMongo{Coll: db.Collection("feedbacks")}
}

func (s *FeedbackMongo) Append(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	fb.ID = primitive.NilObjectID
	if fb.Timestamp.IsZero() {
		fb.Timestamp = time.Now()
	}
	result, err := s.Coll.InsertOne(ctx, fb)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("failed to insert feedback: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		fb.ID = oid
	}
	return fb, nil
}

func (s *FeedbackMongo) List(ctx context.Context) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	if entries == nil {
		entries = []models.Feedback{}
	}
	return entries, nil
}
