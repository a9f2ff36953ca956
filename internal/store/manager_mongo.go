package store

import (
	"context"
	"fmt"
	"time"

	"restaurant-foh-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ManagerMongo mirrors manager profiles into the "managers"
// collection, one document per manager id.
type ManagerMongo struct {
	Coll *mongo.Collection
}

func NewManagerMongo(db *mongo.Database) *ManagerMongo {
	return &ManagerMongo{Coll: db.Collection("managers")}
}

func (s *ManagerMongo) Save(ctx context.Context, m models.Manager) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.Coll.UpdateOne(ctx,
		bson.M{"_id": m.ManagerID},
		bson.M{"$set": bson.M{"name": m.Name, "email": m.Email}, "$setOnInsert": bson.M{"createdAt": m.CreatedAt}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to save manager: %w", err)
	}
	return nil
}

func (s *ManagerMongo) Get(ctx context.Context, managerID string) (models.Manager, error) {
	var m models.Manager
	err := s.Coll.FindOne(ctx, bson.M{"_id": managerID}).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Manager{}, ErrNotFound
		}
		return models.Manager{}, fmt.Errorf("failed to retrieve manager: %w", err)
	}
	return m, nil
}
