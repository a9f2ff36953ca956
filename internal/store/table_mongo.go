package store

import (
	"context"
	"fmt"
	"time"

	"restaurant-foh-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TableMongo persists tables in the "tables" collection.
type TableMongo struct {
	Coll *mongo.Collection
}

func NewTableMongo(db *mongo.Database) *TableMongo {
	return &TableMongo{Coll: db.Collection("tables")}
}

func (s *TableMongo) Add(ctx context.Context, tableNo int) (models.Table, error) {
	// Duplicate table numbers are rejected.
	count, err := s.Coll.CountDocuments(ctx, bson.M{"tableNo": tableNo})
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to check for existing table: %w", err)
	}
	if count > 0 {
		return models.Table{}, ErrDuplicate
	}

	table := models.Table{
		TableNo:   tableNo,
		Active:    true,
		CreatedAt: time.Now(),
	}
	result, err := s.Coll.InsertOne(ctx, table)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to insert table: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		table.ID = oid
	}
	return table, nil
}

// Remove deletes a table. Removing an absent table is a no-op.
func (s *TableMongo) Remove(ctx context.Context, docID string) error {
	oid, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return nil
	}
	if _, err := s.Coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return nil
}

func (s *TableMongo) List(ctx context.Context) ([]models.Table, error) {
	cursor, err := s.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer cursor.Close(ctx)

	var tables []models.Table
	if err = cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}
	if tables == nil {
		tables = []models.Table{}
	}
	return tables, nil
}
