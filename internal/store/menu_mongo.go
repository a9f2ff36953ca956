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

// MenuMongo persists menu items in the "menuItems" collection.
type MenuMongo struct {
	Coll *mongo.Collection
}

func NewMenuMongo(db *mongo.Database) *MenuMongo {
	return &MenuMongo{Coll: db.Collection("menuItems")}
}

func (s *MenuMongo) Add(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item.ID = primitive.NilObjectID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	result, err := s.Coll.InsertOne(ctx, item)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to insert menu item: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return item, nil
}

func (s *MenuMongo) Update(ctx context.Context, id string, upd MenuItemUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":     upd.Name,
		"price":    upd.Price,
		"category": upd.Category,
		"image":    upd.Image,
		"benefits": upd.Benefits,
	}})
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuMongo) SetAvailability(ctx context.Context, id string, available bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"available": available}})
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuMongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.Coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuMongo) List(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

func (s *MenuMongo) Count(ctx context.Context) (int64, error) {
	return s.Coll.CountDocuments(ctx, bson.M{})
}
