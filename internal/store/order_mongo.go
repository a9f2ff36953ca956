package store

import (
	"context"
	"fmt"

	"restaurant-foh-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderMongo persists orders in the "orders" collection. Orders are
// shared state: every device's kitchen/waiter/manager view reads the
// same collection.
type OrderMongo struct {
	Coll *mongo.Collection
}

func NewOrderMongo(db *mongo.Database) *OrderMongo {
	return &OrderMongo{Coll: db.Collection("orders")}
}

func (s *OrderMongo) Append(ctx context.Context, order models.Order) error {
	if _, err := s.Coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (s *OrderMongo) Get(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := s.Coll.FindOne(ctx, bson.M{"orderID": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("failed to retrieve order: %w", err)
	}
	if !order.Status.Valid() {
		return models.Order{}, fmt.Errorf("order %s has unknown status %q", order.OrderID, order.Status)
	}
	return order, nil
}

// UpdateStatus is a single conditional write: the filter requires the
// expected source status, so two devices racing on the same transition
// cannot both apply it.
func (s *OrderMongo) UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) error {
	result, err := s.Coll.UpdateOne(ctx,
		bson.M{"orderID": orderID, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing order from one in the wrong state.
		count, err := s.Coll.CountDocuments(ctx, bson.M{"orderID": orderID})
		if err != nil {
			return fmt.Errorf("failed to check order existence: %w", err)
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

func (s *OrderMongo) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := s.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	for _, o := range orders {
		if !o.Status.Valid() {
			return nil, fmt.Errorf("order %s has unknown status %q", o.OrderID, o.Status)
		}
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
