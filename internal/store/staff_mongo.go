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

// StaffMongo persists staff credentials. Waiters and kitchen staff
// live in separate collections, mirroring the store layout the rest of
// the system subscribes to.
type StaffMongo struct {
	DB *mongo.Database
}

func NewStaffMongo(db *mongo.Database) *StaffMongo {
	return &StaffMongo{DB: db}
}

func (s *StaffMongo) collection(role models.Role) (*mongo.Collection, error) {
	switch role {
	case models.RoleWaiter:
		return s.DB.Collection("waiters"), nil
	case models.RoleKitchen:
		return s.DB.Collection("kitchenStaff"), nil
	}
	return nil, fmt.Errorf("no staff collection for role %q", role)
}

func (s *StaffMongo) Add(ctx context.Context, role models.Role, member models.StaffMember) (models.StaffMember, error) {
	coll, err := s.collection(role)
	if err != nil {
		return models.StaffMember{}, err
	}
	member.ID = primitive.NilObjectID
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	result, err := coll.InsertOne(ctx, member)
	if err != nil {
		return models.StaffMember{}, fmt.Errorf("failed to insert staff member: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}
	return member, nil
}

// Remove deletes a staff record. Removing an absent record is a no-op.
func (s *StaffMongo) Remove(ctx context.Context, role models.Role, docID string) error {
	coll, err := s.collection(role)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return nil
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

func (s *StaffMongo) ListByRole(ctx context.Context, role models.Role) ([]models.StaffMember, error) {
	coll, err := s.collection(role)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.StaffMember
	if err = cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	if members == nil {
		members = []models.StaffMember{}
	}
	return members, nil
}
