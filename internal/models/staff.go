package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffMember is a waiter or kitchen staff record. The SecretID is the
// login credential; it is returned exactly once at creation and never
// echoed back afterwards.
type StaffMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"docId"`
	StaffID   string             `bson:"id" json:"id"` // e.g., "WAITER-1756712345678"
	Name      string             `bson:"name" json:"name"`
	SecretID  string             `bson:"secretID" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Manager is the singleton-per-id manager profile mirrored into the
// store on login.
type Manager struct {
	ManagerID string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
