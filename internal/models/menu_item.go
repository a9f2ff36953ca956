package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a dish on the menu. Orders copy name/price at creation
// time, so editing an item never changes historical orders.
type MenuItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Category  string             `bson:"category" json:"category"` // e.g., "South Indian", "Chinese"
	Image     string             `bson:"image" json:"image"`       // image URL (S3/CloudFront)
	Available bool               `bson:"available" json:"available"`
	Benefits  string             `bson:"benefits" json:"benefits"` // short description shown to customers
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
