package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is an append-only customer feedback entry. There is no
// update or delete operation anywhere in the system.
type Feedback struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	TableNo      string             `bson:"tableNo,omitempty" json:"tableNo,omitempty"`
	Message      string             `bson:"message" json:"message"`
	Rating       int                `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5, 0 when not given
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
