package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table is a physical table in the restaurant. Orders reference tables
// by number, not by id, so removing a table never invalidates orders.
type Table struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"docId"`
	TableNo   int                `bson:"tableNo" json:"tableNo"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
