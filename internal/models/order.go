package models

import "time"

// OrderItem is a snapshot of a menu item at the moment the order was
// placed. Later menu edits do not touch it.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Notes    string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Subtotal returns price x quantity for this line.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CustomerInfo carries free-form metadata the customer attached to the
// order.
type CustomerInfo struct {
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Order is a table's submitted set of line items plus its lifecycle
// status. Orders are append-only: after creation only the status ever
// changes, and only through the two guarded transitions.
type Order struct {
	OrderID      string       `bson:"orderID" json:"id"`
	TableNo      string       `bson:"tableNo" json:"tableNo"`
	Items        []OrderItem  `bson:"items" json:"items"`
	CustomerInfo CustomerInfo `bson:"customerInfo" json:"customerInfo"`
	Status       OrderStatus  `bson:"status" json:"status"`
	Timestamp    time.Time    `bson:"timestamp" json:"timestamp"`
	TotalAmount  float64      `bson:"totalAmount" json:"totalAmount"`
}
