// Package store holds one repository per persisted collection. The
// mongo implementations talk to the shared document store; the memory
// implementations back tests and serve as the device-local cache
// shape. Both sides of an interface must behave identically.
package store

import (
	"context"
	"errors"

	"restaurant-foh-api-server/internal/models"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness rule is violated,
	// e.g. adding a table number that is already registered.
	ErrDuplicate = errors.New("already exists")
	// ErrConflict is returned when a conditional write found the
	// document in a different state than expected.
	ErrConflict = errors.New("conflicting state")
)

// MenuItemUpdate carries the manager-editable fields of a menu item.
// Availability is deliberately not here: toggling it is a separate
// operation with separate authorization.
type MenuItemUpdate struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Benefits string  `json:"benefits"`
}

type MenuStore interface {
	Add(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	Update(ctx context.Context, id string, upd MenuItemUpdate) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

type TableStore interface {
	Add(ctx context.Context, tableNo int) (models.Table, error)
	Remove(ctx context.Context, docID string) error
	List(ctx context.Context) ([]models.Table, error)
}

type StaffStore interface {
	Add(ctx context.Context, role models.Role, member models.StaffMember) (models.StaffMember, error)
	Remove(ctx context.Context, role models.Role, docID string) error
	ListByRole(ctx context.Context, role models.Role) ([]models.StaffMember, error)
}

type OrderStore interface {
	Append(ctx context.Context, order models.Order) error
	Get(ctx context.Context, orderID string) (models.Order, error)
	// UpdateStatus moves an order from one status to the next as a
	// single conditional write. ErrConflict when the order is not in
	// the expected source status.
	UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) error
	List(ctx context.Context) ([]models.Order, error)
}

type FeedbackStore interface {
	Append(ctx context.Context, fb models.Feedback) (models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type ManagerStore interface {
	Save(ctx context.Context, m models.Manager) error
	Get(ctx context.Context, managerID string) (models.Manager, error)
}
