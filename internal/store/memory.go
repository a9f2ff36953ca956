package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"restaurant-foh-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory twins of the mongo stores. Local state is a cache of the
// shared store, never a second source of truth; these implement the
// same interfaces so the engine and handlers cannot tell the
// difference. They also back the package tests.

type MenuMemory struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMenuMemory() *MenuMemory { return &MenuMemory{} }

func (s *MenuMemory) Add(_ context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	s.items = append(s.items, item)
	return item, nil
}

func (s *MenuMemory) Update(_ context.Context, id string, upd MenuItemUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items[i].Name = upd.Name
			s.items[i].Price = upd.Price
			s.items[i].Category = upd.Category
			s.items[i].Image = upd.Image
			s.items[i].Benefits = upd.Benefits
			return nil
		}
	}
	return ErrNotFound
}

func (s *MenuMemory) SetAvailability(_ context.Context, id string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items[i].Available = available
			return nil
		}
	}
	return ErrNotFound
}

func (s *MenuMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MenuMemory) List(_ context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MenuMemory) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

type TableMemory struct {
	mu     sync.RWMutex
	tables []models.Table
}

func NewTableMemory() *TableMemory { return &TableMemory{} }

func (s *TableMemory) Add(_ context.Context, tableNo int) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tables {
		if t.TableNo == tableNo {
			return models.Table{}, ErrDuplicate
		}
	}
	table := models.Table{
		ID:        primitive.NewObjectID(),
		TableNo:   tableNo,
		Active:    true,
		CreatedAt: time.Now(),
	}
	s.tables = append(s.tables, table)
	return table, nil
}

func (s *TableMemory) Remove(_ context.Context, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tables {
		if s.tables[i].ID.Hex() == docID {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *TableMemory) List(_ context.Context) ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Table, len(s.tables))
	copy(out, s.tables)
	return out, nil
}

type StaffMemory struct {
	mu     sync.RWMutex
	byRole map[models.Role][]models.StaffMember
}

func NewStaffMemory() *StaffMemory {
	return &StaffMemory{byRole: make(map[models.Role][]models.StaffMember)}
}

func (s *StaffMemory) Add(_ context.Context, role models.Role, member models.StaffMember) (models.StaffMember, error) {
	if role != models.RoleWaiter && role != models.RoleKitchen {
		return models.StaffMember{}, fmt.Errorf("no staff collection for role %q", role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	member.ID = primitive.NewObjectID()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	s.byRole[role] = append(s.byRole[role], member)
	return member, nil
}

func (s *StaffMemory) Remove(_ context.Context, role models.Role, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := s.byRole[role]
	for i := range members {
		if members[i].ID.Hex() == docID {
			s.byRole[role] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *StaffMemory) ListByRole(_ context.Context, role models.Role) ([]models.StaffMember, error) {
	if role != models.RoleWaiter && role != models.RoleKitchen {
		return nil, fmt.Errorf("no staff collection for role %q", role)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StaffMember, len(s.byRole[role]))
	copy(out, s.byRole[role])
	return out, nil
}

type OrderMemory struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderMemory() *OrderMemory { return &OrderMemory{} }

func (s *OrderMemory) Append(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *OrderMemory) Get(_ context.Context, orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *OrderMemory) UpdateStatus(_ context.Context, orderID string, from, to models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			if s.orders[i].Status != from {
				return ErrConflict
			}
			s.orders[i].Status = to
			return nil
		}
	}
	return ErrNotFound
}

func (s *OrderMemory) List(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

type FeedbackMemory struct {
	mu      sync.RWMutex
	entries []models.Feedback
}

func NewFeedbackMemory() *FeedbackMemory { return &FeedbackMemory{} }

func (s *FeedbackMemory) Append(_ context.Context, fb models.Feedback) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb.ID = primitive.NewObjectID()
	if fb.Timestamp.IsZero() {
		fb.Timestamp = time.Now()
	}
	s.entries = append(s.entries, fb)
	return fb, nil
}

func (s *FeedbackMemory) List(_ context.Context) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Feedback, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

type ManagerMemory struct {
	mu       sync.RWMutex
	managers map[string]models.Manager
}

func NewManagerMemory() *ManagerMemory {
	return &ManagerMemory{managers: make(map[string]models.Manager)}
}

func (s *ManagerMemory) Save(_ context.Context, m models.Manager) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.managers[m.ManagerID]; ok {
		m.CreatedAt = existing.CreatedAt
	} else if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.managers[m.ManagerID] = m
	return nil
}

func (s *ManagerMemory) Get(_ context.Context, managerID string) (models.Manager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.managers[managerID]
	if !ok {
		return models.Manager{}, ErrNotFound
	}
	return m, nil
}
