package models

import "strings"

// Role identifies what a logged-in user is allowed to do.
type Role string

const (
	RoleWaiter  Role = "WAITER"
	RoleKitchen Role = "KITCHEN"
	RoleManager Role = "MANAGER"
)

// ParseRole normalizes free-form input ("waiter", "Kitchen") into a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleWaiter:
		return RoleWaiter, true
	case RoleKitchen:
		return RoleKitchen, true
	case RoleManager:
		return RoleManager, true
	}
	return "", false
}

func (r Role) Valid() bool {
	return r == RoleWaiter || r == RoleKitchen || r == RoleManager
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusReady || s == StatusCompleted
}

// Next returns the only status an order in state s may move to.
// completed is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	}
	return "", false
}
