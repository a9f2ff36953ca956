// Package engine drives every order through its lifecycle:
// pending -> ready -> completed. It is the only writer of orders; the
// kitchen, waiter and manager views are read-only projections computed
// in projections.go.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEmptyTable = errors.New("table number is required")
	ErrEmptyItems = errors.New("at least one item is required")
	// ErrInvalidTransition is returned when an order is not in the
	// source state a transition requires. Transitions never skip a
	// state and never move backward.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")
)

type Engine struct {
	orders store.OrderStore
}

func New(orders store.OrderStore) *Engine {
	return &Engine{orders: orders}
}

// PlaceOrder creates a new pending order from a cart. Item prices and
// quantities are normalized before the total is computed: a price that
// is not a usable number becomes 0, a quantity below 1 becomes 1. The
// total is captured here and never recomputed, so menu edits cannot
// retroactively change what a table owes.
func (e *Engine) PlaceOrder(ctx context.Context, tableNo string, items []models.OrderItem, info models.CustomerInfo) (models.Order, error) {
	tableNo = strings.TrimSpace(tableNo)
	if tableNo == "" {
		return models.Order{}, ErrEmptyTable
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyItems
	}

	normalized := make([]models.OrderItem, len(items))
	total := 0.0
	for i, item := range items {
		item.Price = normalizePrice(item.Price)
		item.Quantity = normalizeQuantity(item.Quantity)
		normalized[i] = item
		total += item.Subtotal()
	}

	order := models.Order{
		OrderID:      newOrderID(),
		TableNo:      tableNo,
		Items:        normalized,
		CustomerInfo: info,
		Status:       models.StatusPending,
		Timestamp:    time.Now(),
		TotalAmount:  total,
	}
	if err := e.orders.Append(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("failed to place order: %w", err)
	}
	return order, nil
}

// MarkReady moves a pending order to ready. The kitchen calls this.
func (e *Engine) MarkReady(ctx context.Context, orderID string) (models.Order, error) {
	return e.transition(ctx, orderID, models.StatusPending)
}

// MarkCompleted moves a ready order to completed. The waiter calls
// this after serving the table. completed is terminal.
func (e *Engine) MarkCompleted(ctx context.Context, orderID string) (models.Order, error) {
	return e.transition(ctx, orderID, models.StatusReady)
}

func (e *Engine) transition(ctx context.Context, orderID string, from models.OrderStatus) (models.Order, error) {
	to, ok := from.Next()
	if !ok {
		return models.Order{}, fmt.Errorf("%w: no transition out of %s", ErrInvalidTransition, from)
	}
	err := e.orders.UpdateStatus(ctx, orderID, from, to)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Order{}, ErrOrderNotFound
	case errors.Is(err, store.ErrConflict):
		return models.Order{}, fmt.Errorf("%w: order %s is not %s", ErrInvalidTransition, orderID, from)
	case err != nil:
		return models.Order{}, err
	}
	return e.orders.Get(ctx, orderID)
}

func normalizePrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}

func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// newOrderID combines the creation instant with a random suffix so ids
// stay unique across devices without coordination.
func newOrderID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
