package engine

import (
	"context"
	"sort"
	"strconv"
	"time"

	"restaurant-foh-api-server/internal/models"
)

// Projections are recomputed on every read. They hold no state of
// their own; the order collection is the single source of truth.

// KitchenQueue returns every order still in flight, oldest first.
func (e *Engine) KitchenQueue(ctx context.Context) ([]models.Order, error) {
	orders, err := e.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	queue := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != models.StatusCompleted {
			queue = append(queue, o)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Timestamp.Before(queue[j].Timestamp)
	})
	return queue, nil
}

// TableOrders is one table's active orders as the waiter sees them.
type TableOrders struct {
	TableNo string         `json:"tableNo"`
	Orders  []models.Order `json:"orders"`
}

// WaiterTables groups non-completed orders per table. A table appears
// here iff it has at least one active order.
func (e *Engine) WaiterTables(ctx context.Context) ([]TableOrders, error) {
	orders, err := e.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	byTable := make(map[string][]models.Order)
	var tableOrder []string
	for _, o := range orders {
		if o.Status == models.StatusCompleted {
			continue
		}
		if _, seen := byTable[o.TableNo]; !seen {
			tableOrder = append(tableOrder, o.TableNo)
		}
		byTable[o.TableNo] = append(byTable[o.TableNo], o)
	}

	sort.SliceStable(tableOrder, func(i, j int) bool {
		a, aerr := strconv.Atoi(tableOrder[i])
		b, berr := strconv.Atoi(tableOrder[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return tableOrder[i] < tableOrder[j]
	})

	result := make([]TableOrders, 0, len(tableOrder))
	for _, tableNo := range tableOrder {
		result = append(result, TableOrders{TableNo: tableNo, Orders: byTable[tableNo]})
	}
	return result, nil
}

// Overview is the manager's aggregate dashboard.
type Overview struct {
	DailyRevenue   float64 `json:"dailyRevenue"`
	DailyCustomers int     `json:"dailyCustomers"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCustomers int     `json:"totalCustomers"`
	TopItem        string  `json:"topItem"`
	TopItemCount   int     `json:"topItemCount"`
}

// ManagerOverview computes revenue and customer counts over completed
// orders, split into today (calendar-day equality against now) and
// all-time. The most-ordered item sums quantities across ALL orders
// regardless of status; ties go to the item seen first.
func (e *Engine) ManagerOverview(ctx context.Context, now time.Time) (Overview, error) {
	orders, err := e.orders.List(ctx)
	if err != nil {
		return Overview{}, err
	}

	var ov Overview
	dailyTables := make(map[string]struct{})
	totalTables := make(map[string]struct{})
	itemCounts := make(map[string]int)
	var itemOrder []string

	for _, o := range orders {
		for _, item := range o.Items {
			if _, seen := itemCounts[item.Name]; !seen {
				itemOrder = append(itemOrder, item.Name)
			}
			itemCounts[item.Name] += item.Quantity
		}

		if o.Status != models.StatusCompleted {
			continue
		}
		ov.TotalRevenue += o.TotalAmount
		totalTables[o.TableNo] = struct{}{}
		if sameDay(o.Timestamp, now) {
			ov.DailyRevenue += o.TotalAmount
			dailyTables[o.TableNo] = struct{}{}
		}
	}

	ov.DailyCustomers = len(dailyTables)
	ov.TotalCustomers = len(totalTables)
	for _, name := range itemOrder {
		if itemCounts[name] > ov.TopItemCount {
			ov.TopItem = name
			ov.TopItemCount = itemCounts[name]
		}
	}
	return ov, nil
}

// AllOrders returns the full order history for the manager view.
func (e *Engine) AllOrders(ctx context.Context) ([]models.Order, error) {
	return e.orders.List(ctx)
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
