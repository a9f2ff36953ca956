package engine

import (
	"context"
	"testing"
	"time"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, orders *store.OrderMemory, id, tableNo string, status models.OrderStatus, ts time.Time, total float64, items ...models.OrderItem) {
	t.Helper()
	require.NoError(t, orders.Append(context.Background(), models.Order{
		OrderID:     id,
		TableNo:     tableNo,
		Items:       items,
		Status:      status,
		Timestamp:   ts,
		TotalAmount: total,
	}))
}

func TestKitchenQueueExcludesCompletedAndSortsAscending(t *testing.T) {
	e, orders := newTestEngine()
	now := time.Now()

	seedOrder(t, orders, "b", "2", models.StatusPending, now, 100)
	seedOrder(t, orders, "a", "1", models.StatusReady, now.Add(-time.Hour), 50)
	seedOrder(t, orders, "c", "3", models.StatusCompleted, now.Add(-2*time.Hour), 75)

	queue, err := e.KitchenQueue(context.Background())
	require.NoError(t, err)

	require.Len(t, queue, 2)
	assert.Equal(t, "a", queue[0].OrderID)
	assert.Equal(t, "b", queue[1].OrderID)
}

func TestWaiterTablesGroupsActiveOrders(t *testing.T) {
	e, orders := newTestEngine()
	now := time.Now()

	seedOrder(t, orders, "o1", "2", models.StatusPending, now, 100)
	seedOrder(t, orders, "o2", "2", models.StatusReady, now, 60)
	seedOrder(t, orders, "o3", "10", models.StatusPending, now, 40)
	// Table 1's only order is completed, so the table is not active.
	seedOrder(t, orders, "o4", "1", models.StatusCompleted, now, 80)

	tables, err := e.WaiterTables(context.Background())
	require.NoError(t, err)

	require.Len(t, tables, 2)
	assert.Equal(t, "2", tables[0].TableNo)
	require.Len(t, tables[0].Orders, 2)
	assert.Equal(t, "10", tables[1].TableNo)
	require.Len(t, tables[1].Orders, 1)
}

func TestManagerOverviewAggregates(t *testing.T) {
	e, orders := newTestEngine()
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	seedOrder(t, orders, "o1", "5", models.StatusCompleted, now, 240,
		models.OrderItem{Name: "Dosa", Quantity: 2})
	seedOrder(t, orders, "o2", "6", models.StatusCompleted, yesterday, 90,
		models.OrderItem{Name: "Idli", Quantity: 1})
	// Pending orders contribute to the top item but not to revenue.
	seedOrder(t, orders, "o3", "5", models.StatusPending, now, 500,
		models.OrderItem{Name: "Sushi", Quantity: 1})

	overview, err := e.ManagerOverview(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 240.0, overview.DailyRevenue)
	assert.Equal(t, 1, overview.DailyCustomers)
	assert.Equal(t, 330.0, overview.TotalRevenue)
	assert.Equal(t, 2, overview.TotalCustomers)
}

func TestManagerOverviewTopItem(t *testing.T) {
	e, orders := newTestEngine()
	now := time.Now()

	seedOrder(t, orders, "o1", "1", models.StatusPending, now, 0,
		models.OrderItem{Name: "Dosa", Quantity: 3})
	seedOrder(t, orders, "o2", "2", models.StatusCompleted, now, 0,
		models.OrderItem{Name: "Idli", Quantity: 5})
	seedOrder(t, orders, "o3", "3", models.StatusReady, now, 0,
		models.OrderItem{Name: "Dosa", Quantity: 2})

	overview, err := e.ManagerOverview(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, "Idli", overview.TopItem)
	assert.Equal(t, 5, overview.TopItemCount)
}

func TestManagerOverviewTopItemTieGoesToFirstSeen(t *testing.T) {
	e, orders := newTestEngine()
	now := time.Now()

	seedOrder(t, orders, "o1", "1", models.StatusPending, now, 0,
		models.OrderItem{Name: "Dosa", Quantity: 4})
	seedOrder(t, orders, "o2", "2", models.StatusPending, now, 0,
		models.OrderItem{Name: "Idli", Quantity: 4})

	overview, err := e.ManagerOverview(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, "Dosa", overview.TopItem)
	assert.Equal(t, 4, overview.TopItemCount)
}

func TestManagerOverviewEmpty(t *testing.T) {
	e, _ := newTestEngine()

	overview, err := e.ManagerOverview(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Zero(t, overview.TotalRevenue)
	assert.Zero(t, overview.TotalCustomers)
	assert.Empty(t, overview.TopItem)
}
