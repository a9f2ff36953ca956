package socket

import (
	"context"
	"testing"
	"time"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpRoutesEventsByCollection(t *testing.T) {
	hub := NewHub()
	manager := dialClient(t, hub, models.RoleManager)
	waiter := dialClient(t, hub, models.RoleWaiter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan store.ChangeEvent, 1)
	go Pump(ctx, hub, events)

	events <- store.ChangeEvent{Collection: "feedbacks", Operation: "insert"}

	msg := readMessage(t, manager)
	assert.Contains(t, msg, `"collection":"feedbacks"`)

	// Feedback is a manager-only view; the waiter gets nothing.
	require.NoError(t, waiter.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := waiter.ReadMessage()
	assert.Error(t, err)
}

func TestPumpStopsOnContextCancel(t *testing.T) {
	hub := NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan store.ChangeEvent)

	done := make(chan struct{})
	go func() {
		Pump(ctx, hub, events)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop after cancellation")
	}
}
