package socket

import (
	"context"
	"encoding/json"
	"log"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"
)

// Pump forwards store change events to the dashboards that render the
// affected collection. Runs until the context is cancelled.
func Pump(ctx context.Context, hub *Hub, events <-chan store.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			payload, err := json.Marshal(ev)
			if err != nil {
				log.Printf("Failed to marshal change event: %v", err)
				continue
			}
			hub.Broadcast(payload, rolesFor(ev.Collection)...)
		}
	}
}

// rolesFor maps a collection to the roles whose views read it. An
// empty result means broadcast to everyone. Order events are not
// listed: the order handlers broadcast those themselves, and the
// orders collection is never watched.
func rolesFor(collection string) []models.Role {
	switch collection {
	case "menuItems":
		return nil
	case "tables":
		return []models.Role{models.RoleWaiter, models.RoleManager}
	case "feedbacks":
		return []models.Role{models.RoleManager}
	}
	return nil
}
