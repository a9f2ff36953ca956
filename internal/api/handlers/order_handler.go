package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"restaurant-foh-api-server/internal/engine"
	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/socket"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Engine *engine.Engine
	Hub    *socket.Hub
}

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
}

type PlaceOrderRequest struct {
	TableNo      string             `json:"tableNo" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required"`
	Instructions string             `json:"instructions"`
}

// PlaceOrder creates a pending order from the customer's cart.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		}
	}

	order, err := h.Engine.PlaceOrder(c.Request.Context(), req.TableNo, items, models.CustomerInfo{Instructions: req.Instructions})
	if err != nil {
		if errors.Is(err, engine.ErrEmptyTable) || errors.Is(err, engine.ErrEmptyItems) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	h.notify("order_placed", order)
	c.JSON(http.StatusCreated, order)
}

// MarkReady moves a pending order to ready. Kitchen action.
func (h *OrderHandler) MarkReady(c *gin.Context) {
	h.transition(c, h.Engine.MarkReady, "order_ready")
}

// MarkCompleted moves a ready order to completed. Waiter action.
func (h *OrderHandler) MarkCompleted(c *gin.Context) {
	h.transition(c, h.Engine.MarkCompleted, "order_completed")
}

func (h *OrderHandler) transition(c *gin.Context, op func(ctx context.Context, orderID string) (models.Order, error), event string) {
	orderID := c.Param("id")

	order, err := op(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, engine.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		}
		return
	}

	h.notify(event, order)
	c.JSON(http.StatusOK, order)
}

// KitchenQueue lists every order still in flight, oldest first.
func (h *OrderHandler) KitchenQueue(c *gin.Context) {
	orders, err := h.Engine.KitchenQueue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// WaiterTables lists active orders grouped per table.
func (h *OrderHandler) WaiterTables(c *gin.Context) {
	tables, err := h.Engine.WaiterTables(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query table orders"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

// notify pushes an order event to the dashboards that track orders.
func (h *OrderHandler) notify(event string, order models.Order) {
	if h.Hub == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"event": event, "order": order, "at": time.Now()})
	if err != nil {
		return
	}
	h.Hub.Broadcast(payload, models.RoleKitchen, models.RoleWaiter, models.RoleManager)
}
