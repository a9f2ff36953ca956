package handlers

import (
	"net/http"
	"time"

	"restaurant-foh-api-server/internal/engine"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Engine *engine.Engine
}

// Overview returns the manager's aggregates: today's and all-time
// revenue and customer counts over completed orders, plus the
// most-ordered item across all orders.
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.Engine.ManagerOverview(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// AllOrders returns the full order history, oldest first.
func (h *StatsHandler) AllOrders(c *gin.Context) {
	orders, err := h.Engine.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
