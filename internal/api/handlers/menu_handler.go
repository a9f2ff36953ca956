package handlers

import (
	"errors"
	"net/http"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	Menu store.MenuStore
}

type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Category string  `json:"category" binding:"required"`
	Image    string  `json:"image"`
	Benefits string  `json:"benefits"`
}

// CreateMenuItem adds a dish to the catalog. New items start
// available.
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Menu.Add(c.Request.Context(), models.MenuItem{
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		Image:     req.Image,
		Available: true,
		Benefits:  req.Benefits,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetMenu lists the full catalog. Public: customers browse it without
// logging in.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	items, err := h.Menu.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type UpdateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Category string  `json:"category" binding:"required"`
	Image    string  `json:"image"`
	Benefits string  `json:"benefits"`
}

// UpdateMenuItem edits a dish's fields. Availability is not touched
// here; it has its own operation with its own authorization.
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Menu.Update(c.Request.Context(), id, store.MenuItemUpdate{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Benefits: req.Benefits,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Menu item updated successfully"})
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// SetAvailability toggles whether a dish can be ordered. This is the
// only menu mutation kitchen staff may invoke.
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id := c.Param("id")

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Menu.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Availability updated"})
}

// DeleteMenuItem removes a dish. Historical orders keep their copied
// name and price.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.Menu.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Menu item deleted successfully"})
}
