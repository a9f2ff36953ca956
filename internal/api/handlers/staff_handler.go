package handlers

import (
	"errors"
	"net/http"

	"restaurant-foh-api-server/internal/auth"
	"restaurant-foh-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	Credentials *auth.CredentialService
}

type CreateStaffRequest struct {
	Role string `json:"role" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateStaff registers a waiter or kitchen staff member. The
// response carries the generated secret exactly once; it is never
// retrievable again.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok || role == models.RoleManager {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be WAITER or KITCHEN"})
		return
	}

	member, secret, err := h.Credentials.AddStaff(c.Request.Context(), role, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Staff name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"docId":    member.ID.Hex(),
		"id":       member.StaffID,
		"name":     member.Name,
		"secretID": secret,
	})
}

// GetStaff lists staff for a role. Secret IDs are not echoed back.
func (h *StaffHandler) GetStaff(c *gin.Context) {
	role, ok := models.ParseRole(c.Query("role"))
	if !ok || role == models.RoleManager {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be WAITER or KITCHEN"})
		return
	}

	members, err := h.Credentials.Staff.ListByRole(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query staff"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// DeleteStaff removes a staff record; an absent record is a no-op.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	role, ok := models.ParseRole(c.Query("role"))
	if !ok || role == models.RoleManager {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be WAITER or KITCHEN"})
		return
	}

	if err := h.Credentials.RemoveStaff(c.Request.Context(), role, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Staff member deleted successfully"})
}
