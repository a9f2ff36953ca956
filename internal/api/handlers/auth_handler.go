package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-foh-api-server/config"
	"restaurant-foh-api-server/internal/auth"
	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/session"
	"restaurant-foh-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Credentials *auth.CredentialService
	Lock        session.ManagerLock
	Managers    store.ManagerStore
	Cfg         config.Config
}

type LoginRequest struct {
	Role   string `json:"role" binding:"required"`
	Name   string `json:"name"`
	ID     string `json:"id" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// Login authenticates a staff member or the manager and issues a
// session token. A second manager logging in while another holds the
// active-manager marker gets a conflict, not a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid role (WAITER, KITCHEN, MANAGER)"})
		return
	}

	switch role {
	case models.RoleWaiter, models.RoleKitchen:
		member, found, err := h.Credentials.FindByCredentials(c.Request.Context(), role, req.ID, req.Secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check credentials"})
			return
		}
		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid ID or Secret ID. Please check your credentials."})
			return
		}
		h.issueSession(c, member.Name, member.StaffID, role)

	case models.RoleManager:
		managerID := strings.ToUpper(strings.TrimSpace(req.ID))
		if !strings.HasPrefix(managerID, "MANAGER") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Manager ID"})
			return
		}
		if !auth.CheckSecretHash(req.Secret, h.Cfg.Manager.SecretHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Secret ID"})
			return
		}
		if err := h.Lock.Acquire(c.Request.Context(), managerID); err != nil {
			if errors.Is(err, session.ErrLockHeld) {
				c.JSON(http.StatusConflict, gin.H{"error": "Another manager is already logged in. Only one manager can use the dashboard at a time."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to acquire manager session"})
			return
		}

		// Mirror the manager profile into the shared store.
		if err := h.Managers.Save(c.Request.Context(), models.Manager{
			ManagerID: managerID,
			Name:      req.Name,
			Email:     h.Cfg.Manager.Email,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save manager profile"})
			return
		}
		h.issueSession(c, req.Name, managerID, models.RoleManager)
	}
}

func (h *AuthHandler) issueSession(c *gin.Context, name, id string, role models.Role) {
	expiration := 24 * time.Hour
	if d, err := time.ParseDuration(h.Cfg.JWT.Expiration); err == nil && d > 0 {
		expiration = d
	}
	token, err := auth.GenerateJWT(name, id, role, expiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"name": name, "id": id, "role": role},
	})
}

// Logout ends the session. A manager logout releases the
// active-manager marker; any other role leaves the marker untouched.
func (h *AuthHandler) Logout(c *gin.Context) {
	role := c.MustGet("user_role").(models.Role)
	if role == models.RoleManager {
		userID := c.GetString("user_id")
		if err := h.Lock.Release(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to release manager session"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Logged out"})
}

// Session returns the identity behind the presented token. Clients
// call this on restart to restore their session.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"name": c.GetString("user_name"),
		"id":   c.GetString("user_id"),
		"role": c.MustGet("user_role").(models.Role),
	}})
}

type ReleaseManagerRequest struct {
	ID     string `json:"id" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

// ReleaseManagerLock clears a stale active-manager marker, e.g. after
// a crashed manager device. The caller must prove they know the
// manager secret; no session is required because the point is to
// recover when none can be created.
func (h *AuthHandler) ReleaseManagerLock(c *gin.Context) {
	var req ReleaseManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(req.ID)), "MANAGER") ||
		!auth.CheckSecretHash(req.Secret, h.Cfg.Manager.SecretHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid manager credentials"})
		return
	}
	if err := h.Lock.ForceRelease(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to release manager session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Manager session released"})
}
