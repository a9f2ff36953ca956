package handlers

import (
	"net/http"
	"strings"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	Feedback store.FeedbackStore
}

type CreateFeedbackRequest struct {
	CustomerName string `json:"customerName"`
	TableNo      string `json:"tableNo"`
	Message      string `json:"message" binding:"required"`
	Rating       int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// CreateFeedback appends a customer feedback entry. Feedback is never
// edited or deleted afterwards.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback message is required"})
		return
	}

	fb, err := h.Feedback.Append(c.Request.Context(), models.Feedback{
		CustomerName: strings.TrimSpace(req.CustomerName),
		TableNo:      strings.TrimSpace(req.TableNo),
		Message:      strings.TrimSpace(req.Message),
		Rating:       req.Rating,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) GetAllFeedback(c *gin.Context) {
	entries, err := h.Feedback.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query feedback"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
