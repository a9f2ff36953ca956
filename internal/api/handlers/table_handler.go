package handlers

import (
	"errors"
	"net/http"

	"restaurant-foh-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	Tables store.TableStore
}

type CreateTableRequest struct {
	TableNo int `json:"tableNo" binding:"required,min=1"`
}

// CreateTable registers a table. Duplicate numbers are rejected.
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.Tables.Add(c.Request.Context(), req.TableNo)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Table with this number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}

	c.JSON(http.StatusCreated, table)
}

func (h *TableHandler) GetAllTables(c *gin.Context) {
	tables, err := h.Tables.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query tables"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

// DeleteTable removes a table. Orders referencing its number are
// untouched; the reference is by number, not identity.
func (h *TableHandler) DeleteTable(c *gin.Context) {
	docID := c.Param("id")

	if err := h.Tables.Remove(c.Request.Context(), docID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete table"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Table deleted successfully"})
}
