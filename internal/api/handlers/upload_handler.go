package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"restaurant-foh-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	S3Uploader *s3.Uploader
}

// UploadMenuImage accepts a multipart image and stores it in S3. The
// returned URL goes into the menu item's image field.
func (h *UploadHandler) UploadMenuImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("menu/%s-%s%s",
		time.Now().Format("20060102"),
		uuid.New().String()[:8],
		filepath.Ext(fileHeader.Filename),
	)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "url": url})
}
