package handlers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/storage"
)

// DocumentHandler stores print-job documents in the object store and
// hands the caller the key to reference from a printing request.
type DocumentHandler struct{}

func NewDocumentHandler() *DocumentHandler {
	return &DocumentHandler{}
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	if !storage.Enabled() {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "document storage not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	key := uuid.NewString() + filepath.Ext(file.Filename)
	contentType := file.Header.Get("Content-Type")
	if err := storage.UploadDocument(c.Request.Context(), key, src, file.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key, "name": file.Filename})
}

func (h *DocumentHandler) Download(c *gin.Context) {
	if !storage.Enabled() {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "document storage not configured"})
		return
	}

	key := c.Param("key")
	url, err := storage.PresignedDocumentURL(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
