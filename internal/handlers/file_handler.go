package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"studio_backend/internal/storage"
	"studio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves objects out of local storage. It is only registered
// when the storage backend has no public URL of its own.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*path", h.ServeFile)
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" || strings.Contains(key, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("file", "File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, reader)
}
