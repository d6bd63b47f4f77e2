package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for failed requests. The public forms only
// ever read the "error" string; "code" and "details" are for the admin UI.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler renders AppErrors as JSON responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	message := appErr.Message
	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr)
		if !h.Debug {
			// Hide internals from the public surface.
			message = "Internal server error"
			appErr.Details = nil
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Error:   message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// HandleError is the package-level helper used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError converts err to *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
