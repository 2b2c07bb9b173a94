package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standardized error body returned by the API.
type ErrorResponse struct {
	Message     string            `json:"message"`
	Status      int               `json:"status"`
	StatusError string            `json:"statusError"`
	Errors      []ValidationError `json:"errors,omitempty"`
}

// ValidationError describes a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return e.Message
}

// New creates a new ErrorResponse for the given status code
func New(status int, message string) *ErrorResponse {
	return &ErrorResponse{
		Message:     message,
		Status:      status,
		StatusError: http.StatusText(status),
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err *ErrorResponse) {
	c.JSON(err.Status, err)
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, New(http.StatusBadRequest, message))
}

// BadRequestWithErrors sends a 400 response carrying field-level violations
func BadRequestWithErrors(c *gin.Context, message string, errs []ValidationError) {
	resp := New(http.StatusBadRequest, message)
	resp.Errors = errs
	RespondWithError(c, resp)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, New(http.StatusUnauthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, New(http.StatusNotFound, message))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, New(http.StatusConflict, message))
}

// InternalError sends a 500 response; the message never exposes internals
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred. Contact support."
	}
	RespondWithError(c, New(http.StatusInternalServerError, message))
}
