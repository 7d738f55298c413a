package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes used across the service layer
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "ALREADY_EXISTS"
	ErrCodeUnavailable  = "UNAVAILABLE"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// AppError is the error type services return to handlers. Code selects the
// HTTP status; Details carries the underlying cause for 500 responses.
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates an AppError with the validation code
func NewValidationError(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// NewNotFoundError creates an AppError with the not-found code
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NewUnauthorizedError creates an AppError with the unauthorized code
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// ErrorResponse is the wire shape of every failure. Error is set only on
// 500s and carries the underlying error's message.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the wire shape of message-only confirmations
type MessageResponse struct {
	Message string `json:"message"`
}

// SendError writes an error body with a human-readable message
func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// SendServerError writes a 500-style body; the error string is derived from
// cause via ErrorMessage
func SendServerError(c *gin.Context, status int, message string, cause interface{}) {
	c.JSON(status, ErrorResponse{Message: message, Error: ErrorMessage(cause)})
}

// SendMessage writes a message-only confirmation body
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// ErrorMessage shapes an arbitrary failure value into the error string
// exposed on 500 bodies: an error's message if the value is an error,
// otherwise the fixed "Unknown error" string. Panics with non-error values
// land here via the recovery middleware.
func ErrorMessage(v interface{}) string {
	if err, ok := v.(error); ok && err != nil {
		return err.Error()
	}
	return "Unknown error"
}
