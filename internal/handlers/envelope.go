package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Envelope is the uniform response wrapper every API handler returns.
// Business failures are shaped into it instead of leaking past the handler
// boundary.
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Status  int               `json:"status"`
}

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
		Status:  status,
	})
}

func respondError(c *gin.Context, status int, errorMessage string) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   errorMessage,
		Status:  status,
	})
}

// respondInternal logs the underlying cause server-side and returns a
// generic envelope with no internal detail.
func (h *Handlers) respondInternal(c *gin.Context, err error) {
	h.Log.Error("internal error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   "Internal server error",
		Status:  http.StatusInternalServerError,
	})
}

// respondValidation turns binding failures into a 400 with field-level
// detail. The owning handler's business logic never runs on this path.
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   "Validation failed",
		Errors:  fieldErrors(err),
		Status:  http.StatusBadRequest,
	})
}

// fieldErrors maps validator failures to per-field messages.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		out["body"] = "Invalid request body"
		return out
	}

	for _, fieldErr := range validationErrs {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = "Invalid email address"
		case "min":
			out[field] = field + " must be at least " + fieldErr.Param() + " characters long"
		case "oneof":
			out[field] = field + " must be one of: " + fieldErr.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
