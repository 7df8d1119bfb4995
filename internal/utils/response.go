package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SendErrorResponse sends a standardized error response
func SendErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// FormatBindingError turns gin binding failures into a readable message.
// Field-level validation errors list every failing field; anything else
// (malformed JSON, wrong types) falls back to the raw error text.
func FormatBindingError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
