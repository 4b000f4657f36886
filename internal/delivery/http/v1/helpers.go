package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the request body. On failure it writes
// a 400 listing every violated rule and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(err))
		} else {
			response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		}
		return false
	}
	return true
}

// strPtr converts an empty string to a nil pointer: empty and absent are
// the same "missing" for optional fields.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
