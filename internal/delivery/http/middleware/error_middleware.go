package middleware

import (
	"errors"
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors pushed onto the gin context to the response
// envelope. Internal errors are logged server-side and never exposed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			if appErr.Code == http.StatusInternalServerError || appErr.Code == http.StatusBadGateway {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
		default:
			logger.Log.Error("unexpected error",
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
				"error", err,
			)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
