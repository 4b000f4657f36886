package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the session token and seeds the request with
// the actor identity. Every protected operation fails here, before any
// usecase runs, when no authenticated actor is reachable.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Role comes from the database, not the token, so a role change
		// takes effect without waiting for token expiry.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			// Only a missing user is an auth failure. A database outage
			// must not masquerade as a bad credential.
			if errors.Is(err, domain.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "User not found", nil)
			} else {
				c.Error(err)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
