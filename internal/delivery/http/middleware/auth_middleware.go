package middleware

import (
	"net/http"
	"strings"

	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase, sessions domain.SessionRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Reject tokens issued before the user's sessions were revoked
		// (recruiter soft delete revokes everything outstanding).
		if revokedAt, err := sessions.RevokedAt(c.Request.Context(), claims.UserID); err == nil && !revokedAt.IsZero() {
			if !claims.IssuedAt.After(revokedAt) {
				response.Error(c, http.StatusUnauthorized, "Session has been revoked", nil)
				c.Abort()
				return
			}
		}

		// Fetch fresh user data from the DB for the authoritative role.
		// The JWT role claim may be stale after an account change.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		if user.DeletedAt != nil {
			response.Error(c, http.StatusUnauthorized, "Account is no longer active", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}
