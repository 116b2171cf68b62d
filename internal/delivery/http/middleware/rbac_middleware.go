package middleware

import (
	"job-board-backend/internal/domain"
	"job-board-backend/internal/rbac"
	"job-board-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// RequireRight gates a route on the role-rights table. Runs after
// AuthMiddleware; a missing role or an unlisted right denies the request
// (fails closed).
func RequireRight(table *rbac.Table, right string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !table.Allows(role, right) {
			c.Error(apperror.Forbidden("You do not have permission to perform this action"))
			c.Abort()
			return
		}
		c.Next()
	}
}
