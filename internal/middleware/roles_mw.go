package middleware

import (
	"net/http"

	"github.com/DevAyush27/med-tracker/internal/model"

	"github.com/gin-gonic/gin"
)

// RequirePermission creates a middleware that checks the authenticated user's
// role for a named permission. The JWT middleware must run first.
func RequirePermission(p model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token, ensure JWT middleware runs first"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid role type in token"})
			return
		}

		role, err := model.ParseRole(roleStr)
		if err != nil || !role.Can(p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// CaregiverMiddleware gates routes that expose other patients' data.
func CaregiverMiddleware() gin.HandlerFunc {
	return RequirePermission(model.PermissionListAllMedicines)
}
