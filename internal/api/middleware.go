package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edonabdullahu1/city-sub002/internal/auth"
)

// RequireRole ensures the authenticated user carries one of the given
// roles. Admins pass every check. It MUST be used after auth.AuthRequired.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if role == auth.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
	}
}
