package middleware

import "github.com/gin-gonic/gin"

// RequireRole allows the request through only when the authenticated role
// is one of allowedRoles. Must run after Auth.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			abort(c, 403, "FORBIDDEN", "role missing")
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		abort(c, 403, "FORBIDDEN", "forbidden")
	}
}
