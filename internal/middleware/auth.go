package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the token for clients using cookie auth instead of
// an Authorization header.
const SessionCookie = "nush_session"

// TokenValidator checks a bearer token and returns identity claims.
type TokenValidator func(token string) (userID, email, role string, err error)

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"ok":    false,
		"error": message,
		"code":  code,
	})
}

func tokenFrom(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// Auth requires a valid token (header or session cookie) and attaches the
// identity to the request context.
func Auth(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing credentials")
			return
		}

		userID, email, role, err := validate(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			return
		}

		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Set("userRole", role)
		c.Next()
	}
}

// Identify attaches identity when a valid token is present but never
// rejects the request. Guest flows (carts before sign-in) depend on this.
func Identify(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFrom(c); token != "" {
			if userID, email, role, err := validate(token); err == nil {
				c.Set("userID", userID)
				c.Set("userEmail", email)
				c.Set("userRole", role)
			}
		}
		c.Next()
	}
}
