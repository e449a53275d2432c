package middleware

import (
	"github.com/gin-gonic/gin"

	"highpro/web/internal/session"
)

const currentUserKey = "current_user"

// SessionLoader decodes the user snapshot cookie once per request and
// stashes it in the gin context for page handlers. A missing or
// malformed cookie simply means no user; it is never an error.
func SessionLoader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := session.User(c); ok && session.Present(c) {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}
