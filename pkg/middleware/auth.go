package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khaoyai-getaway/content-service/internal/tokens"
)

// AdminAuthMiddleware guards mutating endpoints with a Bearer admin token.
// An empty secret disables the guard entirely (local development, and
// deployments that front the admin panel some other way).
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing Authorization header"})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		if raw == auth || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid Authorization header"})
			return
		}
		claims, err := tokens.ParseAdminToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}
		c.Set("claims", map[string]interface{}(claims))
		c.Next()
	}
}
