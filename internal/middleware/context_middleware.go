package middleware

import (
	"go-fieldtrack/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger must run after RequestID. AuthMiddleware later adds user_id to the same logger.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLogger := logger.With(zap.String("request_id", c.GetString("request_id")))
		c.Request = c.Request.WithContext(contextutil.WithLogger(c.Request.Context(), reqLogger))

		c.Next()
	}
}

// NoCache stops browsers and proxies from caching API responses.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
