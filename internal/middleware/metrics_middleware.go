package middleware

import (
	"time"

	"go-fieldtrack/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency labelled by the matched route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
