package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamtracker/teamtracker/internal/metrics"
)

// Metrics returns a middleware that records request duration by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.ReportHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
