package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

// Metrics records request latency by route template to keep label cardinality bounded
func Metrics(metrics coreport.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
