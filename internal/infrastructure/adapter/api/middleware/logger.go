package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

// Logger logs every request once it has been served. Server errors log at
// error level, client errors at warn. Paths in quiet are logged at debug so
// probes and scrapes do not drown the webhook traffic.
func Logger(logger coreport.Logger, quiet ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(quiet))
	for _, p := range quiet {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": GetRequestID(c),
			"user_agent": c.Request.UserAgent(),
			"bytes":      c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch _, isQuiet := skip[path]; {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields)
		case isQuiet:
			logger.Debug("Request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
