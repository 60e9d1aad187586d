package gin

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs every request except health checks and metric scrapes.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == HealthPath || path == MetricsPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"duration", time.Since(start),
		)
	}
}
