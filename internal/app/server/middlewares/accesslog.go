package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

// AccessLog logs one line per request with method, path, status and latency.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infof(c.Request.Context(), "http_request method=%s path=%s status=%d duration_ms=%d",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Milliseconds())
	}
}
