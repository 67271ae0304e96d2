package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tally/internal/shared/logger"
)

// Logger logs every completed request with timing and status.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Err)
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("HTTP request completed", args...)
		case c.Writer.Status() >= 400:
			log.Warnw("HTTP request completed", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
