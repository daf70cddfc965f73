package middleware

import (
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithRequest(
			c.Request.Context(),
			c.Request.Method,
			c.FullPath(),
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).String(),
			c.Writer.Size(),
		)
		if account := Account(c); account != "" {
			entry = entry.WithField("account", account)
		}

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("HTTP Request Processed")
		case c.Writer.Status() >= 400:
			entry.Warn("HTTP Request Processed")
		default:
			entry.Info("HTTP Request Processed")
		}
	}
}
