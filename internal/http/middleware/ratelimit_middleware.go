package middleware

import (
	"net/http"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit caps how often one account may hit action. A limiter outage
// lets the request through.
func RateLimit(limiter ratelimit.Limiter, action string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := Account(c)
		if account == "" {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), account, action)
		if err != nil {
			log.Warn("Rate limiter unavailable", zap.String("action", action), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			abort(c, domain.NewAppError(domain.ErrCodeRateLimited, "Too many requests", http.StatusTooManyRequests, nil))
			return
		}
		c.Next()
	}
}
