package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// ErrorHandlerMiddleware recovers panics into a generic 500 answer
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	requestID := RequestID(c)
	account := Account(c)

	h.logger.Error("Panic recovered",
		zap.String("X-TRACE-ID", requestID),
		zap.String("account", account),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.ByteString("stack", debug.Stack()))

	err := domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered))
	err.RequestID = requestID
	err.UserID = account
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method

	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.NewErrorResponse(err))
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID))
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. Use cases observe the deadline;
// a handler that ran out of time without answering gets a 408.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !c.Writer.Written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err := domain.NewAppError(domain.ErrCodeTimeout, "Request timeout", http.StatusRequestTimeout, ctx.Err())
			err.RequestID = RequestID(c)
			err.UserID = Account(c)
			err.Path = c.Request.URL.Path
			err.Method = c.Request.Method

			h.logger.Warn("Request timed out",
				zap.String("X-TRACE-ID", err.RequestID),
				zap.String("path", err.Path),
				zap.Duration("timeout", timeout))

			c.AbortWithStatusJSON(http.StatusRequestTimeout, domain.NewErrorResponse(err))
		}
	}
}
