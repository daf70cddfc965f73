package handlers

import (
	"net/http"
	"strconv"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes err as the standard error body. Client errors pass through
// as-is; server errors answer with a generic message and the request id while the
// full detail is logged.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}

	body := *appErr
	body.RequestID = middleware.RequestID(c)
	body.UserID = middleware.Account(c)
	body.Path = c.Request.URL.Path
	body.Method = c.Request.Method

	if body.HTTPStatus == 0 {
		body.HTTPStatus = http.StatusInternalServerError
	}

	if body.HTTPStatus >= http.StatusInternalServerError {
		log.WithContext(c.Request.Context()).Error("Request failed",
			zap.String("code", body.Code),
			zap.String("path", body.Path),
			zap.Error(err))

		body.Message = "Internal server error"
		if body.Code == domain.ErrCodeStoreUnavailable {
			body.Message = "Service temporarily unavailable, please retry"
		}
		body.Details = ""
	}

	c.JSON(body.HTTPStatus, domain.NewErrorResponse(&body))
}

// badRequest answers a malformed body
func badRequest(c *gin.Context, log *logger.Logger, err error) {
	appErr := domain.NewAppError(domain.ErrCodeInvalidInput, "Invalid request body", http.StatusBadRequest, err)
	appErr.Details = err.Error()
	respondError(c, log, appErr)
}

// queryLimit reads ?limit=, zero when absent or malformed
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func isOperator(c *gin.Context) bool {
	return middleware.Role(c) == auth.RoleOperator
}
