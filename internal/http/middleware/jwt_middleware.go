package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// JWTMiddleware creates JWT authentication middleware
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, domain.NewAppError(domain.ErrCodeTokenMissing, "Authorization header required", http.StatusUnauthorized, nil))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", http.StatusUnauthorized, nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			abort(c, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err))
			return
		}

		c.Set(ContextAccount, claims.Account)
		c.Set(ContextRole, claims.Role)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.AccountKey, claims.Account))
		c.Next()
	}
}

// RequireRole lets only the given role through
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != role {
			abort(c, domain.NewForbiddenError("Requires the "+role+" role"))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, err *domain.AppError) {
	err.RequestID = RequestID(c)
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method
	c.AbortWithStatusJSON(err.HTTPStatus, domain.NewErrorResponse(err))
}
