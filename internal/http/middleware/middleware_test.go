package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubLimiter) Allow(context.Context, string, string) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewErrorHandler(logger.NewNop()).RequestIDMiddleware())
	return r
}

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "s3cret", Expiry: time.Hour})
	playerToken, err := jwtSvc.GenerateToken("alice", auth.RolePlayer)
	require.NoError(t, err)
	operatorToken, err := jwtSvc.GenerateToken("ops", auth.RoleOperator)
	require.NoError(t, err)

	r := newEngine()
	r.GET("/me", JWTMiddleware(jwtSvc), func(c *gin.Context) {
		c.String(http.StatusOK, Account(c)+":"+Role(c))
	})
	r.GET("/admin", JWTMiddleware(jwtSvc), RequireRole(auth.RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"player", "/me", "Bearer " + playerToken, http.StatusOK, "alice:player"},
		{"missing header", "/me", "", http.StatusUnauthorized, domain.ErrCodeTokenMissing},
		{"wrong scheme", "/me", "Basic abc", http.StatusUnauthorized, domain.ErrCodeTokenInvalid},
		{"bad token", "/me", "Bearer nope", http.StatusUnauthorized, domain.ErrCodeTokenInvalid},
		{"player on operator route", "/admin", "Bearer " + playerToken, http.StatusForbidden, domain.ErrCodeForbidden},
		{"operator", "/admin", "Bearer " + operatorToken, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.path, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = serve(r, "/", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestErrorHandlerMiddleware_RecoversPanics(t *testing.T) {
	r := newEngine()
	r.Use(NewErrorHandler(logger.NewNop()).ErrorHandlerMiddleware())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodeInternal)
}

func TestTimeoutMiddleware(t *testing.T) {
	r := newEngine()
	r.Use(NewErrorHandler(logger.NewNop()).TimeoutMiddleware(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, "/slow", "")
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodeTimeout)

	w = serve(r, "/fast", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		limiter    *stubLimiter
		account    string
		wantStatus int
		wantCalls  int
	}{
		{"allowed", &stubLimiter{allowed: true}, "alice", http.StatusOK, 1},
		{"limited", &stubLimiter{allowed: false}, "alice", http.StatusTooManyRequests, 1},
		{"limiter down fails open", &stubLimiter{err: errors.New("redis down")}, "alice", http.StatusOK, 1},
		{"anonymous skipped", &stubLimiter{}, "", http.StatusOK, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine()
			r.GET("/play", func(c *gin.Context) {
				if tt.account != "" {
					c.Set(ContextAccount, tt.account)
				}
				c.Next()
			}, RateLimit(tt.limiter, "play", logger.NewNop()), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := serve(r, "/play", "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalls, tt.limiter.calls)
		})
	}
}
