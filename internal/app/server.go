package app

import (
	"context"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	jwtService auth.JWTService,
	h http.Handlers,
	errorHandler *middleware.ErrorHandler,
	limiter ratelimit.Limiter,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	server := http.NewServer(http.Options{
		Host:           a.config.Server.Host,
		Port:           port,
		RequestTimeout: a.config.Server.RequestTimeout,
	}, jwtService, h, errorHandler, limiter, log)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}
