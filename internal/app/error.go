package app

import (
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
