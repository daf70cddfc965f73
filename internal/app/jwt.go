package app

import (
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.config.JWT.Secret,
		Expiry: a.config.JWT.Expiry,
		Issuer: a.config.JWT.Issuer,
	}
	return auth.NewJWTService(cfg)
}
