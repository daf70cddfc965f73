package app

import (
	"context"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *application) InitDatabase(lc fx.Lifecycle, log *logger.Logger) (*gorm.DB, error) {
	dbConfig := &database.Config{
		Host:            a.config.Database.Host,
		Port:            a.config.Database.Port,
		User:            a.config.Database.User,
		Password:        a.config.Database.Password,
		Name:            a.config.Database.Name,
		SSLMode:         a.config.Database.SSLMode,
		MaxIdleConns:    a.config.Database.MaxIdleConns,
		MaxOpenConns:    a.config.Database.MaxOpenConns,
		ConnMaxLifetime: a.config.Database.ConnMaxLifetime,
		AutoMigrate:     a.config.Database.AutoMigrate,
	}
	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return nil, err
	}
	log.Info("Database connected",
		zap.String("host", dbConfig.Host),
		zap.String("name", dbConfig.Name))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db.GetDB(), nil
}
