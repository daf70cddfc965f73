package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/outbox"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/reconciler"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Pontiff Ledger Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	// .env is optional; real environment variables win
	_ = godotenv.Load()

	if err := a.setupViper(*path); err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap()}
		}),
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitRedis,
			a.InitLockManager,
			a.InitRateLimiter,
			a.InitLedgerRepositories,
			a.InitGameRepositories,
			a.InitMatchRepositories,
			a.InitFairnessEngine,
			a.InitBalanceService,
			a.InitFairnessService,
			a.InitCasinoUseCase,
			a.InitMatchUseCase,
			a.InitMatchmakingUseCase,
			a.InitFeedHub,
			a.InitEventSinks,
			a.InitOutboxProcessor,
			a.InitReconciler,
			a.InitJWTService,
			a.InitErrorHandler,
			a.InitHandlers,
			a.InitHTTPServer,
		),
		fx.Invoke(func(*http.Server, *outbox.Processor, *reconciler.Reconciler) {}),
	)

	app.Run()
}
