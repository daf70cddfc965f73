package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/handlers"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/http/middleware"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the route handlers
type Handlers struct {
	Health      *handlers.HealthHandler
	Balance     *handlers.BalanceHandler
	Casino      *handlers.CasinoHandler
	Fairness    *handlers.FairnessHandler
	Matchmaking *handlers.MatchmakingHandler
	Match       *handlers.MatchHandler
	Feed        gin.HandlerFunc
}

// Options holds listener settings
type Options struct {
	Host           string
	Port           string
	RequestTimeout time.Duration
}

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	jwtService   auth.JWTService
	handlers     Handlers
	errorHandler *middleware.ErrorHandler
	limiter      ratelimit.Limiter
	logger       *logger.Logger
	addr         string
}

// NewServer creates a new HTTP server
func NewServer(
	opts Options,
	jwtService auth.JWTService,
	h Handlers,
	errorHandler *middleware.ErrorHandler,
	limiter ratelimit.Limiter,
	log *logger.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		handlers:     h,
		errorHandler: errorHandler,
		limiter:      limiter,
		logger:       log,
		addr:         fmt.Sprintf("%s:%s", opts.Host, opts.Port),
	}

	server.setupRoutes(opts.RequestTimeout)
	server.httpServer = &http.Server{
		Addr:              server.addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server
}

// Router exposes the engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes(timeout time.Duration) {
	s.router.GET("/health", s.handlers.Health.Health)
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if s.handlers.Feed != nil {
		s.router.GET("/ws/feed", s.handlers.Feed)
	}

	v1 := s.router.Group("/api/v1")
	v1.Use(s.errorHandler.TimeoutMiddleware(timeout))
	{
		v1.GET("/health", s.handlers.Health.Health)
		v1.POST("/fairness/verify", s.handlers.Fairness.VerifyOutcome)
		v1.GET("/matchmaking/leaderboard", s.handlers.Matchmaking.Leaderboard)

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			balanceRoutes := protected.Group("/balance")
			{
				balanceRoutes.GET("", s.handlers.Balance.GetBalance)
				balanceRoutes.GET("/transactions", s.handlers.Balance.GetTransactions)
				balanceRoutes.GET("/reconcile", s.handlers.Balance.Reconcile)
			}

			casinoRoutes := protected.Group("/casino")
			{
				casinoRoutes.POST("/play", middleware.RateLimit(s.limiter, "play", s.logger), s.handlers.Casino.Play)
				casinoRoutes.GET("/games", s.handlers.Casino.ListGames)
				casinoRoutes.GET("/games/:id", s.handlers.Casino.GetGame)
			}

			fairnessRoutes := protected.Group("/fairness")
			{
				fairnessRoutes.POST("/commit", middleware.RateLimit(s.limiter, "commit", s.logger), s.handlers.Fairness.Commit)
				fairnessRoutes.GET("/commitments/:id", s.handlers.Fairness.GetCommitment)
				fairnessRoutes.GET("/commitments/:id/verify", s.handlers.Fairness.VerifyCommitment)
			}

			queueRoutes := protected.Group("/matchmaking")
			{
				queueRoutes.POST("/queue", middleware.RateLimit(s.limiter, "queue", s.logger), s.handlers.Matchmaking.JoinQueue)
				queueRoutes.DELETE("/queue", s.handlers.Matchmaking.LeaveQueue)
				queueRoutes.GET("/queue", s.handlers.Matchmaking.ListQueue)
			}

			operatorOnly := middleware.RequireRole(auth.RoleOperator)
			matchRoutes := protected.Group("/matches")
			{
				matchRoutes.POST("", operatorOnly, s.handlers.Match.CreateMatch)
				matchRoutes.GET("", s.handlers.Match.ListMatches)
				matchRoutes.GET("/:id", s.handlers.Match.GetMatch)
				matchRoutes.POST("/:id/rounds", operatorOnly, s.handlers.Match.RecordRound)
				matchRoutes.POST("/:id/settle", s.handlers.Match.SettleMatch)
			}

			adminRoutes := protected.Group("/admin", operatorOnly)
			{
				adminRoutes.POST("/balances/:account/deposit", s.handlers.Balance.Deposit)
				adminRoutes.POST("/balances/:account/withdraw", s.handlers.Balance.Withdraw)
			}
		}
	}
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
