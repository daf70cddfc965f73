package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/auth"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/database"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/repository"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/seeder"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/usecase/balance"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", config.GetEnvironment(), "Environment")
		tokens     = flag.Bool("tokens", false, "Print development JWTs for the seeded accounts")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl := logger.NewLogger(*configFile, cfg.Log.Level)
	defer func() { _ = zl.Sync() }()

	db, err := database.NewDatabase(&database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
	})
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	balances := balance.NewBalanceUseCase(
		repository.NewBalanceRepository(db.DB),
		repository.NewLedgerRepository(db.DB),
		db.DB,
		zl,
	)

	treasury := cfg.Casino.TreasuryAccount
	if treasury == "" {
		treasury = "treasury"
	}
	accounts := seeder.DefaultAccounts(strings.ToLower(treasury))

	var jwtSvc auth.JWTService
	if *tokens {
		jwtSvc = auth.NewJWTService(&cfg.JWT)
	}
	s := seeder.NewSeeder(balances, jwtSvc, zl)

	zl.Info("Starting database seeding...")
	funded, err := s.SeedAccounts(context.Background(), accounts)
	if err != nil {
		zl.Fatal("Failed to seed accounts", zap.Error(err))
	}
	zl.Info("Database seeding completed successfully", zap.Int("funded", funded))

	issued, err := s.IssueTokens(accounts)
	if err != nil {
		zl.Fatal("Failed to issue tokens", zap.Error(err))
	}
	names := make([]string, 0, len(issued))
	for name := range issued {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s\t%s\n", name, issued[name])
	}
}

// loadConfig loads configuration from file
func loadConfig(configPath, configFile string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("PONTIFF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &cfg, nil
}
