package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Log           LogConfig           `mapstructure:"log"`
	Redis         RedisConfig         `mapstructure:"redis"`
	RabbitMQ      RabbitMQConfig      `mapstructure:"rabbitmq"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Chain         ChainConfig         `mapstructure:"chain"`
	Casino        CasinoConfig        `mapstructure:"casino"`
	Match         MatchConfig         `mapstructure:"match"`
	Matchmaking   MatchmakingConfig   `mapstructure:"matchmaking"`
	Reconciler    ReconcilerConfig    `mapstructure:"reconciler"`
	Outbox        OutboxConfig        `mapstructure:"outbox"`
	RateLimit     RateLimitConfig     `mapstructure:"rateLimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RedisConfig holds redis configuration. Empty Addr disables redis and
// falls back to in-process locks without rate limiting.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lockTTL"`
}

// RabbitMQConfig holds the settlement event publisher configuration
type RabbitMQConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// ElasticsearchConfig holds the search indexer configuration
type ElasticsearchConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

// ChainConfig holds the on-chain settlement gateway configuration
type ChainConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	RetryMax int           `mapstructure:"retryMax"`
}

// CasinoConfig holds single-player game limits
type CasinoConfig struct {
	MinWager        string        `mapstructure:"minWager"`
	MaxWager        string        `mapstructure:"maxWager"`
	// HouseEdgeBps left unset keeps the default; 0 runs without an edge
	HouseEdgeBps    *int          `mapstructure:"houseEdgeBps"`
	TreasuryAccount string        `mapstructure:"treasuryAccount"`
	SettleRetries   int           `mapstructure:"settleRetries"`
	RetryBackoff    time.Duration `mapstructure:"retryBackoff"`
}

// MatchConfig holds PvP settlement and rating settings
type MatchConfig struct {
	BestOf             int    `mapstructure:"bestOf"`
	FeeBps             *int   `mapstructure:"feeBps"`
	KFactor            int    `mapstructure:"kFactor"`
	InitialRating      int    `mapstructure:"initialRating"`
	RatingFloor        int    `mapstructure:"ratingFloor"`
	DrawRatingExchange bool   `mapstructure:"drawRatingExchange"`
	MinStake           string `mapstructure:"minStake"`
	MaxStake           string `mapstructure:"maxStake"`
}

// MatchmakingConfig holds queue settings
type MatchmakingConfig struct {
	StakeRangePct int           `mapstructure:"stakeRangePct"`
	QueueExpiry   time.Duration `mapstructure:"queueExpiry"`
}

// ReconcilerConfig holds background reconciliation settings
type ReconcilerConfig struct {
	Interval     time.Duration `mapstructure:"interval"`
	GameTimeout  time.Duration `mapstructure:"gameTimeout"`
	MatchTimeout time.Duration `mapstructure:"matchTimeout"`
	BatchSize    int           `mapstructure:"batchSize"`
}

// OutboxConfig holds outbox dispatch settings
type OutboxConfig struct {
	Interval   time.Duration `mapstructure:"interval"`
	BatchSize  int           `mapstructure:"batchSize"`
	MaxRetries int           `mapstructure:"maxRetries"`
}

// RateLimitConfig holds per-account request limits
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	port := c.Server.Port
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("%s:%s", c.Server.Host, port)
}

// ParseAmount reads a decimal setting, falling back to def when empty or malformed
func ParseAmount(value string, def decimal.Decimal) decimal.Decimal {
	if value == "" {
		return def
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return def
	}
	return d
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("PONTIFF_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
