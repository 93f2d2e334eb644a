package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/pixelbeak/arcade/internal/dependencies/clock"
	"github.com/pixelbeak/arcade/internal/services/identity"
	"github.com/pixelbeak/arcade/internal/services/scoring"
	"github.com/pixelbeak/arcade/internal/services/token"
	"github.com/pixelbeak/arcade/internal/storage"
	"github.com/pixelbeak/arcade/internal/storage/memory"
	redisstorage "github.com/pixelbeak/arcade/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	TokenService    *token.Service
	IdentityService *identity.Service
	ScoringService  *scoring.Service
}

// Config holds configuration for the application factory
type Config struct {
	// SigningKey is the symmetric key for bearer tokens (required)
	SigningKey string
	// TokenConfig holds configuration for the token service (optional)
	// If zero value, defaults to token.DefaultConfig()
	TokenConfig token.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("SigningKey is required")
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Use default token config if not provided
	tokenCfg := cfg.TokenConfig
	if tokenCfg.TTL == 0 {
		tokenCfg = token.DefaultConfig()
	}

	return newWithDependencies(store, clock.New(), cfg.SigningKey, tokenCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, signingKey string, tokenCfg token.Config, logger *slog.Logger) *App {
	tokenService := token.New(signingKey, clk, tokenCfg)
	identityService := identity.New(store, tokenService, clk, logger)
	scoringService := scoring.New(store, clk, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		TokenService:    tokenService,
		IdentityService: identityService,
		ScoringService:  scoringService,
	}
}
