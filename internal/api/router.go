package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixelbeak/arcade/internal/api/handler"
	"github.com/pixelbeak/arcade/internal/api/middleware"
	"github.com/pixelbeak/arcade/internal/services/identity"
	"github.com/pixelbeak/arcade/internal/services/scoring"
	"github.com/pixelbeak/arcade/internal/services/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	TokenService    *token.Service
	IdentityService *identity.Service
	ScoringService  *scoring.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.IdentityService)
	scoreHandler := handler.NewScoreHandler(cfg.ScoringService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.ScoringService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.TokenService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Identity routes (no auth: this is where tokens come from)
	api.HandleFunc("/auth/init", authHandler.Init).Methods(http.MethodPost)

	// Score routes (require a bearer token)
	scores := api.PathPrefix("/scores").Subrouter()
	scores.Use(authMiddleware)
	scores.HandleFunc("/submit", scoreHandler.Submit).Methods(http.MethodPost)

	// Leaderboard routes (public, read-only)
	api.HandleFunc("/leaderboard/weekly", leaderboardHandler.Weekly).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// CORS wraps the whole router so preflight requests are answered
	// before method matching would otherwise 405 them.
	return middleware.CORS()(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
