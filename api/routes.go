package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/skillswap/internal/config"
	"github.com/garnizeh/skillswap/internal/db"
	"github.com/garnizeh/skillswap/internal/match"
	"github.com/garnizeh/skillswap/internal/repository/sqlite"
)

// SetupRoutes wires the action-keyed store API. Every data operation goes
// through /api?action=<name>; action dispatch is done with query matchers
// so unknown actions fall through to 404.
func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	sessionsHandler := NewSessionsHandler(repo)
	reviewsHandler := NewReviewsHandler(repo, repo, repo)
	storeHandler := NewStoreHandler(repo, repo, repo, repo, repo)
	adminHandler := NewAdminHandler(repo, repo, repo, repo, repo)
	matchHandler := NewMatchHandler(repo, newRanker(cfg))

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods(http.MethodGet)
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods(http.MethodGet)

	// Store actions
	r.HandleFunc("/api", storeHandler.Init).Queries("action", "init").Methods(http.MethodGet)
	r.HandleFunc("/api", authHandler.Login).Queries("action", "login").Methods(http.MethodPost)
	r.HandleFunc("/api", authHandler.Register).Queries("action", "register").Methods(http.MethodPost)
	r.HandleFunc("/api", sessionsHandler.SaveSession).Queries("action", "save_session").Methods(http.MethodPost)
	r.HandleFunc("/api", sessionsHandler.UpdateSessionStatus).Queries("action", "update_session_status").Methods(http.MethodPost)
	r.HandleFunc("/api", reviewsHandler.SaveReview).Queries("action", "save_review").Methods(http.MethodPost)
	r.HandleFunc("/api", storeHandler.UpdateProfile).Queries("action", "update_profile").Methods(http.MethodPost)
	r.HandleFunc("/api", storeHandler.AddSkill).Queries("action", "add_skill").Methods(http.MethodPost)
	r.HandleFunc("/api", storeHandler.SendMessage).Queries("action", "send_message").Methods(http.MethodPost)
	r.HandleFunc("/api", matchHandler.Recommend).Queries("action", "recommend").Methods(http.MethodGet)

	// Admin actions need a valid token with the admin role
	stats := r.Queries("action", "stats").Subrouter()
	stats.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	stats.Use(RequireAdmin)
	stats.HandleFunc("/api", adminHandler.Stats).Methods(http.MethodGet)

	return r
}

// newRanker picks the recommendation backend: the model oracle when an
// endpoint is configured, the heuristic alone otherwise.
func newRanker(cfg *config.Config) match.Ranker {
	if cfg.Match.BaseURL == "" {
		return match.Heuristic{}
	}
	ranker, err := match.NewOllama(cfg.Match, nil, match.Heuristic{})
	if err != nil {
		logger.Warn("invalid match config, using heuristic ranking", "err", err)
		return match.Heuristic{}
	}
	return ranker
}
