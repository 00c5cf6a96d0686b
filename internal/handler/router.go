package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/middleware"
)

// RouterConfig wires handlers into the API router.
type RouterConfig struct {
	Generator      *GeneratorHandler
	Strength       *StrengthHandler
	Stats          *StatsHandler // nil when no event store is available
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the HTTP API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
		r.Post("/api/v1/strength", cfg.Strength.HandleStrength)
	})

	if cfg.Stats != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/stats", cfg.Stats.HandleStats)
		})
	}

	return r
}
