package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/accrahealth/carebot/internal/http/middleware"
	"github.com/accrahealth/carebot/pkg/logging"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	Handler            *Handler
	Logger             *logging.Logger
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// NewRouter creates a chi router with all routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.Handler.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/message", cfg.Handler.Message)
			r.Post("/reset", cfg.Handler.Reset)
			r.Get("/history/{sessionID}", cfg.Handler.History)
		})
		r.Get("/search", cfg.Handler.Search)
		r.Get("/locales", cfg.Handler.Locales)
	})

	return r
}
