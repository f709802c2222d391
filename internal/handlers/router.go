// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_glossary_api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーター構築に必要な依存です。Metrics が nil の場合は /metrics を公開しません。
type RouterDeps struct {
	Terms          *TermHandler
	Health         *HealthHandler
	Metrics        *middleware.Metrics
	CORS           cors.Options
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(cors.New(deps.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/", deps.Health.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", deps.Health.Health)

		r.Route("/terms", func(r chi.Router) {
			r.Get("/", deps.Terms.ListTerms)
			r.Post("/", deps.Terms.CreateTerm)
			// 静的セグメントの search は {id} より優先してマッチする
			r.Get("/search/{query}", deps.Terms.SearchTerms)
			r.Get("/{id}", deps.Terms.GetTerm)
			r.Put("/{id}", deps.Terms.UpdateTerm)
			r.Delete("/{id}", deps.Terms.DeleteTerm)
		})
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	return r
}
