package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", h.HandleCreateSession)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Delete("/", h.HandleDeleteSession)
			r.Get("/campaigns", h.HandleListCampaigns)
			r.Put("/scheme", h.HandleSetScheme)
			r.Post("/shortnames", h.HandleUploadShortNames)
			r.Get("/preview-name", h.HandlePreviewName)
			r.Get("/diagnostics", h.HandleDiagnostics)

			r.Route("/export", func(r chi.Router) {
				r.Get("/bulk", h.HandleExportBulk)
				r.Get("/guide", h.HandleExportGuide)
				r.Get("/diagnostics", h.HandleExportDiagnostics)
			})
		})
	})

	return r
}
