/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/calendar/*       Classified year views
  /api/classify         Single-date classification
  /api/periods          Period rule table
  /api/holidays/*       Holiday tables
  /api/legend           Legend items
  /api/leave-types      Leave type options
  /api/leave-reasons    Leave reason options
  /api/selections/*     Selection sessions (in-memory)
  /api/export/*         ICS calendar download

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/leave-planner/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Calendar routes
		r.Get("/calendar/{year}", h.GetYearView)
		r.Get("/classify", h.Classify)
		r.Get("/periods", h.ListPeriods)
		r.Get("/holidays/{year}", h.ListHolidays)

		// Table routes
		r.Get("/legend", h.ListLegend)
		r.Get("/leave-types", h.ListLeaveTypes)
		r.Get("/leave-reasons", h.ListLeaveReasons)

		// Selection session routes
		r.Route("/selections", func(r chi.Router) {
			r.Post("/", h.CreateSelection)
			r.Get("/{id}", h.GetSelection)
			r.Post("/{id}/toggle", h.ToggleDate)
			r.Delete("/{id}/dates/{date}", h.RemoveDate)
			r.Delete("/{id}", h.ClearSelection)
			r.Post("/{id}/email", h.ComposeEmail)
		})

		// Export routes
		r.Get("/export/ics", h.ExportICS)
	})

	return r
}
