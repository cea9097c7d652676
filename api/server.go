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
  /api/reports          Timesheet classification
  /api/exports/*        CSV and workbook downloads
  /api/holidays/*       Holiday calendar management
  /api/teams/*          Team shift-hour profiles
  /api/contracts/*      Contracted-hours overrides
  /api/samples/*        Canned demo timesheets
  /api/health           Liveness probe
  /*                    Plain index page listing the API

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Report routes
		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.CreateReport)
		})

		// Export routes
		r.Route("/exports", func(r chi.Router) {
			r.Post("/csv", h.ExportCSV)
			r.Post("/xlsx", h.ExportWorkbook)
		})

		// Holiday routes
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Post("/", h.CreateHolidays)
			r.Post("/defaults", h.AddDefaultHolidays)
			r.Delete("/{id}", h.DeleteHoliday)
		})

		// Team profile routes
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.SaveTeam)
			r.Delete("/{name}", h.DeleteTeam)
		})

		// Contract override routes
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ListContracts)
			r.Put("/{email}", h.PutContract)
			r.Delete("/{email}", h.DeleteContract)
		})

		// Sample routes
		r.Route("/samples", func(r chi.Router) {
			r.Get("/", h.ListSamples)
			r.Get("/{id}", h.GetSample)
		})

		r.Get("/health", h.Health)
	})

	// Plain index page listing the API
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Overtime Report Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Overtime Report Engine API</h1>
<p>POST a Dialpad WFM timesheet export to <code>/api/reports</code> to classify it.</p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/holidays">/api/holidays</a> - List stored holidays</li>
<li><a href="/api/teams">/api/teams</a> - List team shift-hour profiles</li>
<li><a href="/api/contracts">/api/contracts</a> - List contracted-hours overrides</li>
<li><a href="/api/samples">/api/samples</a> - List demo timesheets</li>
</ul>
</body>
</html>`))
	})

	return r
}
