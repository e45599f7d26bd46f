package app

import (
	"time"

	"companyexport/internal/config"
	"companyexport/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitMiddleware - initializes middleware handlers for the router.
func InitMiddleware(r *chi.Mux, conf *config.Config, ctrl *handlers.Controller) {
	r.Use(ctrl.PanicRecoveryMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(conf.Timeout) * time.Second))
	r.Use(ctrl.LoggingMiddleware)
	r.Use(ctrl.GzipEncodeMiddleware)
	r.Mount("/debug", middleware.Profiler())
}

// Routing - registers routes for the company controller.
// Registered routes:
//   - GET "/": performs an export (alias or full name via ?export= / ?c=, mode=file|json|link) through ctrl.ExportCompany().
//   - GET "/export": same as "/".
//   - GET "/company": inline lookup by name through ctrl.LookupCompany().
//   - GET "/download/{filename}": serves a previously written export through ctrl.DownloadFile().
//   - GET "/health": database availability and estimated count through ctrl.HealthHandler().
//   - GET "/shortcuts": static alias table through ctrl.ShortcutsHandler().
//   - POST "/ingest": append-only payload intake through ctrl.IngestHandler().
func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Get("/", ctrl.ExportCompany())
	r.Get("/export", ctrl.ExportCompany())
	r.Get("/company", ctrl.LookupCompany())
	r.Get("/download/{filename}", ctrl.DownloadFile())
	r.Get("/health", ctrl.HealthHandler())
	r.Get("/shortcuts", ctrl.ShortcutsHandler())
	r.Post("/ingest", ctrl.IngestHandler())
}
