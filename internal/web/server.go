// Package web provides the HTTP server and handlers for the admin console.
package web

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/config"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/web/middleware"
)

//go:embed static
var staticFiles embed.FS

// Server is the console's HTTP server.
type Server struct {
	service *console.Service
	trail   *audit.Recorder
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance.
func NewServer(service *console.Service, trail *audit.Recorder, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		trail:   trail,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(middleware.ConsoleAuth(s.cfg.Security.ConsoleSecret))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal(err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Pages
	s.router.Get("/", s.handleDashboard)
	s.router.Get("/{entityKey}", s.handleListPage)
	s.router.Get("/{entityKey}/{id}", s.handleDetailPage)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// List and delete
		r.Get("/{entityKey}", s.handleList)
		r.Delete("/{entityKey}/{id}", s.handleDelete)

		// Detail/edit cycle
		r.Post("/{entityKey}/{id}/edit", s.handleBeginEdit)
		r.Put("/edits/{sessionID}", s.handleSaveEdit)
		r.Post("/edits/{sessionID}/cancel", s.handleCancelEdit)

		// Create wizard
		r.Post("/{entityKey}/wizard", s.handleBeginWizard)
		r.Post("/wizards/{wizardID}/next", s.handleWizardNext)
		r.Post("/wizards/{wizardID}/prev", s.handleWizardPrev)
		r.Post("/wizards/{wizardID}/cancel", s.handleWizardCancel)

		// Vendor extras
		r.Post("/vendors/bundle", s.handleVendorBundle)
		r.Get("/vendors/{id}/discounts", s.handleVendorDiscounts)
		r.Post("/vendors/{id}/logo", s.handleVendorLogo)

		// Images
		r.Delete("/images", s.handleImageDelete)

		// Audit trail
		r.Get("/audit-log", s.handleAuditLog)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
