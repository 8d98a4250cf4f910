package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/handlers/http/admin"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/handlers/http/coordinator"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/handlers/http/public"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/api/handlers/http/system"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/config"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/middleware"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Public      *public.Handler
	Coordinator *coordinator.Handler
	Admin       *admin.Handler
	System      *system.Handler
}

// NewServer builds the handlers over the service facade. ctx bounds the
// background sweepers of the rate limiters.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, auth *service.AuthService, checks map[string]system.Pinger) *Server {
	center := domain.Coordinates{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon}

	h := Handlers{
		Public:      public.NewHandler(logger, svc, auth, center),
		Coordinator: coordinator.NewHandler(logger, svc),
		Admin:       admin.NewHandler(logger, svc, svc, svc),
		System:      system.NewHandler(logger, checks),
	}

	r := InitRouter(ctx, h, auth, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, h Handlers, resolver middleware.SessionResolver, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// SYSTEM
		api.Get("/health", h.System.SystemHealth)

		// AUTH
		api.Route("/auth", func(ar chi.Router) {
			ar.Use(middleware.Limit(ctx, 1, 5, 10*time.Minute, logger))

			ar.Post("/admin/login", h.Public.AdminLogin)
			ar.Post("/coordinator/login", h.Public.CoordinatorLogin)
			ar.Post("/logout", h.Public.Logout)
		})

		api.Group(func(sr chi.Router) {
			sr.Use(middleware.Authenticate(resolver, logger))

			// PUBLIC
			sr.Group(func(pr chi.Router) {
				pr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

				pr.Get("/zones", h.Public.ZoneList)
				pr.Get("/zones/geojson", h.Public.ZoneMap)
				pr.Get("/zones/summary", h.Public.ZoneSummary)
				pr.Get("/needs", h.Public.Needs)
			})

			// COORDINATOR
			sr.Route("/coordinator", func(cr chi.Router) {
				cr.Use(middleware.Require(domain.ActionUpdateZone))
				cr.Use(middleware.Limit(ctx, 5, 10, 10*time.Minute, logger))

				cr.Get("/zones", h.Coordinator.ZoneList)
				cr.Get("/zones/{id}", h.Coordinator.ZoneGet)
				cr.Patch("/zones/{id}", h.Coordinator.ZoneUpdate)
			})

			// ADMIN
			sr.Route("/admin", func(ar chi.Router) {
				ar.Use(middleware.Require(domain.ActionManageZones))
				ar.Use(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger))

				ar.Get("/stats", h.Admin.Stats)
				ar.Get("/audit", h.Admin.Audit)
				ar.Post("/maintenance/restructure", h.Admin.Restructure)

				ar.Route("/zones", func(zr chi.Router) {
					zr.Get("/", h.Admin.ZoneList)
					zr.Post("/", h.Admin.ZoneCreate)
					zr.Patch("/{id}", h.Admin.ZoneEdit)
					zr.Delete("/{id}", h.Admin.ZoneDelete)
				})

				ar.Route("/coordinators", func(cr chi.Router) {
					cr.Get("/", h.Admin.CoordinatorList)
					cr.Post("/", h.Admin.CoordinatorAdd)
					cr.Post("/{username}/deactivate", h.Admin.CoordinatorDeactivate)
					cr.Delete("/{username}", h.Admin.CoordinatorDelete)
				})
			})
		})
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
