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

	"innacri/internal/api/handlers/http/admin"
	"innacri/internal/api/handlers/http/public"
	"innacri/internal/api/handlers/http/system"
	"innacri/internal/config"
	"innacri/internal/middleware"
	"innacri/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc)
	publicHandler := public.NewHandler(logger, svc, svc, svc, svc)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Post("/alerts/regenerate", adminHandler.AlertsRegenerate)
		})

		// PUBLIC
		api.Route("/alerts", func(pr chi.Router) {
			pr.Get("/map", publicHandler.AlertsMapView)

			pr.Group(func(sr chi.Router) {
				sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
				sr.Post("/", publicHandler.AlertSubmit)
			})
		})

		api.Get("/catalogs", publicHandler.AlertCatalogs)
		api.Get("/stats", publicHandler.AlertStats)

		api.Post("/location", publicHandler.LocationUpdate)

		api.Route("/notifications", func(nr chi.Router) {
			nr.Get("/", publicHandler.NotificationList)
			nr.Put("/settings", publicHandler.NotificationSettings)
			nr.Delete("/{id}", publicHandler.NotificationDismiss)
			nr.Post("/demo", publicHandler.NotificationDemo)
			nr.Post("/simulation", publicHandler.NotificationSimulation)
		})

		api.Route("/tutorial", func(tr chi.Router) {
			tr.Get("/", publicHandler.TutorialState)
			tr.Post("/complete", publicHandler.TutorialComplete)
		})

		api.Get("/route/safe", publicHandler.SafeRoute)

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
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
		s.logger.Info("🚀 Starting HTTP server",
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
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

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
