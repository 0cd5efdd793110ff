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

	"github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/fleet"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/ingest"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/places"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/system"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/trips"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/config"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/middleware"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	ingestHandler := ingest.NewHandler(logger, svc.Tracker)
	fleetHandler := fleet.NewHandler(logger, svc.Fleet, svc.Alerts)
	tripsHandler := trips.NewHandler(logger, svc.Trips)
	placesHandler := places.NewHandler(logger, svc.Geofence, svc.Geofence)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, ingestHandler, fleetHandler, tripsHandler, placesHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	ingestHandler *ingest.Handler,
	fleetHandler *fleet.Handler,
	tripsHandler *trips.Handler,
	placesHandler *places.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// INGEST, high-volume provider forwarder traffic
		api.Route("/integrations/traccar", func(ir chi.Router) {
			ir.Use(middleware.WebhookTokenMiddleware(cfg.Traccar.WebhookToken))
			ir.Use(middleware.Limit(50, 100, 5*time.Minute, logger))
			ir.Post("/webhook", ingestHandler.TraccarWebhook)
		})

		// FLEET MANAGEMENT
		api.Route("/fleet", func(fr chi.Router) {
			fr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			fr.Use(middleware.Limit(10, 20, 10*time.Minute, logger))

			fr.Get("/vehicles", fleetHandler.VehicleStatuses)
			fr.Get("/vehicles/{id}/status", fleetHandler.VehicleStatus)
			fr.Get("/vehicles/{id}/history", fleetHandler.VehicleHistory)
			fr.Get("/alerts", fleetHandler.OpenAlerts)
			fr.Get("/notifications", fleetHandler.Notifications)

			fr.Route("/trips", func(tr chi.Router) {
				tr.Post("/", tripsHandler.TripCreate)
				tr.Get("/", tripsHandler.TripList)

				tr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", tripsHandler.TripGet)
					rr.Post("/dispatch", tripsHandler.TripDispatch)
					rr.Post("/arrive", tripsHandler.TripArrive)
					rr.Post("/settle", tripsHandler.TripSettle)
					rr.Post("/cancel", tripsHandler.TripCancel)
				})
			})

			fr.Route("/places", func(pr chi.Router) {
				pr.Post("/", placesHandler.PlaceSave)
				pr.Get("/{id}", placesHandler.PlaceGet)
				pr.Post("/permissions/sync", placesHandler.PermissionsSync)
			})
		})

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
		s.logger.Info("starting HTTP server",
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
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

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
