package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/handlers/analytics"
	analyticssvc "github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/analytics"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/keepalive"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb/bills"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb/products"

	saMiddleware "github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Bills     bills.Store
	Products  products.Store
	Engine    *analyticssvc.Engine
	KeepAlive *keepalive.Pinger
	CheckDB   handlers.HealthChecker
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Bills, deps.Products, deps.Engine, deps.KeepAlive, deps.CheckDB)

	router := chi.NewRouter()

	router.Use(saMiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/", handler.Status)
	router.Get("/health", handler.Health)

	router.Route("/analytics", func(r chi.Router) {
		r.Get("/daily", handler.DailySales)
		r.Get("/weekly", handler.WeeklySales)
		r.Get("/monthly", handler.MonthlySales)
		r.Get("/top-products", handler.TopProducts)
		r.Get("/revenue-trend", handler.RevenueTrend)
		r.Get("/report", handler.Report)
		r.Get("/report/text", handler.TextReport)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the configured mux, mostly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
