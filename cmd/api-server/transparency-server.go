package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"transparency/internal/bootstrap"
	"transparency/internal/config"
	"transparency/internal/handlers"
	"transparency/internal/logger"
	"transparency/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logr := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	defer logr.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(ctx, cfg, logr)
	if err != nil {
		logr.WithError(err).Error("cannot load catalog", map[string]interface{}{"source": cfg.Catalog.Source})
		os.Exit(1)
	}

	store := bootstrap.OpenCache(ctx, cfg, logr)
	defer store.Close()

	h := handlers.NewHandler(cat, store, logr, handlers.Options{
		Strict:          cfg.Query.Strict,
		DefaultPageSize: cfg.Query.DefaultPageSize,
		MaxPageSize:     cfg.Query.MaxPageSize,
		SearchLimit:     cfg.Query.SearchLimit,
	})

	r := h.Routes(middleware.RealIP, handlers.RequestLogger(logr), middleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logr.WithError(err).Error("shutdown failed", nil)
		}
	}()

	logr.Info("starting server", map[string]interface{}{
		"address": cfg.Server.Address,
		"env":     cfg.App.Environment,
		"version": cfg.App.Version,
		"build":   version.String(),
		"strict":  cfg.Query.Strict,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.WithError(err).Error("server stopped", nil)
		os.Exit(1)
	}
	logr.Info("server stopped", nil)
}
