package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/optgo/gurobi-go/internal/config"
	"github.com/optgo/gurobi-go/internal/logging"
	"github.com/optgo/gurobi-go/internal/server"
	"github.com/optgo/gurobi-go/pkg/gurobi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	solver, err := server.NewLPSolver(cfg)
	if err != nil {
		if errors.Is(err, gurobi.ErrNotBuilt) {
			logger.Fatal("native solver library not linked into this binary", zap.Error(err))
		}
		logger.Fatal("initialize solver", zap.Error(err))
	}
	defer func() { _ = solver.Close() }()

	major, minor, technical := gurobi.Version()
	logger.Info("solver ready", zap.String("version", fmt.Sprintf("%d.%d.%d", major, minor, technical)))

	srv := server.New(solver, logger)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info("starting server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
