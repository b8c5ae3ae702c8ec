// Package server owns the HTTP listener lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/vanik/config"
	"github.com/shashiranjanraj/vanik/internal/kernel"
	"github.com/shashiranjanraj/vanik/pkg/cache"
	"github.com/shashiranjanraj/vanik/pkg/database"
	"github.com/shashiranjanraj/vanik/pkg/logger"
)

// Start boots every subsystem and serves HTTP until SIGINT or SIGTERM
// arrives, then drains in-flight requests before closing the database
// and flushing the log sink.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := logger.EnableMongo(); err != nil {
		logger.Warn("mongo log sink disabled", "error", err)
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, sessions held in memory", "error", err)
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown incomplete", "error", err)
	}

	if err := database.Close(); err != nil {
		logger.Error("database close failed", "error", err)
	}
	logger.Shutdown()

	return nil
}
