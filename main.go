package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mergington-activities/config"
	"mergington-activities/controllers"
	"mergington-activities/driver"
	"mergington-activities/services"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		logrus.Fatalf("Error configuring logger: %v", err)
	}

	s, err := driver.ConnectStore(cfg.SeedFile, log)
	if err != nil {
		log.WithError(err).Fatal("failed to seed store")
	}
	signupService := services.NewSignupService(s, log)
	router := controllers.NewRouter(s, signupService, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
	}
}
