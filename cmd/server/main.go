// @title Room Organizer API
// @version 1.0
// @description Looks up which organizer operates a streaming room, plus operator tools.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"roomorganizer/config"
	"roomorganizer/internal/bootstrap"
	httpdelivery "roomorganizer/internal/delivery/http"
	"roomorganizer/internal/delivery/http/controllers"
	"roomorganizer/internal/delivery/http/middleware"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	go func() {
		if err := app.Tables.Warm(ctx); err != nil {
			logger.Warn("reference table warm-up incomplete", "err", err)
		}
	}()

	router := httpdelivery.NewRouter(
		controllers.NewOrganizerController(logger, app.Organizers),
		controllers.NewArchiveController(logger, app.Archives),
		app.Tokens,
		logger,
	)
	var handler http.Handler = router
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "err", err)
	}
}
