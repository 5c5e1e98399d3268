package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/automaxprocs/maxprocs"

	"greeter/internal/config"
	"greeter/internal/logging"
	"greeter/internal/otel"
	"greeter/internal/server"
	"greeter/internal/service"
)

// @title Greeter API
// @version 1.0
// @description Serves a fixed greeting on GET /.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := logging.New(os.Stdout, logging.Options{
		Level:    cfg.Log.Level,
		Pretty:   cfg.Log.Pretty,
		Location: cfg.Log.Location(),
	})

	// Respect container CPU limits unless GOMAXPROCS is set explicitly.
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	})); err != nil {
		logger.Debug().Err(err).Msg("failed to reset GOMAXPROCS")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := server.New(server.Options{
		Logger:     logger,
		Registerer: reg,
		Greeter:    service.NewGreetingService(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	errCh := make(chan serveError, 2)

	var admin *server.Admin
	if cfg.AdminAddr != "" {
		admin = server.NewAdmin(logger, reg)
		go func() {
			if err := admin.Listen(cfg.AdminAddr); err != nil {
				errCh <- serveError{what: "admin", err: err}
			}
		}()
	}

	go func() {
		if err := srv.Listen(cfg.Addr()); err != nil {
			errCh <- serveError{what: "http", err: err}
		}
	}()

	select {
	case se := <-errCh:
		logger.Fatal().Err(se.err).Str("what", se.what).Msg("serving failed")
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if admin != nil {
		if err := admin.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("admin shutdown")
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("tracer shutdown")
	}
}

type serveError struct {
	what string
	err  error
}
