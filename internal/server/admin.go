package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	handlers "greeter/internal/http/handler"
	"greeter/internal/http/middleware"
)

// Admin serves metrics, liveness and API docs on a listener separate from
// the public one.
type Admin struct {
	app *fiber.App
	log zerolog.Logger
}

// NewAdmin builds the admin application exposing gatherer on /metrics.
func NewAdmin(logger zerolog.Logger, gatherer prometheus.Gatherer) *Admin {
	app := fiber.New(fiber.Config{
		AppName:               "greeter-admin",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	handlers.RegisterAdminRoutes(app, gatherer)

	a := &Admin{app: app, log: logger}
	app.Hooks().OnListen(func(data fiber.ListenData) error {
		a.log.Info().Str("host", data.Host).Str("port", data.Port).Msg("admin listener running")
		return nil
	})

	return a
}

// App exposes the underlying Fiber app.
func (a *Admin) App() *fiber.App {
	return a.app
}

// Listen binds addr and serves until Shutdown.
func (a *Admin) Listen(addr string) error {
	return a.app.Listen(addr)
}

// Serve serves on an already bound listener.
func (a *Admin) Serve(ln net.Listener) error {
	return a.app.Listener(ln)
}

// Shutdown stops the admin listener.
func (a *Admin) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}
