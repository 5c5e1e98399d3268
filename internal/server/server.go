// Package server assembles the Fiber applications and owns their listeners.
package server

import (
	"context"
	"net"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	handlers "greeter/internal/http/handler"
	"greeter/internal/http/middleware"
	"greeter/internal/service"
)

// Options are the collaborators of the public server.
type Options struct {
	Logger     zerolog.Logger
	Registerer prometheus.Registerer
	Greeter    service.GreetingService
}

// Server is the public HTTP responder.
type Server struct {
	app *fiber.App
	log zerolog.Logger
}

// New builds the public application: middleware stack and the greeting route.
func New(opts Options) (*Server, error) {
	promMiddleware, err := middleware.NewPrometheusMiddleware(opts.Registerer)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "greeter",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Order matters: RequestLogger resolves errors into responses, so the
	// middlewares wrapping it observe final statuses.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.RequestLogger(opts.Logger))

	handlers.RegisterRoutes(app, opts.Greeter)

	s := &Server{app: app, log: opts.Logger}
	app.Hooks().OnListen(s.announce)

	return s, nil
}

// announce runs once the socket is bound.
func (s *Server) announce(data fiber.ListenData) error {
	s.log.Info().Str("port", data.Port).Msgf("Server running on port %s", data.Port)
	return nil
}

// App exposes the underlying Fiber app, mainly for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds addr and serves until Shutdown. A bind failure is returned
// immediately and nothing is announced.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Serve serves on an already bound listener.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
