package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// registers the swag API description read by the Swagger UI
	_ "greeter/docs"
)

// RegisterAdminRoutes attaches the operational routes to the admin app.
// They never share a listener with the public route.
func RegisterAdminRoutes(app *fiber.App, gatherer prometheus.Gatherer) {
	app.Get("/metrics", Metrics(gatherer))
	app.Get("/healthz", LivenessProbe())
	app.Get("/swagger/*", SwaggerUI())
}

// Metrics serves the Prometheus exposition format for gatherer.
func Metrics(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SwaggerUI serves the Swagger UI over the registered API description.
// The description leaves host and scheme empty so clients resolve them
// against the admin address they used.
func SwaggerUI() fiber.Handler {
	return swagger.HandlerDefault
}
