package handler

import (
	"github.com/gofiber/fiber/v2"

	"greeter/internal/service"
)

// RegisterRoutes attaches the public routes to app. GET / is the only one;
// Fiber derives HEAD / from it.
func RegisterRoutes(app *fiber.App, greeter service.GreetingService) {
	app.Get("/", Greeting(greeter))
}

// Greeting answers with the greeting as text/plain.
//
// @Summary Greeting
// @Produce plain
// @Success 200 {string} string
// @Failure 404 {object} errorPayload
// @Router / [get]
func Greeting(greeter service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(greeter.Greet(c.UserContext()))
	}
}
