package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	formRoutes(app)
	sessionRoutes(app)
	submissionRoutes(app)
	leadRoutes(app)

	// Liveness check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
