package routes

import (
	"leadform-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// sessionRoutes wires the respondent flow. Sessions are public and addressed
// by an opaque token.
func sessionRoutes(router fiber.Router) {
	router.Post("/forms/:formId/sessions", controllers.StartSession)

	sessions := router.Group("/sessions")
	sessions.Get("/:token", controllers.GetSession)
	sessions.Post("/:token/answers", controllers.ApplyAnswer)
	sessions.Post("/:token/advance", controllers.AdvanceSession)
	sessions.Post("/:token/retreat", controllers.RetreatSession)
}
