package routes

import (
	"leadform-backend/src/controllers"
	"leadform-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// submissionRoutes wires the dashboard read side.
func submissionRoutes(router fiber.Router) {
	router.Get("/forms/:formId/submissions", middleware.AuthJWT, controllers.GetSubmissionsByForm)
	router.Get("/submissions/:id", middleware.AuthJWT, controllers.GetSubmission)
	router.Get("/analytics/forms/:formId/lead-quality", middleware.AuthJWT, controllers.GetLeadQuality)
}
