package routes

import (
	"leadform-backend/src/controllers"
	"leadform-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// leadRoutes wires webhook ingestion (shared-secret guarded in the handler)
// and the dashboard lead listing.
func leadRoutes(router fiber.Router) {
	router.Post("/webhooks/leads", controllers.IngestLead)
	router.Get("/leads", middleware.AuthJWT, controllers.GetLeads)
}
