package routes

import (
	"leadform-backend/src/controllers"
	"leadform-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes wires form authoring. Reads are public (the respondent client
// fetches definitions); writes require a verified bearer token.
func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")

	forms.Get("/", controllers.GetAllForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Get("/:id/qrcode", controllers.GetFormQRCode)

	forms.Post("/", middleware.AuthJWT, controllers.CreateForm)
	forms.Put("/:id", middleware.AuthJWT, controllers.UpdateForm)
	forms.Patch("/:id", middleware.AuthJWT, controllers.UpdateForm)
	forms.Post("/:id/publish", middleware.AuthJWT, controllers.PublishForm)
	forms.Delete("/:id", middleware.AuthJWT, controllers.DeleteForm)
}
