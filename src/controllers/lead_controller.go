package controllers

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"leadform-backend/src/models"
	"leadform-backend/src/services/leads"
	"leadform-backend/src/utils"
)

var validate = validator.New()

type leadIn struct {
	Name   string `json:"name" validate:"required,min=2"`
	Phone  string `json:"phone" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

// IngestLead godoc
// @Summary      Webhook lead ingestion
// @Description  Accepts third-party lead payloads. Deduplicates by phone number: a matching phone returns the existing record, otherwise a new lead is created with status "new" and a follow-up timestamp.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body body leadIn true "Lead payload"
// @Success      200  {object}  models.Lead "Existing lead (duplicate phone)"
// @Success      201  {object}  models.Lead "Newly created lead"
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /webhooks/leads [post]
func IngestLead(c *fiber.Ctx) error {
	if secret := os.Getenv("LEAD_WEBHOOK_SECRET"); secret != "" {
		if c.Get("X-Webhook-Secret") != secret {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid webhook secret")
		}
	}

	var in leadIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid lead payload: "+err.Error())
	}

	lead := &models.Lead{
		Name:   in.Name,
		Phone:  in.Phone,
		Email:  in.Email,
		Source: in.Source,
		Notes:  in.Notes,
	}

	result, created, err := leads.IngestLead(c.Context(), lead)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !created {
		log.Printf("[leads] duplicate phone=%s existing=%s", in.Phone, result.ID.Hex())
		return c.JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetLeads godoc
// @Summary      List leads with pagination and optional status filter
// @Tags         leads
// @Produce      json
// @Param        page   query  int  false  "Page number" default(1)
// @Param        limit  query  int  false  "Number of items per page" default(10)
// @Param        search query  string  false  "Search name or phone"
// @Param        status query  string  false  "Filter by status (new, follow_up)"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /leads [get]
func GetLeads(c *fiber.Ctx) error {
	result, err := leads.GetLeads(c.Context(), parsePagination(c), c.Query("status"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}
