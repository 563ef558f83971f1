package controllers

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leadform-backend/src/engine"
	"leadform-backend/src/models"
	"leadform-backend/src/qrcode"
	"leadform-backend/src/services/forms"
	"leadform-backend/src/utils"
)

// CreateForm godoc
// @Summary      Create a new form
// @Description  Create a form definition with blocks, questions and conditional rules
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.Form true "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	var form models.Form
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := forms.CreateForm(c.Context(), &form)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidForm) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create form")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetAllForms godoc
// @Summary      Get all forms with pagination, search, and sorting
// @Tags         forms
// @Produce      json
// @Param        page   query  int  false  "Page number" default(1)
// @Param        limit  query  int  false  "Number of items per page" default(10)
// @Param        search query  string  false  "Search term"
// @Param        sortBy query  string  false  "Field to sort by" default(_id)
// @Param        order  query  string  false  "Sort order (asc or desc)" default(asc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func GetAllForms(c *fiber.Ctx) error {
	params := parsePagination(c)

	result, err := forms.GetForms(c.Context(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// GetFormByID godoc
// @Summary      Get a form by ID
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form definition
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Param        body body models.Form true "Form definition"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var form models.Form
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := forms.UpdateForm(c.Context(), id, &form)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrFormNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		case errors.Is(err, engine.ErrInvalidForm):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(updated)
}

// PublishForm godoc
// @Summary      Publish a form
// @Description  Runs the stricter authoring checks and marks the form live
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/publish [post]
func PublishForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.PublishForm(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrFormNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		case errors.Is(err, engine.ErrInvalidForm):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(form)
}

// DeleteForm godoc
// @Summary      Delete a form and its submissions
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := forms.DeleteForm(c.Context(), id); err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Form deleted successfully"})
}

// GetFormQRCode godoc
// @Summary      Get a QR code for the form's public link
// @Description  PNG image encoding the respondent-facing URL of a published form
// @Tags         forms
// @Produce      png
// @Param        id   path  string  true  "Form ID"
// @Success      200  {file}    file
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/qrcode [get]
func GetFormQRCode(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !form.Published {
		return utils.HandleError(c, fiber.StatusBadRequest, "Form is not published")
	}

	base := strings.TrimRight(os.Getenv("FRONTEND_URL"), "/")
	if base == "" {
		base = "http://localhost:3000"
	}

	png, err := qrcode.GeneratePNG(base+"/f/"+form.ID.Hex(), 256)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// parsePagination reads the shared paging params from the query string.
func parsePagination(c *fiber.Ctx) models.PaginationParams {
	params := models.DefaultPagination()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	if search := c.Query("search"); search != "" {
		params.Search = search
	}
	if sortBy := c.Query("sortBy"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := c.Query("order"); order != "" {
		params.Order = order
	}
	return params
}
