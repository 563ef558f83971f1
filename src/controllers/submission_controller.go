package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leadform-backend/src/services/submissions"
	"leadform-backend/src/utils"
)

// GetSubmission godoc
// @Summary      Get a submission by ID
// @Tags         submissions
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func GetSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	submission, err := submissions.GetSubmissionByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, submissions.ErrSubmissionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(submission)
}

// GetSubmissionsByForm godoc
// @Summary      List a form's submissions, newest first
// @Tags         submissions
// @Produce      json
// @Param        formId path  string  true  "Form ID"
// @Param        page   query  int  false  "Page number" default(1)
// @Param        limit  query  int  false  "Number of items per page" default(10)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /forms/{formId}/submissions [get]
func GetSubmissionsByForm(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	result, err := submissions.GetSubmissionsByFormID(c.Context(), formID, parsePagination(c))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// GetLeadQuality godoc
// @Summary      Lead-quality breakdown for a form
// @Description  Groups submissions into cold/warm/hot lead-score buckets
// @Tags         submissions
// @Produce      json
// @Param        formId path  string  true  "Form ID"
// @Success      200  {array}  submissions.LeadQualityItem
// @Failure      400  {object}  models.ErrorResponse
// @Router       /analytics/forms/{formId}/lead-quality [get]
func GetLeadQuality(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	items, err := submissions.GetLeadQualityBreakdown(c.Context(), formID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(items)
}
