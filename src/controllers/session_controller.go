package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leadform-backend/src/engine"
	"leadform-backend/src/services/forms"
	"leadform-backend/src/services/sessions"
	"leadform-backend/src/utils"
)

type answerIn struct {
	QuestionID string `json:"questionId" validate:"required"`
	Value      string `json:"value"`
}

// StartSession godoc
// @Summary      Start a respondent session on a published form
// @Tags         sessions
// @Produce      json
// @Param        formId   path  string  true  "Form ID"
// @Success      201  {object}  sessions.SessionView
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/sessions [post]
func StartSession(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	view, err := sessions.StartSession(c.Context(), formID)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrFormNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		case errors.Is(err, sessions.ErrFormUnpublished):
			return utils.HandleError(c, fiber.StatusConflict, "Form is not published")
		case errors.Is(err, engine.ErrInvalidForm):
			return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetSession godoc
// @Summary      Get the current state of a session
// @Tags         sessions
// @Produce      json
// @Param        token   path  string  true  "Session token"
// @Success      200  {object}  sessions.SessionView
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{token} [get]
func GetSession(c *fiber.Ctx) error {
	view, err := sessions.GetSession(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(view)
}

// ApplyAnswer godoc
// @Summary      Record one answer in a session
// @Description  Checkbox questions toggle the given option; other types overwrite the stored value
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        token   path  string  true  "Session token"
// @Param        body body answerIn true "Answer"
// @Success      200  {object}  sessions.SessionView
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{token}/answers [post]
func ApplyAnswer(c *fiber.Ctx) error {
	var in answerIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "questionId is required")
	}

	view, err := sessions.ApplyAnswer(c.Context(), c.Params("token"), in.QuestionID, in.Value)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
		case errors.Is(err, sessions.ErrSessionCompleted):
			return utils.HandleError(c, fiber.StatusConflict, "Session already completed")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(view)
}

// AdvanceSession godoc
// @Summary      Advance a session to the next block
// @Description  Resolves conditional jumps; finalizes and persists the submission when the flow completes
// @Tags         sessions
// @Produce      json
// @Param        token   path  string  true  "Session token"
// @Success      200  {object}  sessions.SessionView
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /sessions/{token}/advance [post]
func AdvanceSession(c *fiber.Ctx) error {
	view, err := sessions.Advance(c.Context(), c.Params("token"))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
		case errors.Is(err, sessions.ErrSessionCompleted):
			return utils.HandleError(c, fiber.StatusConflict, "Session already completed")
		case errors.Is(err, engine.ErrBlockIncomplete):
			return utils.HandleError(c, fiber.StatusUnprocessableEntity, "Required questions in the current block are unanswered")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(view)
}

// RetreatSession godoc
// @Summary      Step a session back one block
// @Description  Always permitted; a no-op on the first block. Does not reverse conditional jumps.
// @Tags         sessions
// @Produce      json
// @Param        token   path  string  true  "Session token"
// @Success      200  {object}  sessions.SessionView
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{token}/retreat [post]
func RetreatSession(c *fiber.Ctx) error {
	view, err := sessions.Retreat(c.Context(), c.Params("token"))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
		case errors.Is(err, sessions.ErrSessionCompleted):
			return utils.HandleError(c, fiber.StatusConflict, "Session already completed")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(view)
}
