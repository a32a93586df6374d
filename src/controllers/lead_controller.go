package controllers

import (
	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/leads"
	"Backend-Curadoria-AF/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SubmitLead godoc
// @Summary      Submit the captured lead
// @Description  Persists the lead, forwards it to the intake webhook and closes the session on success. A failed submission leaves the session retryable.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        body body models.LeadForm true "Capture form"
// @Success      200  {object}  models.SubmitResult
// @Failure      400  {object}  models.SubmitResult
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id}/submit [post]
func SubmitLead(c *fiber.Ctx) error {
	session, err := Sessions.BeginSubmit(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	var form models.LeadForm
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.SubmitResult{
			Success: false,
			Error:   "Dados inválidos. Verifique os campos.",
		})
	}
	if verr := leads.ValidateForm(&form); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"field":   verr.Field,
			"error":   verr.Message,
		})
	}

	payload := leads.Assemble(session, &form)
	result := leads.Submit(c.Context(), payload)

	Sessions.FinishSubmit(session.ID, result.Success)

	if !result.Success {
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	}
	return c.JSON(result)
}
