package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/surgishop-scanner/internal/application/condition"
	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
)

// ConditionHandler administra la lista de condiciones de recepción.
type ConditionHandler struct {
	svc *condition.OptionsService
}

// NewConditionHandler construye el handler.
func NewConditionHandler(svc *condition.OptionsService) *ConditionHandler {
	return &ConditionHandler{svc: svc}
}

// Get godoc
// @Summary      Condiciones configuradas
// @Tags         conditions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConditionOptionsResponse
// @Router       /api/condition-options [get]
func (h *ConditionHandler) Get(c *fiber.Ctx) error {
	labels, err := h.svc.Labels(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ConditionOptionsResponse{Conditions: labels, Options: condition.BuildSelectOptions(labels)})
}

// Update godoc
// @Summary      Guardar condiciones y aplicarlas a los campos custom_condition
// @Tags         conditions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConditionOptionsRequest  true  "Lista ordenada de condiciones"
// @Success      200   {object}  dto.ConditionOptionsResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/condition-options [put]
func (h *ConditionHandler) Update(c *fiber.Ctx) error {
	var in dto.ConditionOptionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.svc.Save(c.UserContext(), in.Conditions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ConditionOptionsResponse{Conditions: saved, Options: condition.BuildSelectOptions(saved)})
}
