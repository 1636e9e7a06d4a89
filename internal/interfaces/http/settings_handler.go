package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// SettingsHandler lectura y edición de la configuración (admin).
type SettingsHandler struct {
	resolver *settings.Resolver
	sheet    *settings.TriggerSheetUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(resolver *settings.Resolver, sheet *settings.TriggerSheetUseCase) *SettingsHandler {
	return &SettingsHandler{resolver: resolver, sheet: sheet}
}

// Get godoc
// @Summary      Configuración vigente
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.SettingsResponse{Settings: h.resolver.Get(c.UserContext())})
}

// Update godoc
// @Summary      Guardar la configuración
// @Description  Invalida la caché en todos los procesos. Devuelve avisos si se desactiva la validación de vencimientos.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Settings  true  "Configuración completa"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	// Campos omitidos conservan el valor por defecto.
	in := entity.DefaultSettings()
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BatchNamingTemplate != "" &&
		in.BatchNamingTemplate != entity.BatchNamingItemLot &&
		in.BatchNamingTemplate != entity.BatchNamingLot {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "batch_naming_template debe ser {item}-{lot} o {lot}"})
	}
	warnings, err := h.resolver.Save(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SettingsResponse{Settings: h.resolver.Get(c.UserContext()), Warnings: warnings})
}

// TriggerSheet godoc
// @Summary      Hoja PDF con los códigos de disparo configurados
// @Tags         settings
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/settings/trigger-barcodes.pdf [get]
func (h *SettingsHandler) TriggerSheet(c *fiber.Ctx) error {
	out, err := h.sheet.Generate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="trigger-barcodes.pdf"`)
	return c.Send(out)
}
