package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorTable orden de evaluación: el primer sentinela que coincide decide el status.
var errorTable = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrBatchAutoCreateDisabled, fiber.StatusBadRequest, "BATCH_AUTO_CREATE_DISABLED"},
	{domain.ErrNoTriggerBarcodes, fiber.StatusBadRequest, "NO_TRIGGER_BARCODES"},
	{domain.ErrUnsupportedDocument, fiber.StatusBadRequest, "UNSUPPORTED_DOCTYPE"},
	{domain.ErrUnsupportedHookEvent, fiber.StatusBadRequest, "UNSUPPORTED_EVENT"},
	{domain.ErrUnknownGTIN, fiber.StatusNotFound, "UNKNOWN_GTIN"},
	{domain.ErrItemNotFound, fiber.StatusNotFound, "ITEM_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrAmbiguousGTIN, fiber.StatusConflict, "AMBIGUOUS_GTIN"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrBarcodeMismatch, fiber.StatusUnprocessableEntity, "BARCODE_MISMATCH"},
	{domain.ErrItemDisabled, fiber.StatusUnprocessableEntity, "ITEM_DISABLED"},
	{domain.ErrBatchingNotEnabled, fiber.StatusUnprocessableEntity, "BATCHING_NOT_ENABLED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// mapError traduce un error de aplicación a status HTTP y cuerpo de error.
// Los *domain.ValidationError conservan su código y la fila afectada.
func mapError(err error) (int, dto.ValidationErrorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusUnprocessableEntity, dto.ValidationErrorResponse{Code: ve.Code, Message: ve.Error(), Row: ve.Row}
	}
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m.status, dto.ValidationErrorResponse{Code: m.code, Message: err.Error()}
		}
	}
	if domain.IsValidation(err) {
		return fiber.StatusUnprocessableEntity, dto.ValidationErrorResponse{Code: "VALIDATION", Message: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ValidationErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

// respondError escribe la respuesta de error mapeada.
func respondError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}
