package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
	"github.com/jhoicas/surgishop-scanner/internal/application/scanner"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/gs1"
)

// ScannerHandler expone los métodos RPC del escáner GS1.
type ScannerHandler struct {
	uc  *scanner.ResolveBatchUseCase
	log zerolog.Logger
}

// NewScannerHandler construye el handler.
func NewScannerHandler(uc *scanner.ResolveBatchUseCase, log zerolog.Logger) *ScannerHandler {
	return &ScannerHandler{uc: uc, log: log}
}

// ParseGS1AndGetBatch godoc
// @Summary      Resolver un escaneo GS1 a artículo y lote
// @Description  Crea el lote si no existe o completa su vencimiento según la configuración.
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseGS1Request  true  "GTIN, vencimiento YYMMDD, lote y artículo opcional"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ValidationErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/method/parse_gs1_and_get_batch [post]
func (h *ScannerHandler) ParseGS1AndGetBatch(c *fiber.Ctx) error {
	var in dto.ParseGS1Request
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Resolve(c.UserContext(), scanner.ResolveBatchInput{
		GTIN:     in.GTIN,
		Expiry:   in.Expiry,
		Lot:      in.Lot,
		ItemCode: in.ItemCode,
	})
	if err != nil {
		return h.scanError(c, err, in.GTIN)
	}
	return c.JSON(dto.MessageResponse{Message: out})
}

// ParseGS1String godoc
// @Summary      Interpretar un código GS1 crudo y resolver su lote
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseGS1StringRequest  true  "Cadena GS1 tal como la entrega el lector"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ValidationErrorResponse
// @Router       /api/method/parse_gs1_string [post]
func (h *ScannerHandler) ParseGS1String(c *fiber.Ctx) error {
	var in dto.ParseGS1StringRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.GS1String) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "gs1_string es requerido"})
	}
	out, err := h.uc.ParseAndResolve(c.UserContext(), in.GS1String, in.ItemCode)
	if err != nil {
		var gtin string
		if res, perr := gs1.Parse(gs1.Sanitize(in.GS1String)); perr == nil {
			gtin = res.GTIN
		}
		return h.scanError(c, err, gtin)
	}
	return c.JSON(dto.MessageResponse{Message: out})
}

// scanError: los fallos de validación se muestran al usuario; el resto se registra y
// se devuelve con HTTP 200 para que el escáner siga operando.
func (h *ScannerHandler) scanError(c *fiber.Ctx, err error, gtin string) error {
	if domain.IsValidation(err) {
		return respondError(c, err)
	}
	h.log.Error().Err(err).Str("gtin", gtin).Msg("error inesperado resolviendo escaneo GS1")
	return c.JSON(dto.ScanErrorResponse{FoundItem: nil, Error: err.Error(), GTIN: gtin})
}
