package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
	"github.com/jhoicas/surgishop-scanner/internal/application/hooks"
	"github.com/jhoicas/surgishop-scanner/internal/domain"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// HookHandler recibe los eventos de ciclo de vida de documentos del ERP.
type HookHandler struct {
	dispatcher *hooks.Dispatcher
	log        zerolog.Logger
}

// NewHookHandler construye el handler.
func NewHookHandler(dispatcher *hooks.Dispatcher, log zerolog.Logger) *HookHandler {
	return &HookHandler{dispatcher: dispatcher, log: log}
}

// Handle godoc
// @Summary      Ejecutar un hook de documento
// @Description  validate aborta el guardado con 422 si alguna fila infringe las reglas de lotes.
// @Tags         hooks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        doctype  path  string             true  "Doctype (p. ej. Purchase Receipt)"
// @Param        event    path  string             true  "validate | on_submit"
// @Param        body     body  dto.HookDocument   true  "Documento con sus filas"
// @Success      200      {object}  dto.HookResponse
// @Failure      400      {object}  dto.ValidationErrorResponse
// @Failure      422      {object}  dto.ValidationErrorResponse
// @Router       /api/hooks/{doctype}/{event} [post]
func (h *HookHandler) Handle(c *fiber.Ctx) error {
	docType, err := url.PathUnescape(c.Params("doctype"))
	if err != nil || docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_DOCTYPE", Message: "doctype es requerido"})
	}
	event := hooks.Event(c.Params("event"))

	hd, err := dto.DecodeHookDocument(c.Body())
	if err != nil {
		return respondError(c, err)
	}
	doc, err := hd.ToEntity(entity.DocKind(docType))
	if err != nil {
		return respondError(c, err)
	}

	requestID := c.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := h.log.With().Str("request_id", requestID).Str("doctype", docType).Str("event", string(event)).Str("doc", doc.Name).Logger()

	if err := h.dispatcher.Dispatch(c.UserContext(), doc.Kind, event, doc); err != nil {
		if domain.IsValidation(err) {
			log.Info().Err(err).Msg("documento rechazado")
		} else {
			log.Error().Err(err).Msg("hook fallido")
		}
		return respondError(c, err)
	}
	c.Set(fiber.HeaderXRequestID, requestID)
	return c.JSON(dto.HookResponse{DocType: docType, Event: string(event), Status: "ok"})
}

// List godoc
// @Summary      Listar los hooks registrados
// @Tags         hooks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  hooks.Registration
// @Router       /api/hooks [get]
func (h *HookHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.dispatcher.Registrations())
}
