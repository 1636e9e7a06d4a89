package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Resolución GS1
	ErrUnknownGTIN             = errors.New("no existe un artículo para el GTIN escaneado")
	ErrAmbiguousGTIN           = errors.New("el GTIN escaneado pertenece a más de un artículo")
	ErrBarcodeMismatch         = errors.New("el GTIN escaneado no pertenece al artículo indicado")
	ErrItemNotFound            = errors.New("artículo no encontrado")
	ErrItemDisabled            = errors.New("artículo deshabilitado")
	ErrBatchingNotEnabled      = errors.New("el artículo no usa números de lote")
	ErrBatchAutoCreateDisabled = errors.New("la creación automática de lotes está deshabilitada")
	ErrNoTriggerBarcodes       = errors.New("no hay códigos de disparo configurados")

	// Validación de documentos de stock
	ErrBatchExpired         = errors.New("el lote ya está vencido")
	ErrSerialBatchMismatch  = errors.New("el número de serie no pertenece al lote")
	ErrUnsupportedDocument  = errors.New("tipo de documento no soportado")
	ErrUnsupportedHookEvent = errors.New("evento de hook no soportado")
)

// ValidationError es un fallo de validación visible al usuario asociado a una fila del documento.
// Envuelve un error sentinela para poder usar errors.Is.
type ValidationError struct {
	Code    string
	Row     int
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("Fila #%d: %s", e.Row, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewRowError construye un ValidationError para la fila idx.
func NewRowError(code string, idx int, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Row: idx, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsValidation informa si err es un fallo de validación de cara al usuario
// (errores que abortan el guardado y se muestran tal cual).
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var validationErrors = []error{
	ErrInvalidInput,
	ErrUnknownGTIN,
	ErrAmbiguousGTIN,
	ErrBarcodeMismatch,
	ErrItemNotFound,
	ErrItemDisabled,
	ErrBatchingNotEnabled,
	ErrBatchAutoCreateDisabled,
	ErrNoTriggerBarcodes,
	ErrBatchExpired,
	ErrSerialBatchMismatch,
}
