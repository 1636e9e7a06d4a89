package gs1

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
)

// BatchID deriva el identificador de lote con la plantilla configurada.
// Plantilla vacía usa "{item}-{lot}".
func BatchID(template, itemCode, lot string) string {
	if strings.TrimSpace(template) == "" {
		template = entity.BatchNamingItemLot
	}
	return strings.NewReplacer("{item}", itemCode, "{lot}", lot).Replace(template)
}

// Sanitize normaliza un valor escaneado: NFKC, ancho completo a ASCII y sin espacios extremos.
// Algunos lectores configurados con teclado japonés o IME envían dígitos de ancho completo.
func Sanitize(s string) string {
	s = width.Narrow.String(norm.NFKC.String(s))
	return strings.TrimSpace(s)
}
