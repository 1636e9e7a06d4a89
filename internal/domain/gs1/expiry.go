package gs1

import (
	"errors"
	"time"
)

// ErrExpiryFormat el vencimiento no tiene exactamente 6 caracteres.
var ErrExpiryFormat = errors.New("gs1: el vencimiento debe tener formato YYMMDD")

// expiryLayout año de 2 dígitos: 69-99 → 19xx, 00-68 → 20xx.
const expiryLayout = "060102"

// ParseExpiry interpreta un vencimiento YYMMDD como fecha (medianoche UTC).
// Un día 00 o una fecha de calendario inexistente devuelven error.
func ParseExpiry(yymmdd string) (time.Time, error) {
	if len(yymmdd) != 6 {
		return time.Time{}, ErrExpiryFormat
	}
	t, err := time.Parse(expiryLayout, yymmdd)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// IsExpiryCandidate informa si el valor tiene la forma de un vencimiento (6 caracteres).
func IsExpiryCandidate(s string) bool { return len(s) == 6 }
