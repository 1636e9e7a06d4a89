// Package gs1 interpreta códigos GS1 escaneados (GTIN, lote, vencimiento)
// y deriva los identificadores de lote usados por el ERP.
package gs1

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// GroupSeparator FNC1 transmitido por el lector como ASCII 29.
const GroupSeparator = '\x1d'

// Result campos extraídos de un código GS1.
type Result struct {
	GTIN   string // (01) GTIN-14
	Expiry string // (17) vencimiento YYMMDD, tal cual se escaneó
	Lot    string // (10) lote
	Serial string // (21) serial
}

var (
	ErrEmpty         = errors.New("gs1: código vacío")
	ErrNotGS1        = errors.New("gs1: el código no empieza con AI(01)")
	ErrTruncated     = errors.New("gs1: datos incompletos para el AI")
	ErrMissingGTIN   = errors.New("gs1: el código no contiene GTIN")
	ErrInvalidLength = errors.New("gs1: longitud de código no reconocida")
)

// Longitudes de los AI de largo fijo que sabemos saltar o leer.
var fixedAI = map[string]int{
	"01": 14,
	"11": 6, // fecha de producción
	"15": 6, // consumir preferentemente antes de
	"17": 6,
}

// Longitud máxima de los AI de largo variable.
var variableAI = map[string]int{
	"10": 20,
	"21": 20,
}

var (
	symbologyPrefix = regexp.MustCompile(`^\][A-Za-z][0-9A-Za-z]`)
	parenthesisedAI = regexp.MustCompile(`\((\d{2})\)([^(]*)`)
)

// Parse interpreta un código escaneado. Acepta la cadena de elementos GS1 con o sin
// separadores FNC1, la forma legible "(01)...(17)...(10)..." y códigos simples
// EAN-8/UPC-A/EAN-13/GTIN-14, que se normalizan a GTIN-14.
func Parse(code string) (*Result, error) {
	code = strings.TrimSpace(symbologyPrefix.ReplaceAllString(strings.TrimSpace(code), ""))
	if code == "" {
		return nil, ErrEmpty
	}
	if strings.HasPrefix(code, "(") {
		return parseParenthesised(code)
	}
	n := len(code)
	switch {
	case n >= 15:
		if !strings.HasPrefix(code, "01") {
			return nil, ErrNotGS1
		}
		return parseElementString(code)
	case isDigits(code) && (n == 8 || n == 12 || n == 13 || n == 14):
		return &Result{GTIN: ToGTIN14(code)}, nil
	}
	return nil, fmt.Errorf("%w: %d caracteres", ErrInvalidLength, n)
}

func parseParenthesised(code string) (*Result, error) {
	res := &Result{}
	for _, m := range parenthesisedAI.FindAllStringSubmatch(code, -1) {
		assign(res, m[1], strings.TrimSpace(strings.Trim(m[2], string(GroupSeparator))))
	}
	if res.GTIN == "" {
		return nil, ErrMissingGTIN
	}
	return res, nil
}

func parseElementString(code string) (*Result, error) {
	res := &Result{}
	i, n := 0, len(code)
	for i < n {
		if code[i] == GroupSeparator {
			i++
			continue
		}
		if i+2 > n {
			break
		}
		ai := code[i : i+2]
		if size, ok := fixedAI[ai]; ok {
			if i+2+size > n {
				return nil, fmt.Errorf("%w (%s)", ErrTruncated, ai)
			}
			assign(res, ai, code[i+2:i+2+size])
			i += 2 + size
			continue
		}
		if maxLen, ok := variableAI[ai]; ok {
			start := i + 2
			end := variableEnd(code, start, maxLen)
			assign(res, ai, code[start:end])
			i = end
			continue
		}
		// AI desconocido: se avanza un carácter
		i++
	}
	if res.GTIN == "" {
		return nil, ErrMissingGTIN
	}
	return res, nil
}

// variableEnd calcula el fin de un campo variable: el separador FNC1 si existe;
// si no, el inicio del siguiente AI(01)/AI(17) completo o el largo máximo.
func variableEnd(code string, start, maxLen int) int {
	n := len(code)
	if gs := strings.IndexByte(code[start:], GroupSeparator); gs >= 0 && gs <= maxLen {
		return start + gs
	}
	end := start
	for end < n && end-start < maxLen {
		rest := code[end:]
		if end > start && len(rest) >= 2 {
			switch rest[:2] {
			case "01":
				if len(rest) >= 16 && isDigits(rest[2:16]) {
					return end
				}
			case "17":
				if len(rest) >= 8 && isDigits(rest[2:8]) {
					return end
				}
			}
		}
		end++
	}
	return end
}

func assign(res *Result, ai, value string) {
	switch ai {
	case "01":
		res.GTIN = value
	case "17":
		res.Expiry = value
	case "10":
		res.Lot = value
	case "21":
		res.Serial = value
	}
}

// ToGTIN14 rellena con ceros a la izquierda hasta 14 dígitos.
func ToGTIN14(code string) string {
	if len(code) >= 14 {
		return code
	}
	return strings.Repeat("0", 14-len(code)) + code
}

// EquivalentGTINs devuelve code seguido de sus formas equivalentes con ceros a la
// izquierda (GTIN-14 y GTIN-13/12/8 cuando los dígitos sobrantes son ceros).
// Un código no numérico o de longitud no GTIN solo se devuelve a sí mismo.
func EquivalentGTINs(code string) []string {
	out := []string{code}
	if !isDigits(code) || len(code) > 14 {
		return out
	}
	full := ToGTIN14(code)
	for _, n := range []int{14, 13, 12, 8} {
		if n < 14 && strings.Trim(full[:14-n], "0") != "" {
			continue
		}
		if candidate := full[14-n:]; candidate != code {
			out = append(out, candidate)
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
