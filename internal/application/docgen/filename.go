package docgen

import "strings"

// fallbackFilename nombre genérico cuando la factura no tiene número.
const fallbackFilename = "factura"

// Filename deriva el nombre del archivo descargable a partir del número de
// factura: minúsculas y todo carácter fuera de [a-z0-9_-] reemplazado por
// guion. Número vacío (o solo símbolos) cae al nombre genérico.
func Filename(invoiceNumber string) string {
	s := strings.ToLower(strings.TrimSpace(invoiceNumber))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = fallbackFilename
	}
	return name + ".pdf"
}
