package pdf

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney normaliza un importe a dos decimales con el sufijo de moneda
// configurado. Ej: 30 → "30.00 €".
func FormatMoney(d decimal.Decimal, currency string) string {
	s := d.StringFixed(2)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatDate fecha en formato corto europeo. Cero → cadena vacía (el caller
// decide el placeholder).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
