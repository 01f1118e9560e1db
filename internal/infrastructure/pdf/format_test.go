package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "30.00 €", FormatMoney(decimal.NewFromInt(30), "€"))
	assert.Equal(t, "36.30 €", FormatMoney(decimal.RequireFromString("36.3"), "€"))
	assert.Equal(t, "0.00 €", FormatMoney(decimal.Zero, "€"))
	assert.Equal(t, "12.35", FormatMoney(decimal.RequireFromString("12.345"), ""), "sin moneda no hay sufijo")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/07/2024", FormatDate(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}), "fecha cero no se imprime")
}
