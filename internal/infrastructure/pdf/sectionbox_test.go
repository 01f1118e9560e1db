package pdf

import (
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
)

func newTestDoc() (*gofpdf.Fpdf, func(string) string) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return doc, tr
}

func TestMeasureBox_MasFilasMasAltura(t *testing.T) {
	doc, tr := newTestDoc()

	short := measureBox(doc, tr, 90, []boxRow{
		{Label: "Nombre", Value: "Acme"},
		{Label: "NIF", Value: "B123"},
	})
	tall := measureBox(doc, tr, 90, []boxRow{
		{Label: "Nombre", Value: "Acme"},
		{Label: "NIF", Value: "B123"},
		{Label: "Email", Value: "a@b.c"},
		{Label: "Teléfono", Value: "600"},
		{Label: "Dirección", Value: "Calle 1"},
	})

	assert.Greater(t, tall, short, "paneles con distinto número de filas tienen alturas distintas")
	assert.InDelta(t, 3*boxLineH, tall-short, 0.001, "cada fila de una línea suma boxLineH")
}

func TestMeasureBox_ValorVacioOcupaUnaLinea(t *testing.T) {
	doc, tr := newTestDoc()

	empty := measureBox(doc, tr, 90, []boxRow{{Label: "Email", Value: ""}})
	filled := measureBox(doc, tr, 90, []boxRow{{Label: "Email", Value: "a@b.c"}})

	assert.InDelta(t, empty, filled, 0.001, "el valor vacío imprime el guion, no colapsa la fila")
}

func TestMeasureBox_ValorLargoEnvuelve(t *testing.T) {
	doc, tr := newTestDoc()

	one := measureBox(doc, tr, 90, []boxRow{{Label: "Dirección", Value: "Calle 1"}})
	long := measureBox(doc, tr, 90, []boxRow{{
		Label: "Dirección",
		Value: strings.Repeat("Polígono Industrial Norte, Nave 14, ", 4),
	}})

	assert.Greater(t, long, one, "un valor largo envuelve y agranda el panel")
}

func TestDrawSectionBox_DevuelveLaAlturaMedida(t *testing.T) {
	doc, tr := newTestDoc()
	rows := []boxRow{{Label: "Nombre", Value: "Acme"}, {Label: "NIF", Value: ""}}

	want := measureBox(doc, tr, 90, rows)
	got := drawSectionBox(doc, tr, marginX, 50, 90, "FACTURAR A", rows)

	assert.InDelta(t, want, got, 0.001)
	assert.False(t, doc.Err())
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "—", orDash(""))
	assert.Equal(t, "x", orDash("x"))
}
