package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func testInput(lines int) *docgen.DocumentInput {
	in := &docgen.DocumentInput{
		Number:    "FV-0042",
		IssueDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
		Status:    "pending",
		Client: docgen.ClientIdentity{
			Name:  "Acme SL",
			TaxID: "B12345678",
			Email: "compras@acme.example",
		},
		Subtotal: decimal.RequireFromString("30"),
		TaxTotal: decimal.RequireFromString("6.30"),
		Total:    decimal.RequireFromString("36.30"),
	}
	for i := 0; i < lines; i++ {
		in.Lines = append(in.Lines, docgen.DocumentLine{
			Reference:   fmt.Sprintf("REF-%03d", i),
			Description: fmt.Sprintf("Artículo número %d", i),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(10),
			LineTotal:   decimal.NewFromInt(10),
		})
	}
	return in
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 0, G: 70, B: 127, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender_DocumentoMinimo(t *testing.T) {
	r := NewInvoiceRenderer("€")

	out, err := r.Render(testInput(1), nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida es un PDF")
}

func TestRender_Determinista(t *testing.T) {
	r := NewInvoiceRenderer("€")
	company := &docgen.CompanyIdentity{Name: "Mi Empresa", Email: "hola@miempresa.example"}

	a, err := r.Render(testInput(3), company, nil, map[string]string{"p1": "CAT-1"})
	require.NoError(t, err)
	b, err := r.Render(testInput(3), company, nil, map[string]string{"p1": "CAT-1"})
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a, b), "misma entrada produce exactamente los mismos bytes")
}

func TestRender_ConLogo(t *testing.T) {
	r := NewInvoiceRenderer("€")
	logo := &docgen.Logo{Bytes: testPNG(t, 120, 40), ImageType: "png", AspectRatio: 3}

	out, err := r.Render(testInput(2), &docgen.CompanyIdentity{Name: "Mi Empresa"}, logo, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_LogoCorrupto_NoAborta(t *testing.T) {
	r := NewInvoiceRenderer("€")
	logo := &docgen.Logo{Bytes: []byte("esto no es un png"), ImageType: "png", AspectRatio: 1}

	out, err := r.Render(testInput(2), nil, logo, nil)
	require.NoError(t, err, "una imagen corrupta degrada a documento sin logo")
	assert.NotEmpty(t, out)
}

func TestRender_MultiPagina(t *testing.T) {
	r := NewInvoiceRenderer("€")

	single, err := r.Render(testInput(1), nil, nil, nil)
	require.NoError(t, err)
	multi, err := r.Render(testInput(80), nil, nil, nil)
	require.NoError(t, err)

	assert.Greater(t, len(multi), len(single), "80 líneas pagina y produce un documento mayor")
}

// Un pedido y una factura equivalentes producen exactamente el mismo PDF:
// ambas entradas se reducen al mismo DocumentInput antes de maquetar.
func TestRender_PedidoYFacturaEquivalentes_MismosBytes(t *testing.T) {
	r := NewInvoiceRenderer("€")
	issue := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	client := &entity.Client{Name: "Acme SL", TaxID: "B12345678"}

	fromOrder := docgen.FromOrder(
		&entity.Order{Number: "FV-0042", Date: issue,
			Subtotal: decimal.RequireFromString("30"), TaxTotal: decimal.RequireFromString("6.30"),
			GrandTotal: decimal.RequireFromString("36.30")},
		[]*entity.OrderItem{{Reference: "REF-1", Description: "Cajas",
			Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10)}},
		client)
	fromInvoice := docgen.FromInvoice(
		&entity.Invoice{Number: "FV-0042", IssueDate: issue,
			Subtotal: decimal.RequireFromString("30"), TaxTotal: decimal.RequireFromString("6.30"),
			GrandTotal: decimal.RequireFromString("36.30")},
		[]*entity.InvoiceItem{{Reference: "REF-1", Description: "Cajas",
			Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10),
			LineTotal: decimal.NewFromInt(30)}},
		client)

	a, err := r.Render(fromOrder, nil, nil, nil)
	require.NoError(t, err)
	b, err := r.Render(fromInvoice, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a, b))
}

func TestRender_SinNumeroUsaTituloGenerico(t *testing.T) {
	r := NewInvoiceRenderer("€")
	in := testInput(1)
	in.Number = ""

	out, err := r.Render(in, nil, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
