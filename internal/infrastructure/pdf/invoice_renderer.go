// Package pdf implementa la generación del documento de factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BANDA: bloque de empresa (izq) │ logo (der) │ FACTURA      │
//	│  ┌──────────────────────────┐  ┌──────────────────────────┐ │
//	│  │ DETALLES DE FACTURA      │  │ FACTURAR A               │ │
//	│  └──────────────────────────┘  └──────────────────────────┘ │
//	│  TABLA: Ref | Descripción | Cant | P. Unit | Importe        │
//	│  (salto de página automático; la banda no se repite)        │
//	│                                    TOTALES (anclados)       │
//	│  ──────────────── pie en todas las páginas ───────────────  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
)

// ── Paleta y geometría ────────────────────────────────────────────────────────

const (
	colorPrimaryR, colorPrimaryG, colorPrimaryB = 0, 70, 127
	colorGrayR, colorGrayG, colorGrayB          = 160, 170, 180

	marginX       = 10.0
	marginTop     = 10.0
	marginBottom  = 12.0
	footerReserve = 14.0 // franja inferior reservada para el pie

	headerBandH = 46.0
	sectionGap  = 7.0

	logoMaxH   = 20.0
	logoMaxW   = 45.0
	logoSquare = 20.0 // huella cuadrada cuando el aspect ratio es desconocido

	genericTitle = "FACTURA"
	footerText   = "Gracias por su confianza."
)

var _ docgen.DocumentRenderer = (*InvoiceRenderer)(nil)

// InvoiceRenderer ensambla el PDF de la factura con gofpdf.
// Sin estado mutable entre renders: cada invocación es independiente y dos
// generaciones concurrentes no interfieren.
type InvoiceRenderer struct {
	currency string
}

// NewInvoiceRenderer construye el renderer con el sufijo de moneda configurado.
func NewInvoiceRenderer(currency string) *InvoiceRenderer {
	return &InvoiceRenderer{currency: currency}
}

// Render genera el documento completo y devuelve sus bytes.
//
// Secuencia estricta de una sola pasada: banda de cabecera → paneles de
// detalle → tabla paginada → totales → pies. Los pies se estampan al final
// porque el número de páginas no se conoce hasta que la tabla y los totales
// han consumido las suyas.
func (r *InvoiceRenderer) Render(
	in *docgen.DocumentInput,
	company *docgen.CompanyIdentity,
	logo *docgen.Logo,
	refs map[string]string,
) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(marginX, marginTop, marginX)
	doc.SetAutoPageBreak(false, 0) // los saltos de página los gestiona la tabla
	doc.SetTitle(genericTitle+" "+in.Number, true)
	// Metadatos deterministas: misma entrada, mismos bytes.
	doc.SetCreationDate(in.IssueDate)
	doc.SetCatalogSort(true)
	doc.AddPage()

	pageW, _ := doc.GetPageSize()
	contentW := pageW - 2*marginX

	r.drawHeaderBand(doc, tr, pageW, company, logo)

	// Paneles de detalle, lado a lado y auto-dimensionados a su contenido.
	// El contenido siguiente se ancla bajo el más alto de los dos.
	boxW := (contentW - sectionGap) / 2
	boxTop := headerBandH + sectionGap
	leftH := drawSectionBox(doc, tr, marginX, boxTop, boxW, "DETALLES DE FACTURA", r.detailRows(in))
	rightH := drawSectionBox(doc, tr, marginX+boxW+sectionGap, boxTop, boxW, "FACTURAR A", r.billToRows(in))
	tableTop := boxTop + maxf(leftH, rightH) + sectionGap

	// Tabla de líneas con paginación automática.
	cols := []tableColumn{
		{Header: "Ref.", Width: 28, Align: "L"},
		{Header: "Descripción", Width: 72, Align: "L"},
		{Header: "Cant.", Width: 18, Align: "C"},
		{Header: "P. Unit.", Width: 36, Align: "R"},
		{Header: "Importe", Width: 36, Align: "R"},
	}
	table := drawTable(doc, tr, marginX, tableTop, cols, r.tableRows(in, refs))

	// Totales anclados bajo la posición final real de la tabla, termine la
	// tabla en la página que termine.
	r.drawTotals(doc, tr, pageW, table.FinalY+sectionGap/2, in)

	// Segunda pasada: pie idéntico en cada página realizada.
	r.stampFooters(doc, tr, pageW)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar documento: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// drawHeaderBand banda superior rellena: bloque de empresa a la izquierda
// (hasta 4 líneas envueltas por campo), logo arriba a la derecha y título
// centrado. Sin empresa ni logo la banda se imprime igual con el título.
func (r *InvoiceRenderer) drawHeaderBand(doc *gofpdf.Fpdf, tr func(string) string, pageW float64, company *docgen.CompanyIdentity, logo *docgen.Logo) {
	doc.SetFillColor(colorPrimaryR, colorPrimaryG, colorPrimaryB)
	doc.Rect(0, 0, pageW, headerBandH, "F")

	if company != nil {
		r.drawCompanyBlock(doc, tr, company)
	}
	if logo != nil {
		r.drawLogo(doc, pageW, logo)
	}

	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(0, headerBandH-13)
	doc.CellFormat(pageW, 10, tr(genericTitle), "", 0, "C", false, 0, "")
}

// drawCompanyBlock nombre, email, teléfonos y direcciones del emisor, cada
// campo envuelto a un máximo de 4 líneas.
func (r *InvoiceRenderer) drawCompanyBlock(doc *gofpdf.Fpdf, tr func(string) string, company *docgen.CompanyIdentity) {
	const blockW = 90.0
	const lineH = 4.0
	const maxLinesPerField = 4

	y := 6.0
	doc.SetTextColor(255, 255, 255)

	writeField := func(s string, style string, size float64) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		doc.SetFont("Helvetica", style, size)
		lines := doc.SplitLines([]byte(tr(s)), blockW)
		if len(lines) > maxLinesPerField {
			lines = lines[:maxLinesPerField]
		}
		for _, line := range lines {
			doc.SetXY(marginX, y)
			doc.CellFormat(blockW, lineH, string(line), "", 0, "L", false, 0, "")
			y += lineH
		}
	}

	writeField(company.Name, "B", 11)
	writeField(company.Email, "", 8)
	for _, p := range company.Phones {
		writeField(p, "", 8)
	}
	for _, a := range company.Addresses {
		writeField(a, "", 8)
	}
}

// drawLogo escala a la altura máxima y recorta al ancho máximo conservando el
// aspect ratio; sin aspect ratio usa la huella cuadrada fija.
func (r *InvoiceRenderer) drawLogo(doc *gofpdf.Fpdf, pageW float64, logo *docgen.Logo) {
	w, h := logoSquare, logoSquare
	if logo.AspectRatio > 0 {
		h = logoMaxH
		w = h * logo.AspectRatio
		if w > logoMaxW {
			w = logoMaxW
			h = w / logo.AspectRatio
		}
	}

	opts := gofpdf.ImageOptions{ImageType: strings.ToUpper(logo.ImageType)}
	doc.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(logo.Bytes))
	if doc.Err() {
		// Imagen corrupta: el documento sale sin logo, nunca aborta.
		doc.ClearError()
		return
	}
	doc.ImageOptions("company-logo", pageW-marginX-w, 6, w, h, false, opts, 0, "")
}

func (r *InvoiceRenderer) detailRows(in *docgen.DocumentInput) []boxRow {
	number := in.Number
	if number == "" {
		number = genericTitle // etiqueta genérica si no hay número
	}
	return []boxRow{
		{Label: "Número", Value: number},
		{Label: "Emisión", Value: FormatDate(in.IssueDate)},
		{Label: "Vencimiento", Value: FormatDate(in.DueDate)},
		{Label: "Estado", Value: in.Status},
	}
}

func (r *InvoiceRenderer) billToRows(in *docgen.DocumentInput) []boxRow {
	return []boxRow{
		{Label: "Nombre", Value: in.Client.Name},
		{Label: "NIF", Value: in.Client.TaxID},
		{Label: "Email", Value: in.Client.Email},
		{Label: "Teléfono", Value: in.Client.Phone},
		{Label: "Dirección", Value: in.Client.Location},
	}
}

// tableRows una fila por línea, en el orden de entrada. La referencia impresa
// sigue la precedencia: inline → catálogo → ID crudo → guion.
// Las notas del documento no se imprimen (decisión de producto).
func (r *InvoiceRenderer) tableRows(in *docgen.DocumentInput, refs map[string]string) [][]string {
	rows := make([][]string, 0, len(in.Lines))
	for _, l := range in.Lines {
		rows = append(rows, []string{
			l.PrintedReference(refs),
			l.Description,
			l.Quantity.String(),
			FormatMoney(l.UnitPrice, r.currency),
			FormatMoney(l.LineTotal, r.currency),
		})
	}
	return rows
}

// drawTotals bloque de totales alineado a la derecha: subtotal, impuestos,
// filete y total en negrita. Si no cabe en la franja restante abre página.
func (r *InvoiceRenderer) drawTotals(doc *gofpdf.Fpdf, tr func(string) string, pageW, y float64, in *docgen.DocumentInput) {
	const blockW = 72.0
	const labelW = 34.0
	const rowH = 5.5
	const blockH = 3*rowH + 3

	_, pageH := doc.GetPageSize()
	if y+blockH > pageH-marginBottom-footerReserve {
		doc.AddPage()
		y = marginTop
	}
	x := pageW - marginX - blockW

	row := func(label, value string, style string, size float64) {
		doc.SetFont("Helvetica", style, size)
		doc.SetXY(x, y)
		doc.CellFormat(labelW, rowH, tr(label), "", 0, "R", false, 0, "")
		doc.CellFormat(blockW-labelW, rowH, tr(value), "", 0, "R", false, 0, "")
		y += rowH
	}

	doc.SetTextColor(40, 40, 40)
	row("Subtotal:", FormatMoney(in.Subtotal, r.currency), "", 9)
	row("Impuestos:", FormatMoney(in.TaxTotal, r.currency), "", 9)

	doc.SetDrawColor(colorPrimaryR, colorPrimaryG, colorPrimaryB)
	doc.SetLineWidth(0.4)
	doc.Line(x, y+0.8, x+blockW, y+0.8)
	y += 2

	doc.SetTextColor(colorPrimaryR, colorPrimaryG, colorPrimaryB)
	row("TOTAL:", FormatMoney(in.Total, r.currency), "B", 10.5)
}

// stampFooters recorre todas las páginas realizadas y estampa el mismo pie:
// filete + leyenda centrada. Debe ejecutarse después de toda la maquetación,
// nunca intercalado, porque antes no se conoce el total de páginas.
func (r *InvoiceRenderer) stampFooters(doc *gofpdf.Fpdf, tr func(string) string, pageW float64) {
	_, pageH := doc.GetPageSize()
	footY := pageH - marginBottom

	total := doc.PageCount()
	for page := 1; page <= total; page++ {
		doc.SetPage(page)
		doc.SetDrawColor(colorGrayR, colorGrayG, colorGrayB)
		doc.SetLineWidth(0.3)
		doc.Line(marginX, footY-4, pageW-marginX, footY-4)

		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(colorGrayR, colorGrayG, colorGrayB)
		doc.SetXY(0, footY-2)
		doc.CellFormat(pageW, 4, tr(footerText), "", 0, "C", false, 0, "")
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
