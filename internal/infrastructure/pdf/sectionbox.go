package pdf

import "github.com/jung-kurt/gofpdf"

// Geometría de los paneles titulados (sección "Detalles" y "Facturar a").
const (
	boxPadding  = 2.5
	boxLabelW   = 26.0
	boxLineH    = 4.5
	boxTitleH   = 7.0
	boxFontSize = 8.5
)

// boxRow par etiqueta/valor de un panel.
type boxRow struct {
	Label string
	Value string
}

// measureBox calcula la altura realizada de un panel sin dibujarlo: banda de
// título + padding + líneas envueltas de cada valor + padding inferior.
// Un valor vacío ocupa una línea (el guion de relleno). Dos paneles lado a
// lado con distinto número de filas reportan alturas distintas; el caller
// ancla el contenido siguiente bajo la mayor de las dos, nunca se asume que
// son iguales.
func measureBox(doc *gofpdf.Fpdf, tr func(string) string, w float64, rows []boxRow) float64 {
	doc.SetFont("Helvetica", "", boxFontSize)
	valueW := w - 2*boxPadding - boxLabelW

	h := boxTitleH + boxPadding
	for _, row := range rows {
		h += float64(wrappedLineCount(doc, tr(orDash(row.Value)), valueW)) * boxLineH
	}
	return h + boxPadding
}

// drawSectionBox dibuja un panel bordeado con banda de título y filas
// etiqueta/valor, y devuelve su altura realizada.
func drawSectionBox(doc *gofpdf.Fpdf, tr func(string) string, x, y, w float64, title string, rows []boxRow) float64 {
	h := measureBox(doc, tr, w, rows)

	doc.SetDrawColor(colorPrimaryR, colorPrimaryG, colorPrimaryB)
	doc.SetLineWidth(0.3)
	doc.Rect(x, y, w, h, "D")

	// Banda de título
	doc.SetFillColor(colorPrimaryR, colorPrimaryG, colorPrimaryB)
	doc.Rect(x, y, w, boxTitleH, "F")
	doc.SetFont("Helvetica", "B", boxFontSize)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(x+boxPadding, y)
	doc.CellFormat(w-2*boxPadding, boxTitleH, tr(title), "", 0, "L", false, 0, "")

	// Filas
	doc.SetTextColor(40, 40, 40)
	valueW := w - 2*boxPadding - boxLabelW
	rowY := y + boxTitleH + boxPadding
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", boxFontSize)
		doc.SetXY(x+boxPadding, rowY)
		doc.CellFormat(boxLabelW, boxLineH, tr(row.Label), "", 0, "L", false, 0, "")

		doc.SetFont("Helvetica", "", boxFontSize)
		lines := doc.SplitLines([]byte(tr(orDash(row.Value))), valueW)
		for _, line := range lines {
			doc.SetXY(x+boxPadding+boxLabelW, rowY)
			doc.CellFormat(valueW, boxLineH, string(line), "", 0, "L", false, 0, "")
			rowY += boxLineH
		}
	}
	return h
}

// wrappedLineCount número de líneas que ocupa un texto envuelto a un ancho.
func wrappedLineCount(doc *gofpdf.Fpdf, s string, w float64) int {
	lines := doc.SplitLines([]byte(s), w)
	if len(lines) == 0 {
		return 1
	}
	return len(lines)
}

// orDash devuelve el guion de relleno cuando el valor está vacío; un panel
// nunca imprime una fila en blanco.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
