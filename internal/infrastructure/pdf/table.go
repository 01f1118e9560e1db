package pdf

import "github.com/jung-kurt/gofpdf"

// Geometría de la tabla de líneas.
const (
	tableLineH   = 4.5
	tableCellPad = 1.5
	tableMinRowH = 6.5
)

// tableColumn definición de una columna: cabecera, ancho y alineación.
type tableColumn struct {
	Header string
	Width  float64
	Align  string // "L" | "C" | "R"
}

// tableResult posición vertical final y páginas consumidas por la tabla.
// Devolverlo de forma explícita (en vez de consultar un estado "última
// posición") permite al caller anclar los totales y estampar los pies sin
// canales laterales.
type tableResult struct {
	FinalY    float64
	PagesUsed int
}

// drawTable dibuja la tabla rayada con salto de página automático. En cada
// página nueva se repite la fila de cabecera de columnas, pero no la banda de
// cabecera del documento. Las celdas envuelven su texto; la altura de la fila
// es la de su celda más alta.
func drawTable(doc *gofpdf.Fpdf, tr func(string) string, x, startY float64, cols []tableColumn, rows [][]string) tableResult {
	_, pageH := doc.GetPageSize()
	breakLimit := pageH - marginBottom - footerReserve

	pages := 1
	y := drawTableHeader(doc, tr, x, startY, cols)

	fill := false
	for _, row := range rows {
		rowH := rowHeight(doc, tr, cols, row)

		if y+rowH > breakLimit {
			doc.AddPage()
			pages++
			y = drawTableHeader(doc, tr, x, marginTop, cols)
		}

		if fill {
			doc.SetFillColor(241, 245, 249)
			doc.Rect(x, y, tableWidth(cols), rowH, "F")
		}
		fill = !fill

		doc.SetFont("Helvetica", "", 8.5)
		doc.SetTextColor(40, 40, 40)
		doc.SetDrawColor(colorGrayR, colorGrayG, colorGrayB)
		doc.SetLineWidth(0.2)

		cellX := x
		for i, col := range cols {
			doc.Rect(cellX, y, col.Width, rowH, "D")
			lines := doc.SplitLines([]byte(tr(row[i])), col.Width-2*tableCellPad)
			lineY := y + tableCellPad/2
			for _, line := range lines {
				doc.SetXY(cellX+tableCellPad, lineY)
				doc.CellFormat(col.Width-2*tableCellPad, tableLineH, string(line), "", 0, col.Align, false, 0, "")
				lineY += tableLineH
			}
			cellX += col.Width
		}
		y += rowH
	}

	return tableResult{FinalY: y, PagesUsed: pages}
}

// drawTableHeader dibuja la fila de cabecera y devuelve la Y del primer dato.
func drawTableHeader(doc *gofpdf.Fpdf, tr func(string) string, x, y float64, cols []tableColumn) float64 {
	const headerH = 7.0

	doc.SetFillColor(colorPrimaryR, colorPrimaryG, colorPrimaryB)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 8.5)

	cellX := x
	for _, col := range cols {
		doc.SetXY(cellX, y)
		doc.CellFormat(col.Width, headerH, tr(col.Header), "", 0, col.Align, true, 0, "")
		cellX += col.Width
	}
	return y + headerH
}

// rowHeight altura realizada de una fila: su celda más alta.
func rowHeight(doc *gofpdf.Fpdf, tr func(string) string, cols []tableColumn, row []string) float64 {
	doc.SetFont("Helvetica", "", 8.5)
	h := tableMinRowH
	for i, col := range cols {
		cellH := float64(wrappedLineCount(doc, tr(row[i]), col.Width-2*tableCellPad))*tableLineH + tableCellPad
		if cellH > h {
			h = cellH
		}
	}
	return h
}

func tableWidth(cols []tableColumn) float64 {
	var w float64
	for _, c := range cols {
		w += c.Width
	}
	return w
}
