package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []tableColumn {
	return []tableColumn{
		{Header: "Ref.", Width: 28, Align: "L"},
		{Header: "Descripción", Width: 72, Align: "L"},
		{Header: "Cant.", Width: 18, Align: "C"},
		{Header: "P. Unit.", Width: 36, Align: "R"},
		{Header: "Importe", Width: 36, Align: "R"},
	}
}

func testRows(n int) [][]string {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("REF-%03d", i),
			fmt.Sprintf("Artículo número %d", i),
			"1", "10.00 €", "10.00 €",
		})
	}
	return rows
}

func TestDrawTable_UnaPagina(t *testing.T) {
	doc, tr := newTestDoc()

	res := drawTable(doc, tr, marginX, 60, testColumns(), testRows(5))

	assert.Equal(t, 1, res.PagesUsed)
	assert.Equal(t, 1, doc.PageCount())
	assert.Greater(t, res.FinalY, 60.0, "FinalY avanza bajo las filas dibujadas")
	assert.False(t, doc.Err())
}

func TestDrawTable_DesbordaYPagina(t *testing.T) {
	doc, tr := newTestDoc()
	_, pageH := doc.GetPageSize()

	res := drawTable(doc, tr, marginX, 60, testColumns(), testRows(80))

	require.Greater(t, res.PagesUsed, 1, "80 filas no caben en una página A4")
	assert.Equal(t, res.PagesUsed, doc.PageCount(), "la tabla abre las páginas que reporta")
	assert.LessOrEqual(t, res.FinalY, pageH-marginBottom-footerReserve,
		"ninguna fila invade la franja reservada al pie")
}

func TestDrawTable_FilaConTextoLargoCreceEnAltura(t *testing.T) {
	doc, tr := newTestDoc()
	cols := testColumns()

	plain := rowHeight(doc, tr, cols, []string{"R", "corta", "1", "1.00", "1.00"})
	tall := rowHeight(doc, tr, cols, []string{"R", strings.Repeat("descripción muy larga ", 6), "1", "1.00", "1.00"})

	assert.InDelta(t, tableMinRowH, plain, 0.001)
	assert.Greater(t, tall, plain, "la fila crece hasta su celda más alta")
}

func TestDrawTable_SinFilas(t *testing.T) {
	doc, tr := newTestDoc()

	res := drawTable(doc, tr, marginX, 60, testColumns(), nil)

	assert.Equal(t, 1, res.PagesUsed)
	assert.InDelta(t, 67.0, res.FinalY, 0.001, "solo la cabecera: startY + headerH")
}
