package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// Paleta del informe (mismos tonos que el documento de factura).
var (
	reportPrimary = &props.Color{Red: colorPrimaryR, Green: colorPrimaryG, Blue: colorPrimaryB}
	reportGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	reportWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ usecase.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.SalesReportGenerator con Maroto v2.
// El informe de ventas es declarativo de arriba a abajo, sin anclajes de
// cursor, así que Maroto encaja mejor aquí que en el documento de factura.
type MarotoReportGenerator struct {
	currency string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(currency string) *MarotoReportGenerator {
	return &MarotoReportGenerator{currency: currency}
}

// GenerateSalesReport genera el informe de ventas del panel y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	company *entity.Company,
	metrics *usecase.DashboardMetrics,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(company, metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: reportPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: reportPrimary, Thickness: 0.3}))

	// Ranking de productos
	m.AddRows(g.sectionTitleRow("PRODUCTOS MÁS VENDIDOS"))
	m.AddRows(g.topProductsHeaderRow())
	for _, r := range g.topProductRows(metrics.TopProducts) {
		m.AddRows(r)
	}

	// Desglose de facturas por estado
	m.AddRows(line.NewRow(3))
	m.AddRows(g.sectionTitleRow("FACTURAS POR ESTADO"))
	for _, r := range g.statusRows(metrics.StatusBreakdown) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq) y título + rango de fechas (der).
func (g *MarotoReportGenerator) headerRow(company *entity.Company, metrics *usecase.DashboardMetrics) core.Row {
	name := "Informe de ventas"
	if company != nil && company.Name != "" {
		name = company.Name
	}
	rango := fmt.Sprintf("%s — %s",
		metrics.Start.Format("02/01/2006"),
		metrics.End.Format("02/01/2006"),
	)

	return row.New(16).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: reportPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: reportPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: reportGray,
			}),
		),
	)
}

// summaryRow: facturación total y número de facturas del rango.
func (g *MarotoReportGenerator) summaryRow(metrics *usecase.DashboardMetrics) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Facturación", props.Text{Size: 8, Color: reportGray, Top: 2}),
			text.New(FormatMoney(metrics.Revenue, g.currency), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: reportPrimary, Top: 7,
			}),
		),
		col.New(6).Add(
			text.New("Facturas emitidas", props.Text{Size: 8, Color: reportGray, Top: 2}),
			text.New(fmt.Sprintf("%d", metrics.InvoiceCount), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: reportPrimary, Top: 7,
			}),
		),
	)
}

func (g *MarotoReportGenerator) sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: reportPrimary, Top: 2,
		}),
	))
}

func (g *MarotoReportGenerator) topProductsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: reportWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: reportPrimary}).Add(
		h("Ref.", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Unidades", 2, align.Right),
		h("Facturado", 3, align.Right),
	)
}

func (g *MarotoReportGenerator) topProductRows(products []repository.TopProductResult) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin ventas en el rango.", props.Text{Size: 8, Color: reportGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		ref := p.Reference
		if ref == "" {
			ref = "—"
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(ref, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Units.StringFixed(0), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(FormatMoney(p.Revenue, g.currency), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

func (g *MarotoReportGenerator) statusRows(breakdown []repository.StatusCountResult) []core.Row {
	if len(breakdown) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin facturas registradas.", props.Text{Size: 8, Color: reportGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(breakdown))
	for _, s := range breakdown {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(s.Status, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(fmt.Sprintf("%d facturas", s.Count), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(4).Add(text.New(FormatMoney(s.Total, g.currency), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}
