package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult fila del ranking de productos más vendidos.
type TopProductResult struct {
	ProductID string
	Reference string
	Name      string
	Units     decimal.Decimal
	Revenue   decimal.Decimal
}

// StatusCountResult facturas agrupadas por estado.
type StatusCountResult struct {
	Status string
	Count  int
	Total  decimal.Decimal
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve facturación total y número de facturas en el rango.
	GetSalesMetrics(ctx context.Context, companyID string, start, end time.Time) (revenue decimal.Decimal, count int, err error)
	// GetTopProducts devuelve los productos con más unidades facturadas en el rango.
	GetTopProducts(ctx context.Context, companyID string, start, end time.Time, limit int) ([]TopProductResult, error)
	// GetInvoiceStatusBreakdown agrupa las facturas de la empresa por estado.
	GetInvoiceStatusBreakdown(ctx context.Context, companyID string) ([]StatusCountResult, error)
}
