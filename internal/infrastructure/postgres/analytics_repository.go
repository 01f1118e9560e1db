package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics facturación total y número de facturas emitidas en el rango.
// Las facturas canceladas no existen como estado; se cuentan todas.
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(grand_total), 0), COUNT(*)
		FROM invoices
		WHERE company_id = $1 AND issue_date >= $2 AND issue_date <= $3`
	var revenue decimal.Decimal
	var count int
	err := r.q.QueryRow(ctx, query, companyID, start, end).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales metrics: %w", err)
	}
	return revenue, count, nil
}

// GetTopProducts productos con más unidades facturadas en el rango.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, companyID string, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT ii.product_id,
		       COALESCE(MAX(p.reference), ''),
		       COALESCE(MAX(p.name), MAX(ii.description)),
		       SUM(ii.quantity),
		       SUM(ii.line_total)
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		LEFT JOIN products p ON p.id = ii.product_id
		WHERE i.company_id = $1 AND i.issue_date >= $2 AND i.issue_date <= $3
		GROUP BY ii.product_id
		ORDER BY SUM(ii.quantity) DESC
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, companyID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Reference, &t.Name, &t.Units, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetInvoiceStatusBreakdown facturas de la empresa agrupadas por estado, en
// orden fijo Pendiente, Pagada, Vencida para presentación estable.
func (r *AnalyticsRepo) GetInvoiceStatusBreakdown(ctx context.Context, companyID string) ([]repository.StatusCountResult, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(grand_total), 0)
		FROM invoices
		WHERE company_id = $1
		GROUP BY status
		ORDER BY array_position(ARRAY[$2, $3, $4], status)`
	rows, err := r.q.Query(ctx, query, companyID,
		entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusCountResult
	for rows.Next() {
		var s repository.StatusCountResult
		if err := rows.Scan(&s.Status, &s.Count, &s.Total); err != nil {
			return nil, fmt.Errorf("scan status breakdown: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
