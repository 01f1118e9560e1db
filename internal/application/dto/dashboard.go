package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse métricas agregadas del panel.
type DashboardResponse struct {
	Start           time.Time             `json:"start"`
	End             time.Time             `json:"end"`
	Revenue         decimal.Decimal       `json:"revenue"`
	InvoiceCount    int                   `json:"invoice_count"`
	TopProducts     []TopProductResponse  `json:"top_products"`
	StatusBreakdown []StatusCountResponse `json:"status_breakdown"`
}

// TopProductResponse fila del ranking de más vendidos.
type TopProductResponse struct {
	ProductID string          `json:"product_id"`
	Reference string          `json:"reference,omitempty"`
	Name      string          `json:"name"`
	Units     decimal.Decimal `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StatusCountResponse facturas agrupadas por estado.
type StatusCountResponse struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}
