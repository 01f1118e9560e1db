package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateInvoiceStatusRequest cambio de estado de una factura.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceItemResponse línea de factura en las respuestas.
type InvoiceItemResponse struct {
	ProductID   string          `json:"product_id"`
	Reference   string          `json:"reference,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse representación pública de una factura.
type InvoiceResponse struct {
	ID         string                `json:"id"`
	CompanyID  string                `json:"company_id"`
	ClientID   string                `json:"client_id"`
	OrderID    string                `json:"order_id,omitempty"`
	Number     string                `json:"number"`
	IssueDate  time.Time             `json:"issue_date"`
	DueDate    time.Time             `json:"due_date"`
	Status     string                `json:"status"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	TaxTotal   decimal.Decimal       `json:"tax_total"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
	Notes      string                `json:"notes,omitempty"`
	Items      []InvoiceItemResponse `json:"items,omitempty"`
}
