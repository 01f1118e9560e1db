package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de un pedido de venta con sus líneas.
type CreateOrderRequest struct {
	ClientID string                   `json:"client_id"`
	Notes    string                   `json:"notes"`
	Items    []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest línea de pedido. Si Quantity es cero se rechaza.
type CreateOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// OrderItemResponse línea de pedido en las respuestas.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	Reference   string          `json:"reference,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse representación pública de un pedido.
type OrderResponse struct {
	ID         string              `json:"id"`
	CompanyID  string              `json:"company_id"`
	ClientID   string              `json:"client_id"`
	Number     string              `json:"number"`
	Date       time.Time           `json:"date"`
	Status     string              `json:"status"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	TaxTotal   decimal.Decimal     `json:"tax_total"`
	GrandTotal decimal.Decimal     `json:"grand_total"`
	Notes      string              `json:"notes,omitempty"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}
