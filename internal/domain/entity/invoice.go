package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusPending = "Pendiente"
	InvoiceStatusPaid    = "Pagada"
	InvoiceStatusOverdue = "Vencida"
)

// Invoice representa la cabecera de una factura emitida a partir de un pedido
// (OrderID) o creada directamente.
type Invoice struct {
	ID         string
	CompanyID  string
	ClientID   string
	OrderID    string // vacío si la factura no proviene de un pedido
	Number     string
	IssueDate  time.Time
	DueDate    time.Time
	Status     string // ver constantes InvoiceStatus*
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	Notes      string // se persiste pero no se imprime en el PDF (decisión de producto)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceItem representa una línea de detalle de una factura.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	Reference   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}
