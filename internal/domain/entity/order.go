package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order representa la cabecera de un pedido de venta.
type Order struct {
	ID         string
	CompanyID  string
	ClientID   string
	Number     string
	Date       time.Time
	Status     string // ver constantes OrderStatus*
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem representa una línea de un pedido. Reference se copia del producto
// en el momento de crear el pedido; si queda vacía el generador de documentos
// la resuelve contra el catálogo.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	Reference   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}
