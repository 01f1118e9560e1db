package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio del catálogo.
// Reference es el código legible del catálogo (distinto del ID interno);
// es lo que se imprime en los documentos.
type Product struct {
	ID          string
	CompanyID   string
	Reference   string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	TaxRate     decimal.Decimal // fracción, ej. 0.21
	Stock       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
