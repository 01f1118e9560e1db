package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de un producto del catálogo.
type CreateProductRequest struct {
	Reference   string          `json:"reference"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Stock       decimal.Decimal `json:"stock"`
}

// UpdateProductRequest datos editables de un producto. El stock no se edita
// aquí; se ajusta con los movimientos de venta.
type UpdateProductRequest struct {
	Reference   string          `json:"reference"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Reference   string          `json:"reference"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Stock       decimal.Decimal `json:"stock"`
}
