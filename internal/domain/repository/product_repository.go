package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndReference(companyID, reference string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock suma delta (negativo = salida) al stock del producto.
	AdjustStock(productID string, delta decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
