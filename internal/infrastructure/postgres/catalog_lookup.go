package postgres

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ docgen.CatalogLookup = (*CatalogLookup)(nil)

// CatalogLookup adapta ProductRepository al puerto de consulta de referencias
// del generador de documentos.
type CatalogLookup struct {
	products repository.ProductRepository
}

// NewCatalogLookup construye el adaptador.
func NewCatalogLookup(products repository.ProductRepository) *CatalogLookup {
	return &CatalogLookup{products: products}
}

// LookupReference devuelve el código de catálogo del producto, o vacío si el
// producto no existe.
func (c *CatalogLookup) LookupReference(_ context.Context, productID string) (string, error) {
	p, err := c.products.GetByID(productID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", nil
	}
	return p.Reference, nil
}
