package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	UpdateStatus(id, status string) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error)
	// NextNumber devuelve el siguiente consecutivo de pedido para la empresa.
	NextNumber(companyID string) (int, error)
}
