package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos de venta.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository

	prefix string // prefijo del consecutivo, ej. "PED"
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	prefix string,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		prefix:      prefix,
	}
}

// Create crea un pedido calculando precios y totales desde el catálogo.
// La referencia y el precio del producto se copian a la línea en este momento:
// el pedido no cambia si el producto se edita o se borra después.
func (uc *OrderUseCase) Create(companyID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ClientID:  in.ClientID,
		Date:      now,
		Status:    entity.OrderStatusPending,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if !line.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrInvalidInput
		}

		lineTotal := line.Quantity.Mul(product.Price)
		subtotal = subtotal.Add(lineTotal)
		taxTotal = taxTotal.Add(lineTotal.Mul(product.TaxRate))

		items = append(items, &entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			Reference:   product.Reference,
			Description: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
	}

	order.Subtotal = subtotal
	order.TaxTotal = taxTotal
	order.GrandTotal = subtotal.Add(taxTotal)

	n, err := uc.orderRepo.NextNumber(companyID)
	if err != nil {
		return nil, err
	}
	order.Number = fmt.Sprintf("%s-%04d", uc.prefix, n)

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := uc.orderRepo.CreateItem(it); err != nil {
			return nil, err
		}
	}

	return orderToResponse(order, items), nil
}

// GetByID obtiene un pedido de la empresa con sus líneas.
func (uc *OrderUseCase) GetByID(companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return orderToResponse(order, items), nil
}

// List lista pedidos de la empresa con paginación.
func (uc *OrderUseCase) List(companyID string, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orderRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o, nil))
	}
	return out, nil
}

// Cancel cancela un pedido pendiente. Un pedido facturado no se cancela.
func (uc *OrderUseCase) Cancel(companyID, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if order.Status != entity.OrderStatusPending {
		return domain.ErrConflict
	}
	return uc.orderRepo.UpdateStatus(id, entity.OrderStatusCancelled)
}

func orderToResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:         o.ID,
		CompanyID:  o.CompanyID,
		ClientID:   o.ClientID,
		Number:     o.Number,
		Date:       o.Date,
		Status:     o.Status,
		Subtotal:   o.Subtotal,
		TaxTotal:   o.TaxTotal,
		GrandTotal: o.GrandTotal,
		Notes:      o.Notes,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			Reference:   it.Reference,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return resp
}
