// Package billing implementa la emisión y gestión de facturas.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con los repos atados
// a ella. Facturar un pedido toca tres tablas y descuenta stock: todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// InvoiceUseCase casos de uso de facturación.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	txRunner    TxRunner

	prefix  string // prefijo del consecutivo, ej. "FV"
	netDays int    // días entre emisión y vencimiento
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	txRunner TxRunner,
	prefix string,
	netDays int,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		txRunner:    txRunner,
		prefix:      prefix,
		netDays:     netDays,
	}
}

// CreateFromOrder emite la factura de un pedido pendiente: asigna consecutivo,
// copia las líneas, descuenta stock y marca el pedido como completado, todo en
// una transacción.
//
// Errores de negocio: ErrNotFound (pedido inexistente), ErrForbidden (pedido
// de otra empresa), ErrConflict (pedido ya facturado o cancelado),
// ErrInsufficientStock (alguna línea dejaría stock negativo).
func (uc *InvoiceUseCase) CreateFromOrder(ctx context.Context, companyID, orderID string) (*dto.InvoiceResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}

	existing, err := uc.invoiceRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		ClientID:   order.ClientID,
		OrderID:    order.ID,
		IssueDate:  now,
		DueDate:    now.AddDate(0, 0, uc.netDays),
		Status:     entity.InvoiceStatusPending,
		Subtotal:   order.Subtotal,
		TaxTotal:   order.TaxTotal,
		GrandTotal: order.GrandTotal,
		Notes:      order.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		// El consecutivo se asigna dentro de la tx: dos emisiones concurrentes
		// nunca comparten número.
		n, err := invoiceRepo.NextNumber(companyID)
		if err != nil {
			return err
		}
		invoice.Number = fmt.Sprintf("%s-%04d", uc.prefix, n)

		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, it := range items {
			if err := invoiceRepo.CreateItem(&entity.InvoiceItem{
				ID:          uuid.New().String(),
				InvoiceID:   invoice.ID,
				ProductID:   it.ProductID,
				Reference:   it.Reference,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				LineTotal:   it.LineTotal,
			}); err != nil {
				return err
			}
			if it.ProductID != "" {
				if err := productRepo.AdjustStock(it.ProductID, it.Quantity.Neg()); err != nil {
					return err
				}
			}
		}
		return orderRepo.UpdateStatus(order.ID, entity.OrderStatusCompleted)
	})
	if err != nil {
		return nil, err
	}

	return invoiceToResponse(invoice, items), nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetByID(companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	resp := invoiceEntityToResponse(invoice)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ProductID:   it.ProductID,
			Reference:   it.Reference,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return resp, nil
}

// List lista las facturas de la empresa. Antes de listar marca como vencidas
// las pendientes cuya fecha de vencimiento ya pasó.
func (uc *InvoiceUseCase) List(companyID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if _, err := uc.invoiceRepo.MarkOverdue(companyID); err != nil {
		return nil, err
	}
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, invoiceEntityToResponse(inv))
	}
	return out, nil
}

// UpdateStatus cambia el estado de la factura. Solo se admiten los estados
// conocidos; una factura pagada no vuelve a pendiente.
func (uc *InvoiceUseCase) UpdateStatus(companyID, invoiceID, status string) error {
	switch status {
	case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue:
	default:
		return domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if invoice.Status == entity.InvoiceStatusPaid && status != entity.InvoiceStatusPaid {
		return domain.ErrConflict
	}
	return uc.invoiceRepo.UpdateStatus(invoiceID, status)
}

func invoiceToResponse(inv *entity.Invoice, items []*entity.OrderItem) *dto.InvoiceResponse {
	resp := invoiceEntityToResponse(inv)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
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

func invoiceEntityToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CompanyID:  inv.CompanyID,
		ClientID:   inv.ClientID,
		OrderID:    inv.OrderID,
		Number:     inv.Number,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Status:     inv.Status,
		Subtotal:   inv.Subtotal,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		Notes:      inv.Notes,
	}
}
