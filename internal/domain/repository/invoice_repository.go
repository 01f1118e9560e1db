package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y detalles.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByOrderID(orderID string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	UpdateStatus(id, status string) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	// NextNumber devuelve el siguiente consecutivo de factura para la empresa.
	NextNumber(companyID string) (int, error)
	// MarkOverdue pasa a Vencida las facturas Pendiente con due_date anterior a la fecha dada.
	MarkOverdue(companyID string) (int64, error)
}
