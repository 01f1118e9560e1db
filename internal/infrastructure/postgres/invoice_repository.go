package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, client_id, order_id, number, issue_date, due_date, status, subtotal, tax_total, grand_total, notes, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.ClientID, invoice.OrderID, invoice.Number,
		invoice.IssueDate, invoice.DueDate, invoice.Status, invoice.Subtotal,
		invoice.TaxTotal, invoice.GrandTotal, invoice.Notes, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, reference, description, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductID, item.Reference, item.Description,
		item.Quantity, item.UnitPrice, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, client_id, COALESCE(order_id, ''), number, issue_date, due_date, status, subtotal, tax_total, grand_total, notes, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.OrderID, &inv.Number,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Subtotal,
		&inv.TaxTotal, &inv.GrandTotal, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetByOrderID obtiene la factura emitida a partir de un pedido, si existe.
func (r *InvoiceRepo) GetByOrderID(orderID string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, client_id, COALESCE(order_id, ''), number, issue_date, due_date, status, subtotal, tax_total, grand_total, notes, created_at, updated_at
		FROM invoices WHERE order_id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(
		&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.OrderID, &inv.Number,
		&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Subtotal,
		&inv.TaxTotal, &inv.GrandTotal, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by order: %w", err)
	}
	return &inv, nil
}

// GetItemsByInvoiceID obtiene las líneas de una factura en orden de inserción.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_id, reference, description, quantity, unit_price, line_total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Reference,
			&it.Description, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista facturas por empresa con paginación.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, client_id, COALESCE(order_id, ''), number, issue_date, due_date, status, subtotal, tax_total, grand_total, notes, created_at, updated_at
		FROM invoices WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.OrderID, &inv.Number,
			&inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Subtotal,
			&inv.TaxTotal, &inv.GrandTotal, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo de factura para la empresa.
// Usa el secuenciador por empresa; la primera llamada crea la fila.
func (r *InvoiceRepo) NextNumber(companyID string) (int, error) {
	query := `
		INSERT INTO invoice_sequences (company_id, last_number) VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_number = invoice_sequences.last_number + 1
		RETURNING last_number`
	var n int
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}

// MarkOverdue pasa a Vencida las facturas Pendiente cuya fecha de vencimiento ya pasó.
func (r *InvoiceRepo) MarkOverdue(companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = now()
		 WHERE company_id = $1 AND status = $3 AND due_date < now()`,
		companyID, entity.InvoiceStatusOverdue, entity.InvoiceStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("mark overdue invoices: %w", err)
	}
	return cmd.RowsAffected(), nil
}
