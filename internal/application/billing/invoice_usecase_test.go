package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders   map[string]*entity.Order
	items    map[string][]*entity.OrderItem
	statuses map[string]string
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders:   make(map[string]*entity.Order),
		items:    make(map[string][]*entity.OrderItem),
		statuses: make(map[string]string),
	}
}

func (m *memOrderRepo) Create(o *entity.Order) error { m.orders[o.ID] = o; return nil }
func (m *memOrderRepo) CreateItem(it *entity.OrderItem) error {
	m.items[it.OrderID] = append(m.items[it.OrderID], it)
	return nil
}
func (m *memOrderRepo) GetByID(id string) (*entity.Order, error) { return m.orders[id], nil }
func (m *memOrderRepo) GetItemsByOrderID(id string) ([]*entity.OrderItem, error) {
	return m.items[id], nil
}
func (m *memOrderRepo) UpdateStatus(id, status string) error { m.statuses[id] = status; return nil }
func (m *memOrderRepo) ListByCompany(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (m *memOrderRepo) NextNumber(string) (int, error)                          { return 1, nil }

type memInvoiceRepo struct {
	invoices    map[string]*entity.Invoice
	byOrder     map[string]*entity.Invoice
	items       map[string][]*entity.InvoiceItem
	statuses    map[string]string
	next        int
	overdueRuns int
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		byOrder:  make(map[string]*entity.Invoice),
		items:    make(map[string][]*entity.InvoiceItem),
		statuses: make(map[string]string),
	}
}

func (m *memInvoiceRepo) Create(inv *entity.Invoice) error {
	m.invoices[inv.ID] = inv
	if inv.OrderID != "" {
		m.byOrder[inv.OrderID] = inv
	}
	return nil
}
func (m *memInvoiceRepo) CreateItem(it *entity.InvoiceItem) error {
	m.items[it.InvoiceID] = append(m.items[it.InvoiceID], it)
	return nil
}
func (m *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error)      { return m.invoices[id], nil }
func (m *memInvoiceRepo) GetByOrderID(id string) (*entity.Invoice, error) { return m.byOrder[id], nil }
func (m *memInvoiceRepo) GetItemsByInvoiceID(id string) ([]*entity.InvoiceItem, error) {
	return m.items[id], nil
}
func (m *memInvoiceRepo) UpdateStatus(id, status string) error { m.statuses[id] = status; return nil }
func (m *memInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (m *memInvoiceRepo) NextNumber(string) (int, error) { m.next++; return m.next, nil }
func (m *memInvoiceRepo) MarkOverdue(string) (int64, error) {
	m.overdueRuns++
	return 0, nil
}

type memProductRepo struct {
	adjustments map[string]decimal.Decimal
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{adjustments: make(map[string]decimal.Decimal)}
}

func (m *memProductRepo) Create(*entity.Product) error                 { return nil }
func (m *memProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (m *memProductRepo) GetByCompanyAndReference(string, string) (*entity.Product, error) {
	return nil, nil
}
func (m *memProductRepo) Update(*entity.Product) error { return nil }
func (m *memProductRepo) AdjustStock(productID string, delta decimal.Decimal) error {
	m.adjustments[productID] = m.adjustments[productID].Add(delta)
	return nil
}
func (m *memProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (m *memProductRepo) Delete(string) error { return nil }

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes.
type fakeTxRunner struct {
	orders   *memOrderRepo
	invoices *memInvoiceRepo
	products *memProductRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.OrderRepository, repository.InvoiceRepository, repository.ProductRepository,
) error) error {
	return fn(f.orders, f.invoices, f.products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

type billingFixture struct {
	uc       *InvoiceUseCase
	orders   *memOrderRepo
	invoices *memInvoiceRepo
	products *memProductRepo
}

func newFixture() *billingFixture {
	orders := newMemOrderRepo()
	invoices := newMemInvoiceRepo()
	products := newMemProductRepo()
	tx := &fakeTxRunner{orders: orders, invoices: invoices, products: products}
	return &billingFixture{
		uc:       NewInvoiceUseCase(invoices, orders, tx, "FV", 30),
		orders:   orders,
		invoices: invoices,
		products: products,
	}
}

func (f *billingFixture) seedOrder(status string, items ...*entity.OrderItem) *entity.Order {
	order := &entity.Order{
		ID: "ord-1", CompanyID: "co-1", ClientID: "cli-1", Number: "PED-0001",
		Status:   status,
		Subtotal: dec("30"), TaxTotal: dec("6.30"), GrandTotal: dec("36.30"),
	}
	f.orders.orders[order.ID] = order
	f.orders.items[order.ID] = items
	return order
}

func defaultItems() []*entity.OrderItem {
	return []*entity.OrderItem{
		{OrderID: "ord-1", ProductID: "p1", Reference: "REF-1", Description: "Cajas",
			Quantity: dec("3"), UnitPrice: dec("10"), LineTotal: dec("30")},
	}
}

func TestCreateFromOrder_EmiteFactura(t *testing.T) {
	f := newFixture()
	f.seedOrder(entity.OrderStatusPending, defaultItems()...)

	resp, err := f.uc.CreateFromOrder(context.Background(), "co-1", "ord-1")
	require.NoError(t, err)

	assert.Equal(t, "FV-0001", resp.Number, "primer consecutivo con el prefijo configurado")
	assert.Equal(t, entity.InvoiceStatusPending, resp.Status)
	assert.True(t, resp.GrandTotal.Equal(dec("36.30")), "totales copiados del pedido")
	require.Len(t, resp.Items, 1)

	// El stock se descuenta y el pedido queda completado, todo en la misma tx.
	assert.True(t, f.products.adjustments["p1"].Equal(dec("-3")))
	assert.Equal(t, entity.OrderStatusCompleted, f.orders.statuses["ord-1"])
}

func TestCreateFromOrder_YaFacturado_RetornaConflict(t *testing.T) {
	f := newFixture()
	f.seedOrder(entity.OrderStatusPending, defaultItems()...)

	_, err := f.uc.CreateFromOrder(context.Background(), "co-1", "ord-1")
	require.NoError(t, err)

	_, err = f.uc.CreateFromOrder(context.Background(), "co-1", "ord-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "un pedido no se factura dos veces")
}

func TestCreateFromOrder_PedidoCancelado_RetornaConflict(t *testing.T) {
	f := newFixture()
	f.seedOrder(entity.OrderStatusCancelled, defaultItems()...)

	_, err := f.uc.CreateFromOrder(context.Background(), "co-1", "ord-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateFromOrder_OtraEmpresa_RetornaForbidden(t *testing.T) {
	f := newFixture()
	f.seedOrder(entity.OrderStatusPending, defaultItems()...)

	_, err := f.uc.CreateFromOrder(context.Background(), "co-intrusa", "ord-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateFromOrder_NoExiste_RetornaNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateFromOrder(context.Background(), "co-1", "ord-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateFromOrder_SinLineas_RetornaInvalidInput(t *testing.T) {
	f := newFixture()
	f.seedOrder(entity.OrderStatusPending) // sin items

	_, err := f.uc.CreateFromOrder(context.Background(), "co-1", "ord-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateFromOrder_LineaSinProducto_NoTocaStock(t *testing.T) {
	f := newFixture()
	f.seedOrder(entity.OrderStatusPending, &entity.OrderItem{
		OrderID: "ord-1", Description: "Servicio de montaje",
		Quantity: dec("1"), UnitPrice: dec("50"), LineTotal: dec("50"),
	})

	_, err := f.uc.CreateFromOrder(context.Background(), "co-1", "ord-1")
	require.NoError(t, err)
	assert.Empty(t, f.products.adjustments)
}

func TestUpdateStatus_EstadoDesconocido_RetornaInvalidInput(t *testing.T) {
	f := newFixture()
	err := f.uc.UpdateStatus("co-1", "inv-1", "estado-inventado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_PagadaNoVuelveAPendiente(t *testing.T) {
	f := newFixture()
	f.invoices.invoices["inv-1"] = &entity.Invoice{
		ID: "inv-1", CompanyID: "co-1", Status: entity.InvoiceStatusPaid,
	}

	err := f.uc.UpdateStatus("co-1", "inv-1", entity.InvoiceStatusPending)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestList_MarcaVencidasAntesDeListar(t *testing.T) {
	f := newFixture()
	_, err := f.uc.List("co-1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, f.invoices.overdueRuns)
}
