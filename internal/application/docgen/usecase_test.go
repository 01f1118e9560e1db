package docgen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type stubInvoiceRepo struct {
	invoice *entity.Invoice
	items   []*entity.InvoiceItem
}

func (s *stubInvoiceRepo) Create(*entity.Invoice) error         { return nil }
func (s *stubInvoiceRepo) CreateItem(*entity.InvoiceItem) error { return nil }
func (s *stubInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	if s.invoice != nil && s.invoice.ID == id {
		return s.invoice, nil
	}
	return nil, nil
}
func (s *stubInvoiceRepo) GetByOrderID(string) (*entity.Invoice, error) { return nil, nil }
func (s *stubInvoiceRepo) GetItemsByInvoiceID(string) ([]*entity.InvoiceItem, error) {
	return s.items, nil
}
func (s *stubInvoiceRepo) UpdateStatus(string, string) error { return nil }
func (s *stubInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) NextNumber(string) (int, error)    { return 0, nil }
func (s *stubInvoiceRepo) MarkOverdue(string) (int64, error) { return 0, nil }

type stubOrderRepo struct {
	order *entity.Order
	items []*entity.OrderItem
}

func (s *stubOrderRepo) Create(*entity.Order) error         { return nil }
func (s *stubOrderRepo) CreateItem(*entity.OrderItem) error { return nil }
func (s *stubOrderRepo) GetByID(id string) (*entity.Order, error) {
	if s.order != nil && s.order.ID == id {
		return s.order, nil
	}
	return nil, nil
}
func (s *stubOrderRepo) GetItemsByOrderID(string) ([]*entity.OrderItem, error) { return s.items, nil }
func (s *stubOrderRepo) UpdateStatus(string, string) error                     { return nil }
func (s *stubOrderRepo) ListByCompany(string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) NextNumber(string) (int, error) { return 0, nil }

type stubClientRepo struct {
	client *entity.Client
}

func (s *stubClientRepo) Create(*entity.Client) error { return nil }
func (s *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	if s.client != nil && s.client.ID == id {
		return s.client, nil
	}
	return nil, nil
}
func (s *stubClientRepo) GetByCompanyAndTaxID(string, string) (*entity.Client, error) {
	return nil, nil
}
func (s *stubClientRepo) Update(*entity.Client) error { return nil }
func (s *stubClientRepo) ListByCompany(string, int, int) ([]*entity.Client, error) {
	return nil, nil
}
func (s *stubClientRepo) Delete(string) error { return nil }

type stubProfileStore struct {
	profile *CompanyIdentity
}

func (s *stubProfileStore) Get(string) *CompanyIdentity { return s.profile }

type stubLogoFetcher struct {
	logo    *Logo
	fetched []string
}

func (s *stubLogoFetcher) Fetch(_ context.Context, url string) *Logo {
	s.fetched = append(s.fetched, url)
	return s.logo
}

// captureRenderer captura los argumentos del render y devuelve bytes fijos.
type captureRenderer struct {
	in      *DocumentInput
	company *CompanyIdentity
	logo    *Logo
	refs    map[string]string
}

func (r *captureRenderer) Render(in *DocumentInput, company *CompanyIdentity, logo *Logo, refs map[string]string) ([]byte, error) {
	r.in, r.company, r.logo, r.refs = in, company, logo, refs
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:        "inv-1",
		CompanyID: "co-1",
		ClientID:  "cli-1",
		Number:    "FV-0042",
		IssueDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:    entity.InvoiceStatusPending,
	}
}

func buildUseCase(invRepo *stubInvoiceRepo, ordRepo *stubOrderRepo, cliRepo *stubClientRepo,
	profiles *stubProfileStore, logos *stubLogoFetcher, renderer *captureRenderer, defaultLogoURL string,
) *DocumentUseCase {
	return NewDocumentUseCase(invRepo, ordRepo, cliRepo,
		&fakeCatalog{refs: map[string]string{"p1": "CAT-1"}},
		profiles, logos, renderer, defaultLogoURL)
}

func TestFromInvoice_GeneraPDF(t *testing.T) {
	renderer := &captureRenderer{}
	uc := buildUseCase(
		&stubInvoiceRepo{invoice: testInvoice(), items: []*entity.InvoiceItem{
			{InvoiceID: "inv-1", ProductID: "p1", Description: "Cajas", Quantity: dec("3"), UnitPrice: dec("10")},
		}},
		&stubOrderRepo{},
		&stubClientRepo{client: &entity.Client{ID: "cli-1", Name: "Acme SL"}},
		&stubProfileStore{profile: &CompanyIdentity{Name: "Mi Empresa"}},
		&stubLogoFetcher{},
		renderer,
		"",
	)

	pdf, filename, err := uc.FromInvoice(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "fv-0042.pdf", filename)

	require.NotNil(t, renderer.in)
	assert.Equal(t, "Acme SL", renderer.in.Client.Name)
	assert.Equal(t, "Mi Empresa", renderer.company.Name)
	assert.Equal(t, "CAT-1", renderer.refs["p1"], "la referencia de catálogo llega resuelta al render")
}

func TestFromInvoice_NoExiste_RetornaNotFound(t *testing.T) {
	uc := buildUseCase(&stubInvoiceRepo{}, &stubOrderRepo{}, &stubClientRepo{},
		&stubProfileStore{}, &stubLogoFetcher{}, &captureRenderer{}, "")

	_, _, err := uc.FromInvoice(context.Background(), "co-1", "inv-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFromInvoice_OtraEmpresa_RetornaForbidden(t *testing.T) {
	uc := buildUseCase(&stubInvoiceRepo{invoice: testInvoice()}, &stubOrderRepo{}, &stubClientRepo{},
		&stubProfileStore{}, &stubLogoFetcher{}, &captureRenderer{}, "")

	_, _, err := uc.FromInvoice(context.Background(), "co-intrusa", "inv-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFromInvoice_ClienteBorrado_ImprimeIgual(t *testing.T) {
	renderer := &captureRenderer{}
	uc := buildUseCase(
		&stubInvoiceRepo{invoice: testInvoice()},
		&stubOrderRepo{},
		&stubClientRepo{}, // el cliente ya no existe
		&stubProfileStore{}, &stubLogoFetcher{}, renderer, "")

	_, _, err := uc.FromInvoice(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, ClientIdentity{}, renderer.in.Client)
}

func TestRender_PerfilVacioSeTrataComoAusente(t *testing.T) {
	renderer := &captureRenderer{}
	uc := buildUseCase(
		&stubInvoiceRepo{invoice: testInvoice()},
		&stubOrderRepo{},
		&stubClientRepo{},
		&stubProfileStore{profile: &CompanyIdentity{Name: "   "}},
		&stubLogoFetcher{}, renderer, "")

	_, _, err := uc.FromInvoice(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	assert.Nil(t, renderer.company, "un perfil en blanco no imprime bloque de empresa")
}

func TestRender_LogoPorDefectoCuandoElPerfilNoDefineUno(t *testing.T) {
	logos := &stubLogoFetcher{}
	uc := buildUseCase(
		&stubInvoiceRepo{invoice: testInvoice()},
		&stubOrderRepo{},
		&stubClientRepo{},
		&stubProfileStore{profile: &CompanyIdentity{Name: "Mi Empresa"}},
		logos, &captureRenderer{}, "https://cdn.example.com/default.png")

	_, _, err := uc.FromInvoice(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	require.Len(t, logos.fetched, 1)
	assert.Equal(t, "https://cdn.example.com/default.png", logos.fetched[0])
}

func TestRender_LogoDelPerfilTienePrioridad(t *testing.T) {
	logos := &stubLogoFetcher{}
	uc := buildUseCase(
		&stubInvoiceRepo{invoice: testInvoice()},
		&stubOrderRepo{},
		&stubClientRepo{},
		&stubProfileStore{profile: &CompanyIdentity{Name: "Mi Empresa", LogoURL: "https://cdn.example.com/mio.png"}},
		logos, &captureRenderer{}, "https://cdn.example.com/default.png")

	_, _, err := uc.FromInvoice(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	require.Len(t, logos.fetched, 1)
	assert.Equal(t, "https://cdn.example.com/mio.png", logos.fetched[0])
}

func TestRender_LogoNoDisponible_NoAborta(t *testing.T) {
	renderer := &captureRenderer{}
	uc := buildUseCase(
		&stubInvoiceRepo{invoice: testInvoice()},
		&stubOrderRepo{},
		&stubClientRepo{},
		&stubProfileStore{profile: &CompanyIdentity{Name: "Mi Empresa", LogoURL: "https://cdn.example.com/404.png"}},
		&stubLogoFetcher{logo: nil}, // descarga fallida
		renderer, "")

	_, _, err := uc.FromInvoice(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	assert.Nil(t, renderer.logo)
}

func TestFromOrder_GeneraPDF(t *testing.T) {
	renderer := &captureRenderer{}
	uc := buildUseCase(
		&stubInvoiceRepo{},
		&stubOrderRepo{
			order: &entity.Order{ID: "ord-1", CompanyID: "co-1", ClientID: "cli-1", Number: "PED-0001",
				Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
			items: []*entity.OrderItem{{OrderID: "ord-1", Description: "Cajas", Quantity: dec("2"), UnitPrice: dec("5")}},
		},
		&stubClientRepo{client: &entity.Client{ID: "cli-1", Name: "Acme SL"}},
		&stubProfileStore{}, &stubLogoFetcher{}, renderer, "")

	pdf, filename, err := uc.FromOrder(context.Background(), "co-1", "ord-1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "ped-0001.pdf", filename)
	require.Len(t, renderer.in.Lines, 1)
	assert.True(t, renderer.in.Lines[0].LineTotal.Equal(dec("10")))
}
