package docgen

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DocumentUseCase genera el PDF de una factura o de un pedido.
//
// Pipeline (una sola pasada, sin reintentos):
// normalizar entrada → resolver perfil y logo → resolver referencias de
// catálogo → render. Las resoluciones de perfil, logo y catálogo degradan en
// silencio (ver ports.go); solo el render puede fallar.
type DocumentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	catalog     CatalogLookup
	profiles    ProfileStore
	logos       LogoFetcher
	renderer    DocumentRenderer

	defaultLogoURL string
}

// NewDocumentUseCase construye el caso de uso inyectando todos sus puertos.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	catalog CatalogLookup,
	profiles ProfileStore,
	logos LogoFetcher,
	renderer DocumentRenderer,
	defaultLogoURL string,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:    invoiceRepo,
		orderRepo:      orderRepo,
		clientRepo:     clientRepo,
		catalog:        catalog,
		profiles:       profiles,
		logos:          logos,
		renderer:       renderer,
		defaultLogoURL: defaultLogoURL,
	}
}

// FromInvoice genera el PDF de una factura emitida.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece a la empresa del token.
func (uc *DocumentUseCase) FromInvoice(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("docgen: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("docgen: obtener detalles: %w", err)
	}

	// El cliente puede haber sido borrado; la factura se imprime igual.
	client, _ := uc.clientRepo.GetByID(inv.ClientID)

	return uc.render(ctx, companyID, FromInvoice(inv, items, client))
}

// FromOrder genera el PDF a partir del par legado (cliente, pedido), sin
// emitir factura. Mismo camino de render que FromInvoice tras normalizar.
func (uc *DocumentUseCase) FromOrder(ctx context.Context, companyID, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("docgen: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("docgen: obtener líneas: %w", err)
	}

	client, _ := uc.clientRepo.GetByID(order.ClientID)

	return uc.render(ctx, companyID, FromOrder(order, items, client))
}

// render ejecuta las etapas comunes sobre la entrada ya normalizada.
func (uc *DocumentUseCase) render(ctx context.Context, companyID string, in *DocumentInput) ([]byte, string, error) {
	company := uc.profiles.Get(companyID)
	if !company.IsPresent() {
		company = nil
	}

	// Logo del perfil; si el perfil no define uno, el configurado por defecto.
	var logo *Logo
	logoURL := uc.defaultLogoURL
	if company != nil && company.LogoURL != "" {
		logoURL = company.LogoURL
	}
	if logoURL != "" && uc.logos != nil {
		logo = uc.logos.Fetch(ctx, logoURL)
	}

	refs := ResolveReferences(ctx, uc.catalog, in.UnresolvedProductIDs())

	pdfBytes, err := uc.renderer.Render(in, company, logo, refs)
	if err != nil {
		return nil, "", fmt.Errorf("docgen: render fallido: %w", err)
	}
	return pdfBytes, Filename(in.Number), nil
}
