package billing

import (
	"strings"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// XMLBuilder serializa una factura al XML de intercambio.
type XMLBuilder interface {
	Build(invoice *entity.Invoice, items []*entity.InvoiceItem, company *entity.Company, client *entity.Client) ([]byte, error)
}

// ExportUseCase exporta facturas a XML.
type ExportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	builder     XMLBuilder
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	builder XMLBuilder,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		builder:     builder,
	}
}

// ExportXML genera el XML de la factura y un nombre de fichero seguro.
// Empresa o cliente ausentes no bloquean la exportación.
func (uc *ExportUseCase) ExportXML(companyID, invoiceID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}
	if invoice.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	company, _ := uc.companyRepo.GetByID(companyID)
	client, _ := uc.clientRepo.GetByID(invoice.ClientID)

	raw, err := uc.builder.Build(invoice, items, company, client)
	if err != nil {
		return nil, "", err
	}

	filename := strings.TrimSuffix(docgen.Filename(invoice.Number), ".pdf") + ".xml"
	return raw, filename, nil
}
