// Package xmlexport serializa facturas al formato XML de intercambio
// (estructura UBL 2.1 simplificada, sin extensiones ni firma).
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Builder construye el XML de exportación de una factura.
type Builder struct {
	currencyCode string // ISO 4217, ej. "EUR"
}

// NewBuilder crea el builder con el código de moneda de los importes.
func NewBuilder(currencyCode string) *Builder {
	return &Builder{currencyCode: currencyCode}
}

// Build genera el documento XML indentado de la factura y sus líneas.
func (b *Builder) Build(
	invoice *entity.Invoice,
	items []*entity.InvoiceItem,
	company *entity.Company,
	client *entity.Client,
) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("xmlexport: factura requerida")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCac)
	root.CreateAttr("xmlns:cbc", nsCbc)

	root.CreateElement("cbc:UBLVersionID").SetText("2.1")
	root.CreateElement("cbc:ID").SetText(invoice.Number)
	root.CreateElement("cbc:IssueDate").SetText(invoice.IssueDate.Format("2006-01-02"))
	if !invoice.DueDate.IsZero() {
		root.CreateElement("cbc:DueDate").SetText(invoice.DueDate.Format("2006-01-02"))
	}
	root.CreateElement("cbc:DocumentCurrencyCode").SetText(b.currencyCode)
	if invoice.Notes != "" {
		root.CreateElement("cbc:Note").SetText(invoice.Notes)
	}

	b.writeParty(root, "cac:AccountingSupplierParty", partyData{
		name:  companyName(company),
		taxID: companyTaxID(company),
	})
	b.writeParty(root, "cac:AccountingCustomerParty", partyData{
		name:  clientName(client),
		taxID: clientTaxID(client),
	})

	// Totales monetarios
	totals := root.CreateElement("cac:LegalMonetaryTotal")
	b.writeAmount(totals, "cbc:LineExtensionAmount", invoice.Subtotal.StringFixed(2))
	b.writeAmount(totals, "cbc:TaxInclusiveAmount", invoice.GrandTotal.StringFixed(2))
	b.writeAmount(totals, "cbc:PayableAmount", invoice.GrandTotal.StringFixed(2))

	taxTotal := root.CreateElement("cac:TaxTotal")
	b.writeAmount(taxTotal, "cbc:TaxAmount", invoice.TaxTotal.StringFixed(2))

	// Líneas de detalle
	for i, it := range items {
		line := root.CreateElement("cac:InvoiceLine")
		line.CreateElement("cbc:ID").SetText(fmt.Sprintf("%d", i+1))
		line.CreateElement("cbc:InvoicedQuantity").SetText(it.Quantity.String())
		b.writeAmount(line, "cbc:LineExtensionAmount", it.LineTotal.StringFixed(2))

		item := line.CreateElement("cac:Item")
		item.CreateElement("cbc:Description").SetText(it.Description)
		if it.Reference != "" {
			sellerID := item.CreateElement("cac:SellersItemIdentification")
			sellerID.CreateElement("cbc:ID").SetText(it.Reference)
		}

		price := line.CreateElement("cac:Price")
		b.writeAmount(price, "cbc:PriceAmount", it.UnitPrice.StringFixed(2))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

type partyData struct {
	name  string
	taxID string
}

func (b *Builder) writeParty(parent *etree.Element, tag string, data partyData) {
	wrapper := parent.CreateElement(tag)
	party := wrapper.CreateElement("cac:Party")

	legal := party.CreateElement("cac:PartyLegalEntity")
	legal.CreateElement("cbc:RegistrationName").SetText(data.name)
	if data.taxID != "" {
		legal.CreateElement("cbc:CompanyID").SetText(data.taxID)
	}
}

func (b *Builder) writeAmount(parent *etree.Element, tag, value string) {
	el := parent.CreateElement(tag)
	el.CreateAttr("currencyID", b.currencyCode)
	el.SetText(value)
}

func companyName(c *entity.Company) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func companyTaxID(c *entity.Company) string {
	if c == nil {
		return ""
	}
	return c.TaxID
}

func clientName(c *entity.Client) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func clientTaxID(c *entity.Client) string {
	if c == nil {
		return ""
	}
	return c.TaxID
}
