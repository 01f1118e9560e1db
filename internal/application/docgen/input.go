// Package docgen normaliza los datos de facturación y orquesta la generación
// del documento PDF de la factura. Acepta dos formas de entrada, un pedido
// (cliente + order) o una factura ya emitida, y las reduce a un único
// DocumentInput antes de cualquier cálculo de layout.
package docgen

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// DocumentInput es la forma normalizada que consume el ensamblador del PDF.
type DocumentInput struct {
	Number    string // vacío = el renderer usa la etiqueta genérica
	IssueDate time.Time
	DueDate   time.Time // cero = no se imprime
	Status    string    // solo presentación; vacío = no se imprime
	Client    ClientIdentity
	Lines     []DocumentLine // el orden importa: se imprimen en secuencia
	Subtotal  decimal.Decimal
	TaxTotal  decimal.Decimal
	Total     decimal.Decimal
	Notes     string // se transporta pero no se imprime (decisión de producto)
}

// ClientIdentity datos del receptor. Solo Name es obligatorio.
type ClientIdentity struct {
	Name     string
	TaxID    string
	Email    string
	Phone    string
	Location string
}

// DocumentLine una línea de detalle ya saneada: cantidades e importes nunca
// quedan negativos ni sin valor (evita imprimir "NaN").
type DocumentLine struct {
	Reference   string // código de catálogo inline; vacío = resolver contra el catálogo
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// CompanyIdentity identidad del emisor, cargada del perfil de empresa.
// Tratarla como overlay opcional: puede faltar por completo.
type CompanyIdentity struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phones    []string `json:"phones"`
	Addresses []string `json:"addresses"`
	LogoURL   string   `json:"logo_url"`
}

// IsPresent indica si el perfil tiene al menos un campo con contenido real
// (tras recortar espacios). Un perfil "vacío" se trata como ausente y el
// documento se genera sin bloque de empresa.
func (c *CompanyIdentity) IsPresent() bool {
	if c == nil {
		return false
	}
	if strings.TrimSpace(c.Name) != "" || strings.TrimSpace(c.Email) != "" {
		return true
	}
	for _, p := range c.Phones {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	for _, a := range c.Addresses {
		if strings.TrimSpace(a) != "" {
			return true
		}
	}
	return false
}

// Logo imagen incrustable ya descargada. AspectRatio = ancho/alto en píxeles;
// 0 significa desconocido y el renderer usa la huella cuadrada.
type Logo struct {
	Bytes       []byte
	ImageType   string // "png" | "jpg"
	AspectRatio float64
}

// FromInvoice normaliza una factura emitida y su cliente.
func FromInvoice(inv *entity.Invoice, items []*entity.InvoiceItem, client *entity.Client) *DocumentInput {
	in := &DocumentInput{
		Number:    inv.Number,
		IssueDate: inv.IssueDate,
		DueDate:   inv.DueDate,
		Status:    inv.Status,
		Client:    clientIdentity(client),
		Subtotal:  inv.Subtotal,
		TaxTotal:  inv.TaxTotal,
		Total:     inv.GrandTotal,
		Notes:     inv.Notes,
	}
	for _, it := range items {
		in.Lines = append(in.Lines, normalizeLine(
			it.Reference, it.ProductID, it.Description, it.Quantity, it.UnitPrice, it.LineTotal,
		))
	}
	applyDefaults(in)
	return in
}

// FromOrder normaliza el par legado (cliente, pedido). Es un shim de
// compatibilidad: a partir de aquí solo existe DocumentInput.
func FromOrder(order *entity.Order, items []*entity.OrderItem, client *entity.Client) *DocumentInput {
	in := &DocumentInput{
		Number:    order.Number,
		IssueDate: order.Date,
		Client:    clientIdentity(client),
		Subtotal:  order.Subtotal,
		TaxTotal:  order.TaxTotal,
		Total:     order.GrandTotal,
		Notes:     order.Notes,
	}
	for _, it := range items {
		in.Lines = append(in.Lines, normalizeLine(
			it.Reference, it.ProductID, it.Description, it.Quantity, it.UnitPrice, it.LineTotal,
		))
	}
	applyDefaults(in)
	return in
}

func clientIdentity(c *entity.Client) ClientIdentity {
	if c == nil {
		return ClientIdentity{}
	}
	return ClientIdentity{
		Name:     c.Name,
		TaxID:    c.TaxID,
		Email:    c.Email,
		Phone:    c.Phone,
		Location: c.Location,
	}
}

// normalizeLine aplica los defaults numéricos: negativos a 0 y, si falta el
// total de línea, se deriva como cantidad × precio unitario.
func normalizeLine(ref, productID, desc string, qty, unitPrice, lineTotal decimal.Decimal) DocumentLine {
	if qty.IsNegative() {
		qty = decimal.Zero
	}
	if unitPrice.IsNegative() {
		unitPrice = decimal.Zero
	}
	if lineTotal.IsZero() || lineTotal.IsNegative() {
		lineTotal = qty.Mul(unitPrice)
	}
	return DocumentLine{
		Reference:   strings.TrimSpace(ref),
		ProductID:   productID,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		LineTotal:   lineTotal,
	}
}

func applyDefaults(in *DocumentInput) {
	if in.IssueDate.IsZero() {
		in.IssueDate = time.Now()
	}
}

// UnresolvedProductIDs devuelve, sin duplicados, los IDs de producto de las
// líneas que no traen referencia inline. Solo esas líneas consultan el
// catálogo (minimiza las llamadas de red).
func (in *DocumentInput) UnresolvedProductIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, l := range in.Lines {
		if l.Reference != "" || l.ProductID == "" {
			continue
		}
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

// PrintedReference aplica la precedencia de referencia de una línea:
// referencia inline → referencia resuelta del catálogo → ProductID crudo →
// guion de relleno. El orden es contractual.
func (l DocumentLine) PrintedReference(refs map[string]string) string {
	if l.Reference != "" {
		return l.Reference
	}
	if r, ok := refs[l.ProductID]; ok && r != "" {
		return r
	}
	if l.ProductID != "" {
		return l.ProductID
	}
	return "—"
}
