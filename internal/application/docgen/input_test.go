package docgen

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFromInvoice_Normaliza(t *testing.T) {
	issue := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Number:     "FV-0042",
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, 30),
		Status:     entity.InvoiceStatusPending,
		Subtotal:   dec("30"),
		TaxTotal:   dec("6.30"),
		GrandTotal: dec("36.30"),
		Notes:      "entrega en recepción",
	}
	items := []*entity.InvoiceItem{
		{Reference: "REF-1", Description: "Cajas", Quantity: dec("3"), UnitPrice: dec("10")},
	}
	client := &entity.Client{Name: "Acme SL", TaxID: "B12345678"}

	in := FromInvoice(inv, items, client)

	assert.Equal(t, "FV-0042", in.Number)
	assert.Equal(t, "Acme SL", in.Client.Name)
	assert.Equal(t, "entrega en recepción", in.Notes)
	require.Len(t, in.Lines, 1)
	// LineTotal ausente se deriva como cantidad × precio
	assert.True(t, in.Lines[0].LineTotal.Equal(dec("30")), "LineTotal = 3 × 10 = 30, got %s", in.Lines[0].LineTotal)
}

func TestFromInvoice_ClienteNil(t *testing.T) {
	in := FromInvoice(&entity.Invoice{Number: "FV-1", IssueDate: time.Now()}, nil, nil)
	assert.Equal(t, ClientIdentity{}, in.Client)
}

func TestNormalizeLine_NegativosACero(t *testing.T) {
	line := normalizeLine("", "p1", "Desc", dec("-2"), dec("-5"), dec("-1"))
	assert.True(t, line.Quantity.IsZero())
	assert.True(t, line.UnitPrice.IsZero())
	assert.True(t, line.LineTotal.IsZero(), "0 × 0 = 0")
}

func TestNormalizeLine_LineTotalExplicitoSeConserva(t *testing.T) {
	line := normalizeLine("", "p1", "Desc", dec("2"), dec("10"), dec("15"))
	assert.True(t, line.LineTotal.Equal(dec("15")), "un total explícito (descuento) no se recalcula")
}

func TestApplyDefaults_FechaEmision(t *testing.T) {
	in := &DocumentInput{}
	applyDefaults(in)
	assert.False(t, in.IssueDate.IsZero(), "fecha de emisión cero toma el valor actual")
}

func TestUnresolvedProductIDs_Dedup(t *testing.T) {
	in := &DocumentInput{Lines: []DocumentLine{
		{ProductID: "a"},
		{ProductID: "a"},
		{ProductID: "b"},
		{Reference: "REF", ProductID: "c"}, // con referencia inline no consulta
		{ProductID: ""},
	}}
	assert.Equal(t, []string{"a", "b"}, in.UnresolvedProductIDs())
}

func TestPrintedReference_Precedencia(t *testing.T) {
	refs := map[string]string{"p1": "CAT-1"}

	// inline gana a todo
	l := DocumentLine{Reference: "INLINE", ProductID: "p1"}
	assert.Equal(t, "INLINE", l.PrintedReference(refs))

	// resuelta del catálogo
	l = DocumentLine{ProductID: "p1"}
	assert.Equal(t, "CAT-1", l.PrintedReference(refs))

	// ID crudo cuando el catálogo no resolvió
	l = DocumentLine{ProductID: "p2"}
	assert.Equal(t, "p2", l.PrintedReference(refs))

	// guion cuando no hay nada
	l = DocumentLine{}
	assert.Equal(t, "—", l.PrintedReference(refs))
}

func TestCompanyIdentity_IsPresent(t *testing.T) {
	var nilIdentity *CompanyIdentity
	assert.False(t, nilIdentity.IsPresent())

	assert.False(t, (&CompanyIdentity{}).IsPresent())
	assert.False(t, (&CompanyIdentity{Name: "   "}).IsPresent(), "solo espacios cuenta como ausente")
	assert.False(t, (&CompanyIdentity{Phones: []string{" ", ""}}).IsPresent())

	assert.True(t, (&CompanyIdentity{Name: "Acme"}).IsPresent())
	assert.True(t, (&CompanyIdentity{Phones: []string{"", "600 000 000"}}).IsPresent())
	assert.True(t, (&CompanyIdentity{Addresses: []string{"Calle Mayor 1"}}).IsPresent())
}
