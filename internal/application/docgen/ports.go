package docgen

import "context"

// CatalogLookup consulta puntual del catálogo de productos.
// Devuelve la referencia legible del producto; error o vacío se tratan como
// "sin referencia" y el caller aplica su fallback.
type CatalogLookup interface {
	LookupReference(ctx context.Context, productID string) (string, error)
}

// ProfileStore carga la identidad de empresa persistida. Un perfil ausente o
// corrupto devuelve nil, nunca error: el documento se genera sin bloque de
// empresa.
type ProfileStore interface {
	Get(companyID string) *CompanyIdentity
}

// LogoFetcher descarga y sondea el logo. Cualquier fallo (red, status, decode)
// devuelve nil: el documento se genera sin logo.
type LogoFetcher interface {
	Fetch(ctx context.Context, url string) *Logo
}

// DocumentRenderer serializa el DocumentInput a un artefacto binario.
// Es la única etapa cuyo error aborta la generación.
type DocumentRenderer interface {
	Render(in *DocumentInput, company *CompanyIdentity, logo *Logo, refs map[string]string) ([]byte, error)
}
