package dto

// UpdateCompanyRequest datos editables de la empresa.
type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url"`
}

// CompanyResponse representación pública de la empresa.
type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url,omitempty"`
	Status  string `json:"status"`
}

// CompanyProfileRequest identidad que se imprime en los documentos.
// Es independiente de los datos registrales de la empresa.
type CompanyProfileRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phones    []string `json:"phones"`
	Addresses []string `json:"addresses"`
	LogoURL   string   `json:"logo_url"`
}
