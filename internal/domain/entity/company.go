package entity

import "time"

// Company representa una organización/tenant del sistema.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	LogoURL   string // logo para los documentos; vacío = usar el configurado o ninguno
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
