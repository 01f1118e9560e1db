package entity

import "time"

// Client representa un cliente de la empresa (facturación).
type Client struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string // NIF/NIT o cédula
	Email     string
	Phone     string
	Location  string // dirección o localidad de facturación
	CreatedAt time.Time
	UpdatedAt time.Time
}
