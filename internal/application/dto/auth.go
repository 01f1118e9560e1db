package dto

// RegisterRequest alta de empresa + usuario administrador inicial.
type RegisterRequest struct {
	CompanyName  string `json:"company_name"`
	CompanyTaxID string `json:"company_tax_id"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse token emitido tras registro o login.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}
