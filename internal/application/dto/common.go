// Package dto define los contratos de entrada/salida de la API.
package dto

// ErrorResponse formato estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// PageResponse metadatos de paginación de una lista.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
