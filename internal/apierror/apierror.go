// Package apierror define los sobres de error que la API devuelve al cliente.
// Todo 4xx/5xx sale por acá: nunca se filtran detalles internos (stack traces,
// errores crudos de la base) hacia afuera.
package apierror

// APIError es el sobre canónico de error, un solo campo legible.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError agrupa los errores de campo de un request inválido,
// campo → tag de validación que falló.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
