package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LineaVentaRequest no valida Cantidad acá a propósito: una cantidad <= 0
// se rechaza línea por línea en el coordinador de ventas, sin abortar el
// request completo.
type LineaVentaRequest struct {
	VarianteID string `json:"variante_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"`
}

type RegistrarVentaRequest struct {
	ClienteID *string             `json:"cliente_id" validate:"omitempty,uuid"`
	TipoVenta string              `json:"tipo_venta" validate:"omitempty,oneof=fisica online"`
	Items     []LineaVentaRequest `json:"items"      validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	Producto       string          `json:"producto"`
	Talle          string          `json:"talle"`
	SKU            string          `json:"sku"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// LineaRechazada reporta un item que la venta descartó sin abortar el resto:
// variante inexistente, cantidad inválida o stock insuficiente.
type LineaRechazada struct {
	VarianteID string `json:"variante_id"`
	Motivo     string `json:"motivo"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Numero    int                 `json:"numero"`
	Cliente   *string             `json:"cliente"`
	Total     decimal.Decimal     `json:"total"`
	TipoVenta string              `json:"tipo_venta"`
	Estado    string              `json:"estado"`
	Items     []ItemVentaResponse `json:"items"`
	Rechazos  []LineaRechazada    `json:"rechazos,omitempty"`
	Fecha     string              `json:"fecha"`
}
