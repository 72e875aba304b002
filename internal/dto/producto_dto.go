package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required"`
	ClubID      string          `json:"club_id"      validate:"required,uuid"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	Temporada   string          `json:"temporada"    validate:"required"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"       validate:"min=0"`
}

type VarianteRequest struct {
	Talle       string          `json:"talle"        validate:"required"`
	Color       *string         `json:"color"`
	SKU         string          `json:"sku"          validate:"required"`
	Precio      decimal.Decimal `json:"precio"       validate:"required,gt=0"`
	Stock       int             `json:"stock"        validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

// ActualizarVarianteRequest edita una variante existente. Un Stock distinto
// al actual dispara la reconciliación del ledger (delta → entrada/salida),
// nunca una asignación directa del campo.
type ActualizarVarianteRequest struct {
	Talle       string          `json:"talle"        validate:"required"`
	Color       *string         `json:"color"`
	SKU         string          `json:"sku"          validate:"required"`
	Precio      decimal.Decimal `json:"precio"       validate:"required,gt=0"`
	Stock       int             `json:"stock"        validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VarianteResponse struct {
	ID          string          `json:"id"`
	Talle       string          `json:"talle"`
	Color       *string         `json:"color"`
	SKU         string          `json:"sku"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
}

type ProductoResponse struct {
	ID          string             `json:"id"`
	Nombre      string             `json:"nombre"`
	Club        string             `json:"club"`
	Categoria   string             `json:"categoria"`
	Temporada   string             `json:"temporada"`
	Descripcion *string            `json:"descripcion"`
	Precio      decimal.Decimal    `json:"precio"`
	Activo      bool               `json:"activo"`
	Variantes   []VarianteResponse `json:"variantes"`
}

// ResultadoBusqueda es una entrada del buscador del punto de venta:
// una línea por variante, con el texto ya armado para mostrar.
type ResultadoBusqueda struct {
	ID     string          `json:"id"`
	Texto  string          `json:"text"`
	Precio decimal.Decimal `json:"precio"`
	Stock  int             `json:"stock"`
}

type StockSKUResponse struct {
	SKU      string          `json:"sku"`
	Producto string          `json:"producto"`
	Talle    string          `json:"talle"`
	Stock    int             `json:"stock"`
	Precio   decimal.Decimal `json:"precio"`
}
