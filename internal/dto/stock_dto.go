package dto

import "github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AjusteStockRequest struct {
	Cantidad int       `json:"cantidad" validate:"required,gt=0"`
	Tipo     model.TipoMovimientoStock `json:"tipo" validate:"required,oneof=entrada salida"`
	Motivo   string    `json:"motivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AjusteStockResponse struct {
	VarianteID    string `json:"variante_id"`
	SKU           string `json:"sku"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	StockAnterior int    `json:"stock_anterior"`
	StockNuevo    int    `json:"stock_nuevo"`
}

type MovimientoStockResponse struct {
	ID       string `json:"id"`
	Producto string `json:"producto"`
	Talle    string `json:"talle"`
	SKU      string `json:"sku"`
	Tipo     string `json:"tipo"`
	Cantidad int    `json:"cantidad"`
	Motivo   string `json:"motivo"`
	Usuario  string `json:"usuario"`
	Fecha    string `json:"fecha"`
}

type StockItemResponse struct {
	VarianteID  string `json:"variante_id"`
	Producto    string `json:"producto"`
	Club        string `json:"club"`
	Categoria   string `json:"categoria"`
	Talle       string `json:"talle"`
	Color       *string `json:"color"`
	SKU         string  `json:"sku"`
	Stock       int     `json:"stock"`
	StockMinimo int     `json:"stock_minimo"`
	StockBajo   bool    `json:"stock_bajo"`
}
