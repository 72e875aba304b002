package dto

import (
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type MovimientoCajaRequest struct {
	Tipo   model.TipoMovimientoCaja `json:"tipo"   validate:"required,oneof=ingreso egreso"`
	Monto  decimal.Decimal          `json:"monto"  validate:"required,gt=0"`
	Motivo string                   `json:"motivo" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoCajaResponse struct {
	ID      string          `json:"id"`
	Tipo    string          `json:"tipo"`
	Monto   decimal.Decimal `json:"monto"`
	Motivo  string          `json:"motivo"`
	VentaID *string         `json:"venta_id,omitempty"`
	Fecha   string          `json:"fecha"`
}

type SaldoResponse struct {
	CajaID string          `json:"caja_id"`
	Saldo  decimal.Decimal `json:"saldo"`
}

type CajaResponse struct {
	ID          string                   `json:"id"`
	Nombre      string                   `json:"nombre"`
	Saldo       decimal.Decimal          `json:"saldo"`
	Movimientos []MovimientoCajaResponse `json:"movimientos"`
}
