package model

import "github.com/shopspring/decimal"

// TipoMovimientoStock is the direction of an inventory movement.
// Modeled as a closed enum instead of a free-form string so an invalid
// direction is caught at the service boundary, not deep in a query.
type TipoMovimientoStock string

const (
	StockEntrada TipoMovimientoStock = "entrada"
	StockSalida  TipoMovimientoStock = "salida"
)

func (t TipoMovimientoStock) Valido() bool {
	return t == StockEntrada || t == StockSalida
}

// TipoMovimientoCaja is the direction of a cash register movement.
type TipoMovimientoCaja string

const (
	CajaIngreso TipoMovimientoCaja = "ingreso"
	CajaEgreso  TipoMovimientoCaja = "egreso"
)

func (t TipoMovimientoCaja) Valido() bool {
	return t == CajaIngreso || t == CajaEgreso
}

// Efecto returns the signed contribution of a movement of this direction
// to the register balance: +monto for ingreso, -monto for egreso.
func (t TipoMovimientoCaja) Efecto(monto decimal.Decimal) decimal.Decimal {
	if t == CajaEgreso {
		return monto.Neg()
	}
	return monto
}
