package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caja es el único registro de efectivo del local ("Caja Principal").
// Se crea perezosamente en el primer uso. Invariante permanente:
// Saldo == Σ efecto firmado de todos sus movimientos.
type Caja struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string          `gorm:"type:varchar(50);not null"`
	Saldo  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Movimientos []MovimientoCaja `gorm:"foreignKey:CajaID;constraint:OnDelete:CASCADE"`
}

// MovimientoCaja es una entrada del ledger de caja. A diferencia de
// MovimientoStock, el personal puede editarlo y borrarlo; cada edición o
// borrado revierte su efecto sobre el saldo en la misma transacción.
type MovimientoCaja struct {
	ID      uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CajaID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Tipo    TipoMovimientoCaja `gorm:"type:varchar(20);not null"`
	Monto   decimal.Decimal    `gorm:"type:decimal(12,2);not null"` // siempre > 0
	Motivo  string             `gorm:"not null"`
	Usuario string             `gorm:"type:varchar(50)"` // quién lo registró; vacío si lo generó el sistema
	VentaID *uuid.UUID         `gorm:"type:uuid;index"` // venta que lo originó, si aplica
	CreatedAt time.Time

	Caja *Caja `gorm:"foreignKey:CajaID"`
}

func (MovimientoCaja) TableName() string { return "movimientos_caja" }
