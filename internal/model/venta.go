package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta es una transacción de mostrador. Invariante: una vez completada,
// Total == Σ subtotales de sus items. Se persiste todo-o-nada junto con los
// movimientos de stock y de caja que genera.
type Venta struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero    int        `gorm:"uniqueIndex;not null"`
	ClienteID *uuid.UUID `gorm:"type:uuid;index"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TipoVenta string          `gorm:"type:varchar(20)"`
	Estado    string          `gorm:"type:varchar(20);not null;default:'completada'"`
	CreatedAt time.Time

	Cliente        *Cliente        `gorm:"foreignKey:ClienteID"`
	Items          []VentaItem     `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	MovimientoCaja *MovimientoCaja `gorm:"foreignKey:VentaID"`
}

// VentaItem es una línea de venta. PrecioUnitario es una foto del precio de
// la variante al momento de vender — cambios posteriores de precio no la tocan.
type VentaItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	VarianteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad       int       `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Variante *Variante `gorm:"foreignKey:VarianteID"`
}

func (VentaItem) TableName() string { return "ventas_items" }
