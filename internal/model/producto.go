package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto es una camiseta/equipación de un club, categoría y temporada.
// El stock real vive en las variantes (talle/color), no acá.
type Producto struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string    `gorm:"index;not null"`
	ClubID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoriaID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Temporada       string    `gorm:"type:varchar(10);not null"`
	Descripcion     *string
	Precio          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ImagenPrincipal *string
	Activo          bool `gorm:"not null;default:true"`
	CreatedAt       time.Time

	Club      *Club      `gorm:"foreignKey:ClubID"`
	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Variantes []Variante `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

// Variante es la unidad vendible: un talle/color concreto con SKU propio.
// Invariante: Stock >= 0 siempre — lo garantiza el ledger de inventario,
// nunca se muta este campo por fuera de él.
type Variante struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Talle       string    `gorm:"type:varchar(10);not null"`
	Color       *string   `gorm:"type:varchar(30)"`
	SKU         string    `gorm:"column:sku;uniqueIndex;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	StockMinimo int             `gorm:"not null;default:5"`

	Producto    *Producto         `gorm:"foreignKey:ProductoID"`
	Movimientos []MovimientoStock `gorm:"foreignKey:VarianteID;constraint:OnDelete:CASCADE"`
}

// MovimientoStock es un hecho histórico inmutable: explica cada cambio de
// stock de una variante. Se crea exactamente una vez por mutación del ledger
// y nunca se edita ni se borra.
type MovimientoStock struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VarianteID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Tipo       TipoMovimientoStock `gorm:"type:varchar(20);not null"`
	Cantidad   int                 `gorm:"not null"` // siempre > 0; el signo lo da Tipo
	Motivo     string
	Usuario    string `gorm:"type:varchar(50)"`
	CreatedAt  time.Time

	Variante *Variante `gorm:"foreignKey:VarianteID"`
}

func (MovimientoStock) TableName() string { return "movimientos_stock" }
