package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Club agrupa productos por equipo (camisetas por club).
type Club struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
	Liga   *string
	Logo   *string

	Productos []Producto `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

func (Club) TableName() string { return "clubes" }

type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string

	Productos []Producto `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}

type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Email     *string   `gorm:"uniqueIndex"`
	Telefono  *string
	Direccion *string
	CreatedAt time.Time
}

type Proveedor struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre   string    `gorm:"not null"`
	Contacto *string
	Telefono *string
	Email    *string

	Productos []ProductoProveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:CASCADE"`
}

func (Proveedor) TableName() string { return "proveedores" }

// ProductoProveedor vincula un producto con el proveedor que lo abastece.
type ProductoProveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CodigoProveedor *string
	PrecioCompra    *decimal.Decimal `gorm:"type:decimal(10,2)"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
	Producto  *Producto  `gorm:"foreignKey:ProductoID"`
}

func (ProductoProveedor) TableName() string { return "productos_proveedores" }
