package repository

import (
	"context"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VarianteFilter define los filtros del listado de stock.
type VarianteFilter struct {
	StockBajo   bool
	CategoriaID *uuid.UUID
	ClubID      *uuid.UUID
}

// VarianteRepository es el contrato de acceso a datos de variantes.
// Los servicios dependen de esta interfaz, no de GORM, para poder
// testearse con implementaciones en memoria.
type VarianteRepository interface {
	Create(ctx context.Context, v *model.Variante) error
	CreateTx(tx *gorm.DB, v *model.Variante) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Variante, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Variante, error)
	FindBySKU(ctx context.Context, sku string) (*model.Variante, error)
	ListByProducto(ctx context.Context, productoID uuid.UUID) ([]model.Variante, error)
	List(ctx context.Context, filter VarianteFilter) ([]model.Variante, error)
	Update(ctx context.Context, v *model.Variante) error
	UpdateTx(tx *gorm.DB, v *model.Variante) error

	// SumarStockTx incrementa el stock sin tope superior.
	SumarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error
	// DescontarStockTx decrementa el stock con guarda de suficiencia a nivel
	// de fila (stock >= cantidad). Devuelve false, sin mutar nada, cuando la
	// guarda no se cumple — dos ventas concurrentes no pueden dejar el stock
	// en negativo aunque ambas hayan leído stock suficiente.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (bool, error)

	// DB expone el *gorm.DB para que los servicios abran transacciones.
	DB() *gorm.DB
}

type varianteRepo struct{ db *gorm.DB }

func NewVarianteRepository(db *gorm.DB) VarianteRepository { return &varianteRepo{db: db} }

func (r *varianteRepo) Create(ctx context.Context, v *model.Variante) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *varianteRepo) CreateTx(tx *gorm.DB, v *model.Variante) error {
	return tx.Create(v).Error
}

func (r *varianteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Variante, error) {
	var v model.Variante
	err := r.db.WithContext(ctx).Preload("Producto").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *varianteRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Variante, error) {
	var v model.Variante
	err := tx.Preload("Producto").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *varianteRepo) FindBySKU(ctx context.Context, sku string) (*model.Variante, error) {
	var v model.Variante
	err := r.db.WithContext(ctx).Preload("Producto").Where("sku = ?", sku).First(&v).Error
	return &v, err
}

func (r *varianteRepo) ListByProducto(ctx context.Context, productoID uuid.UUID) ([]model.Variante, error) {
	var variantes []model.Variante
	err := r.db.WithContext(ctx).Where("producto_id = ?", productoID).Order("talle").Find(&variantes).Error
	return variantes, err
}

func (r *varianteRepo) List(ctx context.Context, filter VarianteFilter) ([]model.Variante, error) {
	q := r.db.WithContext(ctx).Model(&model.Variante{}).
		Joins("JOIN productos ON productos.id = variantes.producto_id").
		Preload("Producto.Club").Preload("Producto.Categoria")

	if filter.StockBajo {
		q = q.Where("variantes.stock <= variantes.stock_minimo")
	}
	if filter.CategoriaID != nil {
		q = q.Where("productos.categoria_id = ?", *filter.CategoriaID)
	}
	if filter.ClubID != nil {
		q = q.Where("productos.club_id = ?", *filter.ClubID)
	}

	var variantes []model.Variante
	err := q.Order("productos.nombre, variantes.talle").Find(&variantes).Error
	return variantes, err
}

func (r *varianteRepo) Update(ctx context.Context, v *model.Variante) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *varianteRepo) UpdateTx(tx *gorm.DB, v *model.Variante) error {
	return tx.Save(v).Error
}

func (r *varianteRepo) SumarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Variante{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", cantidad)).Error
}

func (r *varianteRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (bool, error) {
	res := tx.Model(&model.Variante{}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	return res.RowsAffected > 0, res.Error
}

func (r *varianteRepo) DB() *gorm.DB { return r.db }
