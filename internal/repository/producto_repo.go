package repository

import (
	"context"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoFilter replica los filtros del listado de productos.
type ProductoFilter struct {
	ClubID      *uuid.UUID
	CategoriaID *uuid.UUID
	Temporada   string
	Talle       string
}

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter ProductoFilter) ([]model.Producto, error)
	// Buscar hace la búsqueda libre del punto de venta: nombre de producto,
	// SKU de variante o nombre de club, hasta limit resultados.
	Buscar(ctx context.Context, termino string, limit int) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Count(ctx context.Context) (int64, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Club").Preload("Categoria").Preload("Variantes").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter ProductoFilter) ([]model.Producto, error) {
	q := r.db.WithContext(ctx).Model(&model.Producto{}).
		Preload("Club").Preload("Categoria").Preload("Variantes")

	if filter.ClubID != nil {
		q = q.Where("club_id = ?", *filter.ClubID)
	}
	if filter.CategoriaID != nil {
		q = q.Where("categoria_id = ?", *filter.CategoriaID)
	}
	if filter.Temporada != "" {
		q = q.Where("temporada = ?", filter.Temporada)
	}
	if filter.Talle != "" {
		q = q.Joins("JOIN variantes ON variantes.producto_id = productos.id").
			Where("variantes.talle = ?", filter.Talle).
			Distinct("productos.*")
	}

	var productos []model.Producto
	err := q.Order("nombre").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Buscar(ctx context.Context, termino string, limit int) ([]model.Producto, error) {
	like := "%" + termino + "%"
	var productos []model.Producto
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Joins("JOIN clubes ON clubes.id = productos.club_id").
		Joins("JOIN variantes ON variantes.producto_id = productos.id").
		Where("productos.nombre ILIKE ? OR variantes.sku ILIKE ? OR clubes.nombre ILIKE ?", like, like, like).
		Distinct("productos.*").
		Preload("Club").Preload("Variantes").
		Limit(limit).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Count(&total).Error
	return total, err
}
