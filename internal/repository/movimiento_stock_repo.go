package repository

import (
	"context"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimientoStockFilter define los filtros del historial de movimientos.
type MovimientoStockFilter struct {
	FechaDesde *time.Time
	FechaHasta *time.Time
	Tipo       model.TipoMovimientoStock
	ProductoID *uuid.UUID
}

// MovimientoStockRepository persiste el historial inmutable de stock.
// Deliberadamente no expone Update ni Delete: los movimientos son hechos.
type MovimientoStockRepository interface {
	Create(ctx context.Context, m *model.MovimientoStock) error
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	List(ctx context.Context, filter MovimientoStockFilter) ([]model.MovimientoStock, error)
	CountByVariante(ctx context.Context, varianteID uuid.UUID) (int64, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) Create(ctx context.Context, m *model.MovimientoStock) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return tx.Create(m).Error
}

func (r *movimientoStockRepo) List(ctx context.Context, filter MovimientoStockFilter) ([]model.MovimientoStock, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoStock{}).
		Joins("JOIN variantes ON variantes.id = movimientos_stock.variante_id").
		Preload("Variante.Producto")

	if filter.FechaDesde != nil {
		q = q.Where("movimientos_stock.created_at >= ?", *filter.FechaDesde)
	}
	if filter.FechaHasta != nil {
		q = q.Where("movimientos_stock.created_at <= ?", *filter.FechaHasta)
	}
	if filter.Tipo != "" {
		q = q.Where("movimientos_stock.tipo = ?", filter.Tipo)
	}
	if filter.ProductoID != nil {
		q = q.Where("variantes.producto_id = ?", *filter.ProductoID)
	}

	var movimientos []model.MovimientoStock
	err := q.Order("movimientos_stock.created_at DESC").Find(&movimientos).Error
	return movimientos, err
}

func (r *movimientoStockRepo) CountByVariante(ctx context.Context, varianteID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.MovimientoStock{}).
		Where("variante_id = ?", varianteID).Count(&total).Error
	return total, err
}
