package repository

import (
	"context"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaFilter define los filtros del listado de ventas.
type VentaFilter struct {
	FechaDesde *time.Time
	FechaHasta *time.Time
	ClienteID  *uuid.UUID
	TipoVenta  string
}

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter VentaFilter) ([]model.Venta, error)
	ListRecientes(ctx context.Context, limit int) ([]model.Venta, error)
	// NextNumero obtiene el próximo número de venta de una secuencia de
	// Postgres, atómico dentro de la transacción.
	NextNumero(tx *gorm.DB) (int, error)
	Count(ctx context.Context) (int64, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Variante.Producto").
		Preload("Cliente").
		Preload("MovimientoCaja").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter VentaFilter) ([]model.Venta, error) {
	q := r.db.WithContext(ctx).Model(&model.Venta{}).
		Preload("Items.Variante.Producto").Preload("Cliente")

	if filter.FechaDesde != nil {
		q = q.Where("created_at >= ?", *filter.FechaDesde)
	}
	if filter.FechaHasta != nil {
		q = q.Where("created_at <= ?", *filter.FechaHasta)
	}
	if filter.ClienteID != nil {
		q = q.Where("cliente_id = ?", *filter.ClienteID)
	}
	if filter.TipoVenta != "" {
		q = q.Where("tipo_venta = ?", filter.TipoVenta)
	}

	var ventas []model.Venta
	err := q.Order("created_at DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListRecientes(ctx context.Context, limit int) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Cliente").
		Order("created_at DESC").Limit(limit).Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) NextNumero(tx *gorm.DB) (int, error) {
	var num int
	err := tx.Raw("SELECT nextval('ventas_numero_seq')").Scan(&num).Error
	return num, err
}

func (r *ventaRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).Count(&total).Error
	return total, err
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
