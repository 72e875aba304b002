package repository

import (
	"context"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoCajaFilter define los filtros del listado de movimientos de caja.
type MovimientoCajaFilter struct {
	FechaDesde *time.Time
	FechaHasta *time.Time
	Tipo       model.TipoMovimientoCaja
	Limit      int
}

type CajaRepository interface {
	// FindPrincipal devuelve la única caja del sistema, o gorm.ErrRecordNotFound.
	FindPrincipal(ctx context.Context) (*model.Caja, error)
	Create(ctx context.Context, c *model.Caja) error
	// FindPrincipalTx carga la caja con lock de fila (SELECT ... FOR UPDATE en
	// Postgres) para que chequeo de saldo y actualización sean atómicos frente
	// a requests concurrentes.
	FindPrincipalTx(tx *gorm.DB) (*model.Caja, error)
	CreateTx(tx *gorm.DB, c *model.Caja) error

	AjustarSaldoTx(tx *gorm.DB, cajaID uuid.UUID, delta decimal.Decimal) error

	FindMovimientoByID(ctx context.Context, id uuid.UUID) (*model.MovimientoCaja, error)
	FindMovimientoByIDTx(tx *gorm.DB, id uuid.UUID) (*model.MovimientoCaja, error)
	CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error
	UpdateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error
	DeleteMovimientoTx(tx *gorm.DB, id uuid.UUID) error
	ListMovimientos(ctx context.Context, cajaID uuid.UUID, filter MovimientoCajaFilter) ([]model.MovimientoCaja, error)

	DB() *gorm.DB
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) FindPrincipal(ctx context.Context) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).Order("id").First(&c).Error
	return &c, err
}

func (r *cajaRepo) Create(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) FindPrincipalTx(tx *gorm.DB) (*model.Caja, error) {
	var c model.Caja
	err := tx.Clauses(forUpdate()).Order("id").First(&c).Error
	return &c, err
}

func (r *cajaRepo) CreateTx(tx *gorm.DB, c *model.Caja) error {
	return tx.Create(c).Error
}

func (r *cajaRepo) AjustarSaldoTx(tx *gorm.DB, cajaID uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Caja{}).Where("id = ?", cajaID).
		Update("saldo", gorm.Expr("saldo + ?", delta)).Error
}

func (r *cajaRepo) FindMovimientoByID(ctx context.Context, id uuid.UUID) (*model.MovimientoCaja, error) {
	var m model.MovimientoCaja
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *cajaRepo) FindMovimientoByIDTx(tx *gorm.DB, id uuid.UUID) (*model.MovimientoCaja, error) {
	var m model.MovimientoCaja
	err := tx.First(&m, "id = ?", id).Error
	return &m, err
}

func (r *cajaRepo) CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error {
	return tx.Create(m).Error
}

func (r *cajaRepo) UpdateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error {
	return tx.Save(m).Error
}

func (r *cajaRepo) DeleteMovimientoTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.MovimientoCaja{}, "id = ?", id).Error
}

func (r *cajaRepo) ListMovimientos(ctx context.Context, cajaID uuid.UUID, filter MovimientoCajaFilter) ([]model.MovimientoCaja, error) {
	q := r.db.WithContext(ctx).Where("caja_id = ?", cajaID)

	if filter.FechaDesde != nil {
		q = q.Where("created_at >= ?", *filter.FechaDesde)
	}
	if filter.FechaHasta != nil {
		q = q.Where("created_at <= ?", *filter.FechaHasta)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var movimientos []model.MovimientoCaja
	err := q.Order("created_at DESC").Find(&movimientos).Error
	return movimientos, err
}

func (r *cajaRepo) DB() *gorm.DB { return r.db }
