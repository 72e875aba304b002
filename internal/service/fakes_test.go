package service

// Fakes en memoria de los repositorios. Devuelven COPIAS en los Find* para
// imitar a GORM: lo que el servicio lee no es la fila, mutarlo no persiste.

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── VarianteRepository ───────────────────────────────────────────────────────

type fakeVarianteRepo struct {
	variantes map[uuid.UUID]*model.Variante
}

var _ repository.VarianteRepository = (*fakeVarianteRepo)(nil)

func newFakeVarianteRepo() *fakeVarianteRepo {
	return &fakeVarianteRepo{variantes: make(map[uuid.UUID]*model.Variante)}
}

// add guarda una copia, como GORM: la "fila" vive en el repo y el struct
// del llamador queda como espejo en memoria.
func (r *fakeVarianteRepo) add(v *model.Variante) *model.Variante {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	clone := *v
	r.variantes[v.ID] = &clone
	return v
}

func (r *fakeVarianteRepo) Create(_ context.Context, v *model.Variante) error {
	r.add(v)
	return nil
}

func (r *fakeVarianteRepo) CreateTx(_ *gorm.DB, v *model.Variante) error {
	r.add(v)
	return nil
}

func (r *fakeVarianteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Variante, error) {
	v, ok := r.variantes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *fakeVarianteRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Variante, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeVarianteRepo) FindBySKU(_ context.Context, sku string) (*model.Variante, error) {
	for _, v := range r.variantes {
		if v.SKU == sku {
			clone := *v
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVarianteRepo) ListByProducto(_ context.Context, productoID uuid.UUID) ([]model.Variante, error) {
	var result []model.Variante
	for _, v := range r.variantes {
		if v.ProductoID == productoID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *fakeVarianteRepo) List(_ context.Context, filter repository.VarianteFilter) ([]model.Variante, error) {
	var result []model.Variante
	for _, v := range r.variantes {
		if filter.StockBajo && v.Stock > v.StockMinimo {
			continue
		}
		result = append(result, *v)
	}
	return result, nil
}

func (r *fakeVarianteRepo) Update(_ context.Context, v *model.Variante) error {
	clone := *v
	r.variantes[v.ID] = &clone
	return nil
}

func (r *fakeVarianteRepo) UpdateTx(_ *gorm.DB, v *model.Variante) error {
	return r.Update(context.Background(), v)
}

func (r *fakeVarianteRepo) SumarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	v, ok := r.variantes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Stock += cantidad
	return nil
}

func (r *fakeVarianteRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) (bool, error) {
	v, ok := r.variantes[id]
	if !ok {
		return false, nil
	}
	if v.Stock < cantidad {
		return false, nil
	}
	v.Stock -= cantidad
	return true, nil
}

func (r *fakeVarianteRepo) DB() *gorm.DB { return nil }

// ── MovimientoStockRepository ────────────────────────────────────────────────

type fakeMovStockRepo struct {
	movimientos []model.MovimientoStock
}

var _ repository.MovimientoStockRepository = (*fakeMovStockRepo)(nil)

func newFakeMovStockRepo() *fakeMovStockRepo { return &fakeMovStockRepo{} }

func (r *fakeMovStockRepo) Create(_ context.Context, m *model.MovimientoStock) error {
	return r.CreateTx(nil, m)
}

func (r *fakeMovStockRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeMovStockRepo) List(_ context.Context, filter repository.MovimientoStockFilter) ([]model.MovimientoStock, error) {
	var result []model.MovimientoStock
	for _, m := range r.movimientos {
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (r *fakeMovStockRepo) CountByVariante(_ context.Context, varianteID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range r.movimientos {
		if m.VarianteID == varianteID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovStockRepo) porVariante(id uuid.UUID) []model.MovimientoStock {
	var result []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.VarianteID == id {
			result = append(result, m)
		}
	}
	return result
}

// ── CajaRepository ───────────────────────────────────────────────────────────

type fakeCajaRepo struct {
	caja        *model.Caja
	movimientos map[uuid.UUID]*model.MovimientoCaja
	orden       []uuid.UUID
}

var _ repository.CajaRepository = (*fakeCajaRepo)(nil)

func newFakeCajaRepo() *fakeCajaRepo {
	return &fakeCajaRepo{movimientos: make(map[uuid.UUID]*model.MovimientoCaja)}
}

func (r *fakeCajaRepo) FindPrincipal(_ context.Context) (*model.Caja, error) {
	if r.caja == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *r.caja
	return &clone, nil
}

func (r *fakeCajaRepo) Create(_ context.Context, c *model.Caja) error {
	return r.CreateTx(nil, c)
}

func (r *fakeCajaRepo) FindPrincipalTx(_ *gorm.DB) (*model.Caja, error) {
	return r.FindPrincipal(context.Background())
}

func (r *fakeCajaRepo) CreateTx(_ *gorm.DB, c *model.Caja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.caja = &clone
	return nil
}

func (r *fakeCajaRepo) AjustarSaldoTx(_ *gorm.DB, cajaID uuid.UUID, delta decimal.Decimal) error {
	if r.caja == nil || r.caja.ID != cajaID {
		return errors.New("caja inexistente")
	}
	r.caja.Saldo = r.caja.Saldo.Add(delta)
	return nil
}

func (r *fakeCajaRepo) FindMovimientoByID(_ context.Context, id uuid.UUID) (*model.MovimientoCaja, error) {
	m, ok := r.movimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *fakeCajaRepo) FindMovimientoByIDTx(_ *gorm.DB, id uuid.UUID) (*model.MovimientoCaja, error) {
	return r.FindMovimientoByID(context.Background(), id)
}

func (r *fakeCajaRepo) CreateMovimientoTx(_ *gorm.DB, m *model.MovimientoCaja) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	clone := *m
	r.movimientos[m.ID] = &clone
	r.orden = append(r.orden, m.ID)
	return nil
}

func (r *fakeCajaRepo) UpdateMovimientoTx(_ *gorm.DB, m *model.MovimientoCaja) error {
	if _, ok := r.movimientos[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *m
	r.movimientos[m.ID] = &clone
	return nil
}

func (r *fakeCajaRepo) DeleteMovimientoTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.movimientos, id)
	return nil
}

func (r *fakeCajaRepo) ListMovimientos(_ context.Context, cajaID uuid.UUID, filter repository.MovimientoCajaFilter) ([]model.MovimientoCaja, error) {
	var result []model.MovimientoCaja
	for _, id := range r.orden {
		m, ok := r.movimientos[id]
		if !ok || m.CajaID != cajaID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *fakeCajaRepo) DB() *gorm.DB { return nil }

// ── VentaRepository ──────────────────────────────────────────────────────────

type fakeVentaRepo struct {
	ventas []model.Venta
	numero int
}

var _ repository.VentaRepository = (*fakeVentaRepo)(nil)

func newFakeVentaRepo() *fakeVentaRepo { return &fakeVentaRepo{} }

func (r *fakeVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	v.CreatedAt = time.Now()
	r.ventas = append(r.ventas, *v)
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			clone := r.ventas[i]
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVentaRepo) List(_ context.Context, _ repository.VentaFilter) ([]model.Venta, error) {
	return append([]model.Venta(nil), r.ventas...), nil
}

func (r *fakeVentaRepo) ListRecientes(_ context.Context, limit int) ([]model.Venta, error) {
	if len(r.ventas) > limit {
		return append([]model.Venta(nil), r.ventas[len(r.ventas)-limit:]...), nil
	}
	return append([]model.Venta(nil), r.ventas...), nil
}

func (r *fakeVentaRepo) NextNumero(_ *gorm.DB) (int, error) {
	r.numero++
	return r.numero, nil
}

func (r *fakeVentaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.ventas)), nil
}

func (r *fakeVentaRepo) DB() *gorm.DB { return nil }

// ── ProductoRepository ───────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *fakeProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clone := *p
	r.productos[p.ID] = &clone
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductoRepo) List(_ context.Context, _ repository.ProductoFilter) ([]model.Producto, error) {
	var result []model.Producto
	for _, p := range r.productos {
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakeProductoRepo) Buscar(_ context.Context, termino string, limit int) ([]model.Producto, error) {
	var result []model.Producto
	for _, p := range r.productos {
		if len(result) >= limit {
			break
		}
		if contains(p.Nombre, termino) || (p.Club != nil && contains(p.Club.Nombre, termino)) {
			result = append(result, *p)
			continue
		}
		for _, v := range p.Variantes {
			if contains(v.SKU, termino) {
				result = append(result, *p)
				break
			}
		}
	}
	return result, nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	clone := *p
	r.productos[p.ID] = &clone
	return nil
}

func (r *fakeProductoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.productos)), nil
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
