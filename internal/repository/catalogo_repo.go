package repository

import (
	"context"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoRepository agrupa las entidades de configuración: clubes,
// categorías, clientes y proveedores. CRUD sin lógica propia.
type CatalogoRepository interface {
	CreateClub(ctx context.Context, c *model.Club) error
	ListClubes(ctx context.Context) ([]model.Club, error)

	CreateCategoria(ctx context.Context, c *model.Categoria) error
	ListCategorias(ctx context.Context) ([]model.Categoria, error)

	CreateCliente(ctx context.Context, c *model.Cliente) error
	FindClienteByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ListClientes(ctx context.Context) ([]model.Cliente, error)
	CountClientes(ctx context.Context) (int64, error)

	CreateProveedor(ctx context.Context, p *model.Proveedor) error
	ListProveedores(ctx context.Context) ([]model.Proveedor, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CreateClub(ctx context.Context, c *model.Club) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogoRepo) ListClubes(ctx context.Context) ([]model.Club, error) {
	var clubes []model.Club
	err := r.db.WithContext(ctx).Order("nombre").Find(&clubes).Error
	return clubes, err
}

func (r *catalogoRepo) CreateCategoria(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogoRepo) ListCategorias(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre").Find(&categorias).Error
	return categorias, err
}

func (r *catalogoRepo) CreateCliente(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogoRepo) FindClienteByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *catalogoRepo) ListClientes(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre").Find(&clientes).Error
	return clientes, err
}

func (r *catalogoRepo) CountClientes(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&total).Error
	return total, err
}

func (r *catalogoRepo) CreateProveedor(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogoRepo) ListProveedores(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Order("nombre").Find(&proveedores).Error
	return proveedores, err
}
