package service

import (
	"context"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
)

// ConfiguracionService cubre los catálogos auxiliares (clubes, categorías,
// clientes, proveedores) y los contadores del dashboard.
type ConfiguracionService interface {
	CrearClub(ctx context.Context, req dto.ClubRequest) (*model.Club, error)
	ListarClubes(ctx context.Context) ([]model.Club, error)

	CrearCategoria(ctx context.Context, req dto.CategoriaRequest) (*model.Categoria, error)
	ListarCategorias(ctx context.Context) ([]model.Categoria, error)

	CrearCliente(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error)
	ListarClientes(ctx context.Context) ([]model.Cliente, error)

	CrearProveedor(ctx context.Context, req dto.ProveedorRequest) (*model.Proveedor, error)
	ListarProveedores(ctx context.Context) ([]model.Proveedor, error)

	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type configuracionService struct {
	catalogo  repository.CatalogoRepository
	productos repository.ProductoRepository
	variantes repository.VarianteRepository
	ventas    repository.VentaRepository
}

func NewConfiguracionService(
	catalogo repository.CatalogoRepository,
	productos repository.ProductoRepository,
	variantes repository.VarianteRepository,
	ventas repository.VentaRepository,
) ConfiguracionService {
	return &configuracionService{
		catalogo:  catalogo,
		productos: productos,
		variantes: variantes,
		ventas:    ventas,
	}
}

func (s *configuracionService) CrearClub(ctx context.Context, req dto.ClubRequest) (*model.Club, error) {
	club := &model.Club{Nombre: req.Nombre, Liga: req.Liga}
	if err := s.catalogo.CreateClub(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *configuracionService) ListarClubes(ctx context.Context) ([]model.Club, error) {
	return s.catalogo.ListClubes(ctx)
}

func (s *configuracionService) CrearCategoria(ctx context.Context, req dto.CategoriaRequest) (*model.Categoria, error) {
	categoria := &model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.catalogo.CreateCategoria(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *configuracionService) ListarCategorias(ctx context.Context) ([]model.Categoria, error) {
	return s.catalogo.ListCategorias(ctx)
}

func (s *configuracionService) CrearCliente(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error) {
	cliente := &model.Cliente{
		Nombre:    req.Nombre,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if err := s.catalogo.CreateCliente(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *configuracionService) ListarClientes(ctx context.Context) ([]model.Cliente, error) {
	return s.catalogo.ListClientes(ctx)
}

func (s *configuracionService) CrearProveedor(ctx context.Context, req dto.ProveedorRequest) (*model.Proveedor, error) {
	proveedor := &model.Proveedor{
		Nombre:   req.Nombre,
		Contacto: req.Contacto,
		Telefono: req.Telefono,
		Email:    req.Email,
	}
	if err := s.catalogo.CreateProveedor(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedor, nil
}

func (s *configuracionService) ListarProveedores(ctx context.Context) ([]model.Proveedor, error) {
	return s.catalogo.ListProveedores(ctx)
}

func (s *configuracionService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalProductos, err := s.productos.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalVentas, err := s.ventas.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalClientes, err := s.catalogo.CountClientes(ctx)
	if err != nil {
		return nil, err
	}
	bajas, err := s.variantes.List(ctx, repository.VarianteFilter{StockBajo: true})
	if err != nil {
		return nil, err
	}
	recientes, err := s.ventas.ListRecientes(ctx, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalProductos:     totalProductos,
		TotalVentas:        totalVentas,
		TotalClientes:      totalClientes,
		VariantesStockBajo: len(bajas),
		VentasRecientes:    make([]dto.VentaResponse, 0, len(recientes)),
	}
	for i := range recientes {
		v := &recientes[i]
		item := dto.VentaResponse{
			ID:        v.ID.String(),
			Numero:    v.Numero,
			Total:     v.Total,
			TipoVenta: v.TipoVenta,
			Estado:    v.Estado,
			Fecha:     v.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if v.Cliente != nil {
			nombre := v.Cliente.Nombre
			item.Cliente = &nombre
		}
		resp.VentasRecientes = append(resp.VentasRecientes, item)
	}
	return resp, nil
}
