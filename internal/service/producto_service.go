package service

import (
	"context"
	"fmt"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService maneja el catálogo: productos, variantes y la búsqueda del
// punto de venta. El alta y edición de variantes pasa por el ledger de
// inventario para que el stock nunca se asigne a mano.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter repository.ProductoFilter) ([]dto.ProductoResponse, error)

	// AgregarVariante crea la variante y, si trae stock inicial, asienta la
	// entrada correspondiente en el ledger. Con stock cero no hay movimiento.
	AgregarVariante(ctx context.Context, productoID uuid.UUID, req dto.VarianteRequest, usuario string) (*dto.VarianteResponse, error)

	// ActualizarVariante edita los campos de la variante; un stock distinto
	// al actual se reconcilia vía ledger en la misma transacción.
	ActualizarVariante(ctx context.Context, varianteID uuid.UUID, req dto.ActualizarVarianteRequest, usuario string) (*dto.VarianteResponse, error)

	// Buscar alimenta el autocompletado del mostrador: una línea por variante.
	Buscar(ctx context.Context, termino string) ([]dto.ResultadoBusqueda, error)
	StockPorSKU(ctx context.Context, sku string) (*dto.StockSKUResponse, error)
}

type productoService struct {
	productos  repository.ProductoRepository
	variantes  repository.VarianteRepository
	inventario InventarioService
}

func NewProductoService(
	productos repository.ProductoRepository,
	variantes repository.VarianteRepository,
	inventario InventarioService,
) ProductoService {
	return &productoService{productos: productos, variantes: variantes, inventario: inventario}
}

const motivoCargaInicial = "Carga inicial de stock"

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return nil, fmt.Errorf("club_id inválido: %w", err)
	}
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, fmt.Errorf("categoria_id inválido: %w", err)
	}

	producto := &model.Producto{
		Nombre:      req.Nombre,
		ClubID:      clubID,
		CategoriaID: categoriaID,
		Temporada:   req.Temporada,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Activo:      true,
	}
	if err := s.productos.Create(ctx, producto); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, producto.ID)
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	producto, err := s.productos.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}
	resp := toProductoResponse(producto)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter repository.ProductoFilter) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, toProductoResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) AgregarVariante(ctx context.Context, productoID uuid.UUID, req dto.VarianteRequest, usuario string) (*dto.VarianteResponse, error) {
	if _, err := s.productos.FindByID(ctx, productoID); err != nil {
		return nil, ErrProductoNoEncontrado
	}

	variante := &model.Variante{
		ProductoID:  productoID,
		Talle:       req.Talle,
		Color:       req.Color,
		SKU:         req.SKU,
		Precio:      req.Precio,
		StockMinimo: req.StockMinimo,
	}

	err := runTx(ctx, s.variantes.DB(), func(tx *gorm.DB) error {
		if err := s.variantes.CreateTx(tx, variante); err != nil {
			return err
		}
		if req.Stock > 0 {
			_, err := s.inventario.AjustarStockTx(tx, variante, req.Stock, model.StockEntrada, motivoCargaInicial, usuario)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toVarianteResponse(variante)
	return &resp, nil
}

func (s *productoService) ActualizarVariante(ctx context.Context, varianteID uuid.UUID, req dto.ActualizarVarianteRequest, usuario string) (*dto.VarianteResponse, error) {
	var variante *model.Variante
	err := runTx(ctx, s.variantes.DB(), func(tx *gorm.DB) error {
		var err error
		variante, err = s.variantes.FindByIDTx(tx, varianteID)
		if err != nil {
			return ErrVarianteNoEncontrada
		}

		variante.Talle = req.Talle
		variante.Color = req.Color
		variante.SKU = req.SKU
		variante.Precio = req.Precio
		variante.StockMinimo = req.StockMinimo
		if err := s.variantes.UpdateTx(tx, variante); err != nil {
			return err
		}

		// El campo Stock del request no se asigna: la diferencia contra el
		// stock actual entra al ledger como movimiento.
		return s.inventario.ReconciliarStockTx(tx, variante, req.Stock, usuario)
	})
	if err != nil {
		return nil, err
	}

	resp := toVarianteResponse(variante)
	return &resp, nil
}

func (s *productoService) Buscar(ctx context.Context, termino string) ([]dto.ResultadoBusqueda, error) {
	productos, err := s.productos.Buscar(ctx, termino, 10)
	if err != nil {
		return nil, err
	}

	resultados := make([]dto.ResultadoBusqueda, 0, len(productos))
	for i := range productos {
		p := &productos[i]
		club := ""
		if p.Club != nil {
			club = p.Club.Nombre
		}
		for _, v := range p.Variantes {
			precio := v.Precio
			if precio.IsZero() {
				precio = p.Precio
			}
			resultados = append(resultados, dto.ResultadoBusqueda{
				ID:     v.ID.String(),
				Texto:  fmt.Sprintf("%s %s - Talle %s (%s)", p.Nombre, club, v.Talle, v.SKU),
				Precio: precio,
				Stock:  v.Stock,
			})
		}
	}
	return resultados, nil
}

func (s *productoService) StockPorSKU(ctx context.Context, sku string) (*dto.StockSKUResponse, error) {
	variante, err := s.variantes.FindBySKU(ctx, sku)
	if err != nil {
		return nil, ErrVarianteNoEncontrada
	}
	resp := &dto.StockSKUResponse{
		SKU:    variante.SKU,
		Talle:  variante.Talle,
		Stock:  variante.Stock,
		Precio: variante.Precio,
	}
	if variante.Producto != nil {
		resp.Producto = variante.Producto.Nombre
		if resp.Precio.IsZero() {
			resp.Precio = variante.Producto.Precio
		}
	}
	return resp, nil
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Temporada:   p.Temporada,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Activo:      p.Activo,
		Variantes:   make([]dto.VarianteResponse, 0, len(p.Variantes)),
	}
	if p.Club != nil {
		resp.Club = p.Club.Nombre
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	for i := range p.Variantes {
		resp.Variantes = append(resp.Variantes, toVarianteResponse(&p.Variantes[i]))
	}
	return resp
}

func toVarianteResponse(v *model.Variante) dto.VarianteResponse {
	return dto.VarianteResponse{
		ID:          v.ID.String(),
		Talle:       v.Talle,
		Color:       v.Color,
		SKU:         v.SKU,
		Precio:      v.Precio,
		Stock:       v.Stock,
		StockMinimo: v.StockMinimo,
	}
}
