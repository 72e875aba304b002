package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService coordina la transacción de venta sobre los dos ledgers: por
// cada item acepta o rechaza la línea, descuenta stock vía el ledger de
// inventario y acredita el total cobrado en caja. Todo dentro de una única
// transacción: o queda la venta completa con sus movimientos, o no queda nada.
type VentaService interface {
	// RegistrarVenta procesa los items de a uno. Las líneas con variante
	// inexistente, cantidad inválida o stock insuficiente se rechazan y la
	// venta sigue con el resto; si ninguna línea sobrevive devuelve
	// ErrVentaVacia y no persiste nada.
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest, usuario string) (*dto.VentaResponse, error)
	Detalle(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter repository.VentaFilter) ([]dto.VentaResponse, error)
}

type ventaService struct {
	ventas     repository.VentaRepository
	variantes  repository.VarianteRepository
	inventario InventarioService
	caja       CajaService
	dispatcher *worker.Dispatcher
}

func NewVentaService(
	ventas repository.VentaRepository,
	variantes repository.VarianteRepository,
	inventario InventarioService,
	caja CajaService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		ventas:     ventas,
		variantes:  variantes,
		inventario: inventario,
		caja:       caja,
		dispatcher: dispatcher,
	}
}

// lineaAceptada acumula lo necesario para armar el item y, tras el commit,
// decidir si la variante quedó bajo mínimo.
type lineaAceptada struct {
	variante *model.Variante
	item     model.VentaItem
}

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest, usuario string) (*dto.VentaResponse, error) {
	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("cliente_id inválido: %w", err)
		}
		clienteID = &id
	}
	tipoVenta := req.TipoVenta
	if tipoVenta == "" {
		tipoVenta = "fisica"
	}

	var (
		venta     *model.Venta
		aceptadas []lineaAceptada
		rechazos  []dto.LineaRechazada
	)

	err := runTx(ctx, s.ventas.DB(), func(tx *gorm.DB) error {
		aceptadas = aceptadas[:0]
		rechazos = rechazos[:0]

		numero, err := s.ventas.NextNumero(tx)
		if err != nil {
			return err
		}
		motivoVenta := fmt.Sprintf("Venta #%d", numero)

		total := decimal.Zero
		for _, linea := range req.Items {
			varID, err := uuid.Parse(linea.VarianteID)
			if err != nil {
				rechazos = append(rechazos, dto.LineaRechazada{VarianteID: linea.VarianteID, Motivo: "variante inválida"})
				continue
			}
			if linea.Cantidad <= 0 {
				rechazos = append(rechazos, dto.LineaRechazada{VarianteID: linea.VarianteID, Motivo: "cantidad inválida"})
				continue
			}
			variante, err := s.variantes.FindByIDTx(tx, varID)
			if err != nil {
				rechazos = append(rechazos, dto.LineaRechazada{VarianteID: linea.VarianteID, Motivo: "variante inexistente"})
				continue
			}

			if _, err := s.inventario.AjustarStockTx(tx, variante, linea.Cantidad, model.StockSalida, motivoVenta, usuario); err != nil {
				if errors.Is(err, ErrStockInsuficiente) {
					rechazos = append(rechazos, dto.LineaRechazada{
						VarianteID: linea.VarianteID,
						Motivo:     fmt.Sprintf("stock insuficiente (disponible %d)", variante.Stock),
					})
					continue
				}
				return err
			}

			// Foto del precio vigente: la variante puede tener precio propio,
			// si no hereda el del producto.
			precio := variante.Precio
			if precio.IsZero() && variante.Producto != nil {
				precio = variante.Producto.Precio
			}
			subtotal := precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
			total = total.Add(subtotal)

			aceptadas = append(aceptadas, lineaAceptada{
				variante: variante,
				item: model.VentaItem{
					VarianteID:     variante.ID,
					Cantidad:       linea.Cantidad,
					PrecioUnitario: precio,
					Subtotal:       subtotal,
				},
			})
		}

		if len(aceptadas) == 0 {
			return ErrVentaVacia
		}

		venta = &model.Venta{
			Numero:    numero,
			ClienteID: clienteID,
			Total:     total,
			TipoVenta: tipoVenta,
			Estado:    "completada",
		}
		for _, a := range aceptadas {
			venta.Items = append(venta.Items, a.item)
		}
		if err := s.ventas.CreateTx(tx, venta); err != nil {
			return err
		}

		_, err = s.caja.RegistrarIngresoTx(tx, total, motivoVenta, &venta.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.encolarAlertas(ctx, aceptadas)

	resp := s.toVentaResponse(venta)
	resp.Rechazos = rechazos
	return resp, nil
}

// encolarAlertas corre después del commit: una venta nunca falla porque Redis
// esté caído.
func (s *ventaService) encolarAlertas(ctx context.Context, aceptadas []lineaAceptada) {
	if s.dispatcher == nil {
		return
	}
	for _, a := range aceptadas {
		v := a.variante
		if v.Stock > v.StockMinimo {
			continue
		}
		payload := worker.AlertaStockPayload{
			VarianteID:  v.ID.String(),
			SKU:         v.SKU,
			Talle:       v.Talle,
			Stock:       v.Stock,
			StockMinimo: v.StockMinimo,
		}
		if v.Producto != nil {
			payload.Producto = v.Producto.Nombre
		}
		_ = s.dispatcher.EnqueueAlertaStock(ctx, payload)
	}
}

func (s *ventaService) Detalle(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVentaNoEncontrada
	}
	return s.toVentaResponse(venta), nil
}

func (s *ventaService) Listar(ctx context.Context, filter repository.VentaFilter) ([]dto.VentaResponse, error) {
	ventas, err := s.ventas.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		resp = append(resp, *s.toVentaResponse(&ventas[i]))
	}
	return resp, nil
}

func (s *ventaService) toVentaResponse(v *model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:        v.ID.String(),
		Numero:    v.Numero,
		Total:     v.Total,
		TipoVenta: v.TipoVenta,
		Estado:    v.Estado,
		Items:     make([]dto.ItemVentaResponse, 0, len(v.Items)),
		Fecha:     v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if v.Cliente != nil {
		nombre := v.Cliente.Nombre
		resp.Cliente = &nombre
	}
	for _, item := range v.Items {
		out := dto.ItemVentaResponse{
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}
		if item.Variante != nil {
			out.Talle = item.Variante.Talle
			out.SKU = item.Variante.SKU
			if item.Variante.Producto != nil {
				out.Producto = item.Variante.Producto.Nombre
			}
		}
		resp.Items = append(resp.Items, out)
	}
	return resp
}
