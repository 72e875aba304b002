package service

import (
	"context"
	"fmt"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioService es el ledger de inventario: el ÚNICO camino por el que
// Variante.Stock cambia. Cada mutación exitosa deja exactamente un
// MovimientoStock que la explica, en la misma transacción.
type InventarioService interface {
	// AjustarStock aplica una entrada o salida manual y devuelve el stock
	// resultante. Una salida con stock < cantidad falla con
	// ErrStockInsuficiente sin registrar movimiento alguno.
	AjustarStock(ctx context.Context, varianteID uuid.UUID, req dto.AjusteStockRequest, usuario string) (*dto.AjusteStockResponse, error)

	// AjustarStockTx es la primitiva compartida: opera sobre una variante ya
	// cargada dentro de la transacción del llamador y devuelve el stock nuevo.
	// La usan la venta (salidas) y la reconciliación de ediciones.
	AjustarStockTx(tx *gorm.DB, variante *model.Variante, cantidad int, tipo model.TipoMovimientoStock, motivo, usuario string) (int, error)

	// ReconciliarStockTx lleva el stock de la variante al valor pedido vía el
	// ledger: delta positivo → entrada, negativo → salida, cero → sin movimiento.
	ReconciliarStockTx(tx *gorm.DB, variante *model.Variante, nuevoStock int, usuario string) error

	// StockDisponible devuelve el stock actual, 0 si la variante no existe.
	// No hay reservas en este sistema: disponible == en mano.
	StockDisponible(ctx context.Context, varianteID uuid.UUID) int

	ListarStock(ctx context.Context, filter repository.VarianteFilter) ([]dto.StockItemResponse, error)
	ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) ([]dto.MovimientoStockResponse, error)
}

type inventarioService struct {
	variantes   repository.VarianteRepository
	movimientos repository.MovimientoStockRepository
	dispatcher  *worker.Dispatcher
}

func NewInventarioService(
	variantes repository.VarianteRepository,
	movimientos repository.MovimientoStockRepository,
	dispatcher *worker.Dispatcher,
) InventarioService {
	return &inventarioService{variantes: variantes, movimientos: movimientos, dispatcher: dispatcher}
}

const motivoAjusteManual = "Ajuste manual de stock"

func (s *inventarioService) AjustarStock(ctx context.Context, varianteID uuid.UUID, req dto.AjusteStockRequest, usuario string) (*dto.AjusteStockResponse, error) {
	motivo := req.Motivo
	if motivo == "" {
		motivo = motivoAjusteManual
	}

	var resp dto.AjusteStockResponse
	txErr := runTx(ctx, s.variantes.DB(), func(tx *gorm.DB) error {
		variante, err := s.variantes.FindByIDTx(tx, varianteID)
		if err != nil {
			return ErrVarianteNoEncontrada
		}

		anterior := variante.Stock
		nuevo, err := s.AjustarStockTx(tx, variante, req.Cantidad, req.Tipo, motivo, usuario)
		if err != nil {
			return err
		}

		resp = dto.AjusteStockResponse{
			VarianteID:    variante.ID.String(),
			SKU:           variante.SKU,
			Tipo:          string(req.Tipo),
			Cantidad:      req.Cantidad,
			StockAnterior: anterior,
			StockNuevo:    nuevo,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	if req.Tipo == model.StockSalida {
		if variante, err := s.variantes.FindByID(ctx, varianteID); err == nil {
			s.notificarStockBajo(ctx, variante, variante.Stock)
		}
	}
	return &resp, nil
}

func (s *inventarioService) AjustarStockTx(tx *gorm.DB, variante *model.Variante, cantidad int, tipo model.TipoMovimientoStock, motivo, usuario string) (int, error) {
	if cantidad <= 0 {
		return 0, ErrCantidadInvalida
	}
	if !tipo.Valido() {
		return 0, ErrTipoMovimientoInvalido
	}

	switch tipo {
	case model.StockEntrada:
		if err := s.variantes.SumarStockTx(tx, variante.ID, cantidad); err != nil {
			return 0, err
		}
		variante.Stock += cantidad
	case model.StockSalida:
		// Guarda de suficiencia a nivel de fila: si otra transacción ya
		// consumió el stock, acá falla en vez de dejarlo negativo.
		ok, err := s.variantes.DescontarStockTx(tx, variante.ID, cantidad)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("%w: %s (stock %d, pedido %d)", ErrStockInsuficiente, variante.SKU, variante.Stock, cantidad)
		}
		variante.Stock -= cantidad
	}

	// El movimiento registra el cambio efectivamente aplicado; las salidas
	// rechazadas nunca llegan acá.
	mov := &model.MovimientoStock{
		VarianteID: variante.ID,
		Tipo:       tipo,
		Cantidad:   cantidad,
		Motivo:     motivo,
		Usuario:    usuario,
	}
	if err := s.movimientos.CreateTx(tx, mov); err != nil {
		return 0, err
	}
	return variante.Stock, nil
}

func (s *inventarioService) ReconciliarStockTx(tx *gorm.DB, variante *model.Variante, nuevoStock int, usuario string) error {
	delta := nuevoStock - variante.Stock
	if delta == 0 {
		return nil
	}
	tipo := model.StockEntrada
	if delta < 0 {
		tipo = model.StockSalida
		delta = -delta
	}
	_, err := s.AjustarStockTx(tx, variante, delta, tipo, motivoAjusteManual, usuario)
	return err
}

func (s *inventarioService) StockDisponible(ctx context.Context, varianteID uuid.UUID) int {
	variante, err := s.variantes.FindByID(ctx, varianteID)
	if err != nil {
		return 0
	}
	return variante.Stock
}

func (s *inventarioService) ListarStock(ctx context.Context, filter repository.VarianteFilter) ([]dto.StockItemResponse, error) {
	variantes, err := s.variantes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(variantes))
	for _, v := range variantes {
		item := dto.StockItemResponse{
			VarianteID:  v.ID.String(),
			Talle:       v.Talle,
			Color:       v.Color,
			SKU:         v.SKU,
			Stock:       v.Stock,
			StockMinimo: v.StockMinimo,
			StockBajo:   v.Stock <= v.StockMinimo,
		}
		if v.Producto != nil {
			item.Producto = v.Producto.Nombre
			if v.Producto.Club != nil {
				item.Club = v.Producto.Club.Nombre
			}
			if v.Producto.Categoria != nil {
				item.Categoria = v.Producto.Categoria.Nombre
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter repository.MovimientoStockFilter) ([]dto.MovimientoStockResponse, error) {
	movimientos, err := s.movimientos.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoStockResponse, 0, len(movimientos))
	for _, m := range movimientos {
		item := dto.MovimientoStockResponse{
			ID:       m.ID.String(),
			Tipo:     string(m.Tipo),
			Cantidad: m.Cantidad,
			Motivo:   m.Motivo,
			Usuario:  m.Usuario,
			Fecha:    m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if m.Variante != nil {
			item.Talle = m.Variante.Talle
			item.SKU = m.Variante.SKU
			if m.Variante.Producto != nil {
				item.Producto = m.Variante.Producto.Nombre
			}
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// NotificarStockBajo encola una alerta por email cuando una salida dejó la
// variante en o debajo de su mínimo. Best effort: nunca afecta la operación.
func (s *inventarioService) notificarStockBajo(ctx context.Context, variante *model.Variante, stockNuevo int) {
	if s.dispatcher == nil || stockNuevo > variante.StockMinimo {
		return
	}
	payload := worker.AlertaStockPayload{
		VarianteID:  variante.ID.String(),
		SKU:         variante.SKU,
		Talle:       variante.Talle,
		Stock:       stockNuevo,
		StockMinimo: variante.StockMinimo,
	}
	if variante.Producto != nil {
		payload.Producto = variante.Producto.Nombre
	}
	_ = s.dispatcher.EnqueueAlertaStock(ctx, payload)
}
