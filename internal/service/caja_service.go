package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CajaService administra la caja única del negocio y su ledger de movimientos.
// A diferencia del ledger de stock, los movimientos de caja son editables y
// borrables: cada mutación recalcula el saldo para que siempre valga
// saldo == suma de efectos de los movimientos vivos.
type CajaService interface {
	// ObtenerCaja devuelve la caja con sus movimientos recientes, creándola la
	// primera vez que alguien la pide.
	ObtenerCaja(ctx context.Context) (*dto.CajaResponse, error)
	Saldo(ctx context.Context) (*dto.SaldoResponse, error)

	// RegistrarMovimiento aplica un ingreso o egreso manual. Un egreso mayor al
	// saldo disponible falla con ErrSaldoInsuficiente.
	RegistrarMovimiento(ctx context.Context, req dto.MovimientoCajaRequest, usuario string) (*dto.MovimientoCajaResponse, error)

	// EditarMovimiento reemplaza tipo, monto y motivo de un movimiento
	// existente revirtiendo primero su efecto original. Si el nuevo egreso no
	// entra en el saldo revertido, nada cambia: ni el movimiento ni el saldo.
	EditarMovimiento(ctx context.Context, id uuid.UUID, req dto.MovimientoCajaRequest) (*dto.MovimientoCajaResponse, error)

	// EliminarMovimiento borra el movimiento y revierte su efecto sobre el
	// saldo. Borrar un ingreso puede dejar el saldo negativo; se permite porque
	// la eliminación corrige un registro erróneo, no representa plata saliendo.
	EliminarMovimiento(ctx context.Context, id uuid.UUID) error

	ListarMovimientos(ctx context.Context, filter repository.MovimientoCajaFilter) ([]dto.MovimientoCajaResponse, error)

	// RegistrarIngresoTx acredita un ingreso dentro de la transacción del
	// llamador. Lo usa la venta para asentar su cobro junto con el stock.
	RegistrarIngresoTx(tx *gorm.DB, monto decimal.Decimal, motivo string, ventaID *uuid.UUID) (*model.MovimientoCaja, error)
}

type cajaService struct {
	repo repository.CajaRepository
}

func NewCajaService(repo repository.CajaRepository) CajaService {
	return &cajaService{repo: repo}
}

const nombreCajaPrincipal = "Caja Principal"

// obtenerOCrearTx resuelve la caja dentro de una transacción, con lock de fila
// cuando ya existe. La creación lazy usa saldo cero.
func (s *cajaService) obtenerOCrearTx(tx *gorm.DB) (*model.Caja, error) {
	caja, err := s.repo.FindPrincipalTx(tx)
	if err == nil {
		return caja, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	caja = &model.Caja{Nombre: nombreCajaPrincipal, Saldo: decimal.Zero}
	if err := s.repo.CreateTx(tx, caja); err != nil {
		return nil, err
	}
	return caja, nil
}

func (s *cajaService) ObtenerCaja(ctx context.Context) (*dto.CajaResponse, error) {
	var caja *model.Caja
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var txErr error
		caja, txErr = s.obtenerOCrearTx(tx)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	movimientos, err := s.repo.ListMovimientos(ctx, caja.ID, repository.MovimientoCajaFilter{Limit: 10})
	if err != nil {
		return nil, err
	}

	resp := &dto.CajaResponse{
		ID:          caja.ID.String(),
		Nombre:      caja.Nombre,
		Saldo:       caja.Saldo,
		Movimientos: make([]dto.MovimientoCajaResponse, 0, len(movimientos)),
	}
	for _, m := range movimientos {
		resp.Movimientos = append(resp.Movimientos, toMovimientoCajaResponse(&m))
	}
	return resp, nil
}

func (s *cajaService) Saldo(ctx context.Context) (*dto.SaldoResponse, error) {
	var caja *model.Caja
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var txErr error
		caja, txErr = s.obtenerOCrearTx(tx)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return &dto.SaldoResponse{CajaID: caja.ID.String(), Saldo: caja.Saldo}, nil
}

func (s *cajaService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoCajaRequest, usuario string) (*dto.MovimientoCajaResponse, error) {
	if !req.Tipo.Valido() {
		return nil, ErrTipoMovimientoInvalido
	}
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, ErrMontoInvalido
	}

	var mov *model.MovimientoCaja
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		caja, err := s.obtenerOCrearTx(tx)
		if err != nil {
			return err
		}
		if req.Tipo == model.CajaEgreso && caja.Saldo.LessThan(req.Monto) {
			return fmt.Errorf("%w: saldo %s, egreso %s", ErrSaldoInsuficiente, caja.Saldo, req.Monto)
		}

		mov = &model.MovimientoCaja{
			CajaID:  caja.ID,
			Tipo:    req.Tipo,
			Monto:   req.Monto,
			Motivo:  req.Motivo,
			Usuario: usuario,
		}
		if err := s.repo.CreateMovimientoTx(tx, mov); err != nil {
			return err
		}
		return s.repo.AjustarSaldoTx(tx, caja.ID, req.Tipo.Efecto(req.Monto))
	})
	if err != nil {
		return nil, err
	}

	resp := toMovimientoCajaResponse(mov)
	return &resp, nil
}

func (s *cajaService) EditarMovimiento(ctx context.Context, id uuid.UUID, req dto.MovimientoCajaRequest) (*dto.MovimientoCajaResponse, error) {
	if !req.Tipo.Valido() {
		return nil, ErrTipoMovimientoInvalido
	}
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, ErrMontoInvalido
	}

	var mov *model.MovimientoCaja
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		mov, err = s.repo.FindMovimientoByIDTx(tx, id)
		if err != nil {
			return ErrMovimientoNoEncontrado
		}

		caja, err := s.repo.FindPrincipalTx(tx)
		if err != nil {
			return ErrCajaNoEncontrada
		}

		// Saldo como si el movimiento nunca hubiera existido. El chequeo de
		// suficiencia del egreso nuevo corre contra este valor.
		revertido := caja.Saldo.Sub(mov.Tipo.Efecto(mov.Monto))
		if req.Tipo == model.CajaEgreso && revertido.LessThan(req.Monto) {
			return fmt.Errorf("%w: saldo revertido %s, egreso %s", ErrSaldoInsuficiente, revertido, req.Monto)
		}

		nuevoSaldo := revertido.Add(req.Tipo.Efecto(req.Monto))
		delta := nuevoSaldo.Sub(caja.Saldo)

		mov.Tipo = req.Tipo
		mov.Monto = req.Monto
		mov.Motivo = req.Motivo
		if err := s.repo.UpdateMovimientoTx(tx, mov); err != nil {
			return err
		}
		return s.repo.AjustarSaldoTx(tx, caja.ID, delta)
	})
	if err != nil {
		return nil, err
	}

	resp := toMovimientoCajaResponse(mov)
	return &resp, nil
}

func (s *cajaService) EliminarMovimiento(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		mov, err := s.repo.FindMovimientoByIDTx(tx, id)
		if err != nil {
			return ErrMovimientoNoEncontrado
		}
		caja, err := s.repo.FindPrincipalTx(tx)
		if err != nil {
			return ErrCajaNoEncontrada
		}
		if err := s.repo.DeleteMovimientoTx(tx, mov.ID); err != nil {
			return err
		}
		// Reverso incondicional del efecto original.
		return s.repo.AjustarSaldoTx(tx, caja.ID, mov.Tipo.Efecto(mov.Monto).Neg())
	})
}

func (s *cajaService) ListarMovimientos(ctx context.Context, filter repository.MovimientoCajaFilter) ([]dto.MovimientoCajaResponse, error) {
	caja, err := s.repo.FindPrincipal(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.MovimientoCajaResponse{}, nil
		}
		return nil, err
	}

	movimientos, err := s.repo.ListMovimientos(ctx, caja.ID, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoCajaResponse, 0, len(movimientos))
	for _, m := range movimientos {
		resp = append(resp, toMovimientoCajaResponse(&m))
	}
	return resp, nil
}

func (s *cajaService) RegistrarIngresoTx(tx *gorm.DB, monto decimal.Decimal, motivo string, ventaID *uuid.UUID) (*model.MovimientoCaja, error) {
	caja, err := s.obtenerOCrearTx(tx)
	if err != nil {
		return nil, err
	}
	mov := &model.MovimientoCaja{
		CajaID:  caja.ID,
		Tipo:    model.CajaIngreso,
		Monto:   monto,
		Motivo:  motivo,
		VentaID: ventaID,
	}
	if err := s.repo.CreateMovimientoTx(tx, mov); err != nil {
		return nil, err
	}
	if err := s.repo.AjustarSaldoTx(tx, caja.ID, monto); err != nil {
		return nil, err
	}
	return mov, nil
}

func toMovimientoCajaResponse(m *model.MovimientoCaja) dto.MovimientoCajaResponse {
	resp := dto.MovimientoCajaResponse{
		ID:     m.ID.String(),
		Tipo:   string(m.Tipo),
		Monto:  m.Monto,
		Motivo: m.Motivo,
		Fecha:  m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if m.VentaID != nil {
		id := m.VentaID.String()
		resp.VentaID = &id
	}
	return resp
}
