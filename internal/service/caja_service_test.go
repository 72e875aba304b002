package service

import (
	"context"
	"testing"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestObtenerCajaCreaLazy(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	resp, err := svc.ObtenerCaja(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Caja Principal", resp.Nombre)
	assert.True(t, resp.Saldo.IsZero())
	assert.Empty(t, resp.Movimientos)

	// Segunda llamada: misma caja, no otra.
	resp2, err := svc.ObtenerCaja(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.ID, resp2.ID)
}

func TestRegistrarMovimientoActualizaSaldo(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	_, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("1000"), Motivo: "fondo inicial",
	}, "fran")
	require.NoError(t, err)

	_, err = svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("300.50"), Motivo: "compra bolsas",
	}, "fran")
	require.NoError(t, err)

	saldo, err := svc.Saldo(context.Background())
	require.NoError(t, err)
	assert.True(t, saldo.Saldo.Equal(d("699.50")), "saldo = %s", saldo.Saldo)
}

func TestRegistrarEgresoSinSaldo(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	_, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("100"), Motivo: "fondo",
	}, "fran")
	require.NoError(t, err)

	_, err = svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("100.01"), Motivo: "retiro",
	}, "fran")
	require.ErrorIs(t, err, ErrSaldoInsuficiente)

	saldo, _ := svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("100")))

	// El egreso por el total exacto sí pasa.
	_, err = svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("100"), Motivo: "retiro total",
	}, "fran")
	require.NoError(t, err)
	saldo, _ = svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.IsZero())
}

func TestEditarMovimientoReviertePrimero(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	mov, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("500"), Motivo: "fondo",
	}, "fran")
	require.NoError(t, err)

	// 500 → el ingreso pasa a 200: saldo queda 200.
	id := uuid.MustParse(mov.ID)
	_, err = svc.EditarMovimiento(context.Background(), id, dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("200"), Motivo: "fondo corregido",
	})
	require.NoError(t, err)
	saldo, _ := svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("200")))

	// Cambio de dirección: el ingreso de 200 pasa a egreso de 150.
	// Saldo revertido = 0, con 0 no entra un egreso de 150.
	_, err = svc.EditarMovimiento(context.Background(), id, dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("150"), Motivo: "en realidad fue un gasto",
	})
	require.ErrorIs(t, err, ErrSaldoInsuficiente)

	// El fallo no tocó nada: ni saldo ni el movimiento.
	saldo, _ = svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("200")))
	guardado, findErr := repo.FindMovimientoByID(context.Background(), id)
	require.NoError(t, findErr)
	assert.Equal(t, model.CajaIngreso, guardado.Tipo)
	assert.True(t, guardado.Monto.Equal(d("200")))
	assert.Equal(t, "fondo corregido", guardado.Motivo)
}

func TestEditarMovimientoIdaYVuelta(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	_, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("500"), Motivo: "fondo",
	}, "fran")
	require.NoError(t, err)

	mov, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("100"), Motivo: "propina",
	}, "fran")
	require.NoError(t, err)
	saldo, _ := svc.Saldo(context.Background())
	require.True(t, saldo.Saldo.Equal(d("600")))

	// Cambio de dirección que sí entra: el ingreso de 100 pasa a egreso de 30.
	// Saldo revertido 500, el egreso de 30 es válido: 500 - 30 = 470.
	id := uuid.MustParse(mov.ID)
	resp, err := svc.EditarMovimiento(context.Background(), id, dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("30"), Motivo: "compra hielo",
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.CajaEgreso), resp.Tipo)
	saldo, _ = svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("470")), "saldo = %s", saldo.Saldo)

	// Volver a la versión original restaura el saldo exacto.
	_, err = svc.EditarMovimiento(context.Background(), id, dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("100"), Motivo: "propina",
	})
	require.NoError(t, err)
	saldo, _ = svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("600")), "saldo = %s", saldo.Saldo)
}

func TestEditarEgresoContraSaldoRevertido(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	_, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("1000"), Motivo: "fondo",
	}, "fran")
	require.NoError(t, err)

	egreso, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("900"), Motivo: "pago proveedor",
	}, "fran")
	require.NoError(t, err)
	// Saldo actual 100. El chequeo de la edición corre contra el saldo
	// revertido (1000), no contra 100: subir el egreso a 950 es válido.
	resp, err := svc.EditarMovimiento(context.Background(), uuid.MustParse(egreso.ID), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("950"), Motivo: "pago proveedor",
	})
	require.NoError(t, err)
	assert.True(t, resp.Monto.Equal(d("950")))

	saldo, _ := svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("50")))

	// Subirlo por encima del revertido sí falla.
	_, err = svc.EditarMovimiento(context.Background(), uuid.MustParse(egreso.ID), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("1000.01"), Motivo: "pago proveedor",
	})
	require.ErrorIs(t, err, ErrSaldoInsuficiente)
}

func TestEliminarMovimientoRevierteSaldo(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	ingreso, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("500"), Motivo: "fondo",
	}, "fran")
	require.NoError(t, err)

	egreso, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("200"), Motivo: "gasto",
	}, "fran")
	require.NoError(t, err)

	// Borrar el egreso devuelve la plata.
	require.NoError(t, svc.EliminarMovimiento(context.Background(), uuid.MustParse(egreso.ID)))
	saldo, _ := svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("500")))

	// Borrar el ingreso puede dejar saldo negativo: se permite.
	require.NoError(t, svc.EliminarMovimiento(context.Background(), uuid.MustParse(ingreso.ID)))
	saldo, _ = svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.IsZero())
}

func TestEliminarIngresoPuedeDejarSaldoNegativo(t *testing.T) {
	repo := newFakeCajaRepo()
	svc := NewCajaService(repo)

	ingreso, err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("500"), Motivo: "fondo",
	}, "fran")
	require.NoError(t, err)
	_, err = svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo: model.CajaEgreso, Monto: d("300"), Motivo: "gasto",
	}, "fran")
	require.NoError(t, err)

	require.NoError(t, svc.EliminarMovimiento(context.Background(), uuid.MustParse(ingreso.ID)))
	saldo, _ := svc.Saldo(context.Background())
	assert.True(t, saldo.Saldo.Equal(d("-300")), "saldo = %s", saldo.Saldo)
}

func TestMovimientoInexistente(t *testing.T) {
	svc := NewCajaService(newFakeCajaRepo())
	ctx := context.Background()

	// La caja tiene que existir para que el error sea por el movimiento.
	_, err := svc.ObtenerCaja(ctx)
	require.NoError(t, err)

	_, err = svc.EditarMovimiento(ctx, uuid.New(), dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: d("10"), Motivo: "x",
	})
	assert.ErrorIs(t, err, ErrMovimientoNoEncontrado)

	err = svc.EliminarMovimiento(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrMovimientoNoEncontrado)
}

func TestValidacionesMovimiento(t *testing.T) {
	svc := NewCajaService(newFakeCajaRepo())
	ctx := context.Background()

	_, err := svc.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{Tipo: "deposito", Monto: d("10"), Motivo: "x"}, "fran")
	assert.ErrorIs(t, err, ErrTipoMovimientoInvalido)

	_, err = svc.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{Tipo: model.CajaIngreso, Monto: d("0"), Motivo: "x"}, "fran")
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = svc.RegistrarMovimiento(ctx, dto.MovimientoCajaRequest{Tipo: model.CajaIngreso, Monto: d("-5"), Motivo: "x"}, "fran")
	assert.ErrorIs(t, err, ErrMontoInvalido)
}
