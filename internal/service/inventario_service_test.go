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

func nuevaVarianteTest(repo *fakeVarianteRepo, sku string, stock int) *model.Variante {
	return repo.add(&model.Variante{
		ProductoID:  uuid.New(),
		Talle:       "M",
		SKU:         sku,
		Precio:      decimal.NewFromInt(45000),
		Stock:       stock,
		StockMinimo: 5,
	})
}

func TestAjustarStockEntrada(t *testing.T) {
	variantes := newFakeVarianteRepo()
	movimientos := newFakeMovStockRepo()
	svc := NewInventarioService(variantes, movimientos, nil)

	v := nuevaVarianteTest(variantes, "CAMP-RIV-M", 10)

	resp, err := svc.AjustarStock(context.Background(), v.ID, dto.AjusteStockRequest{
		Tipo:     model.StockEntrada,
		Cantidad: 15,
		Motivo:   "reposicion proveedor",
	}, "fran")
	require.NoError(t, err)

	assert.Equal(t, 10, resp.StockAnterior)
	assert.Equal(t, 25, resp.StockNuevo)

	guardada, _ := variantes.FindByID(context.Background(), v.ID)
	assert.Equal(t, 25, guardada.Stock)

	movs := movimientos.porVariante(v.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.StockEntrada, movs[0].Tipo)
	assert.Equal(t, 15, movs[0].Cantidad)
	assert.Equal(t, "reposicion proveedor", movs[0].Motivo)
	assert.Equal(t, "fran", movs[0].Usuario)
}

func TestAjustarStockSalidaInsuficiente(t *testing.T) {
	variantes := newFakeVarianteRepo()
	movimientos := newFakeMovStockRepo()
	svc := NewInventarioService(variantes, movimientos, nil)

	v := nuevaVarianteTest(variantes, "CAMP-BOC-L", 3)

	_, err := svc.AjustarStock(context.Background(), v.ID, dto.AjusteStockRequest{
		Tipo:     model.StockSalida,
		Cantidad: 5,
	}, "fran")
	require.ErrorIs(t, err, ErrStockInsuficiente)

	// Nada cambió: ni el stock ni el historial.
	guardada, _ := variantes.FindByID(context.Background(), v.ID)
	assert.Equal(t, 3, guardada.Stock)
	assert.Empty(t, movimientos.porVariante(v.ID))
}

func TestAjustarStockSalidaExacta(t *testing.T) {
	variantes := newFakeVarianteRepo()
	movimientos := newFakeMovStockRepo()
	svc := NewInventarioService(variantes, movimientos, nil)

	v := nuevaVarianteTest(variantes, "CAMP-RAC-S", 5)

	resp, err := svc.AjustarStock(context.Background(), v.ID, dto.AjusteStockRequest{
		Tipo:     model.StockSalida,
		Cantidad: 5,
	}, "fran")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockNuevo)
	require.Len(t, movimientos.porVariante(v.ID), 1)
}

func TestAjustarStockValidaciones(t *testing.T) {
	variantes := newFakeVarianteRepo()
	movimientos := newFakeMovStockRepo()
	svc := NewInventarioService(variantes, movimientos, nil)

	v := nuevaVarianteTest(variantes, "CAMP-IND-M", 10)

	_, err := svc.AjustarStock(context.Background(), v.ID, dto.AjusteStockRequest{Tipo: model.StockEntrada, Cantidad: 0}, "fran")
	assert.ErrorIs(t, err, ErrCantidadInvalida)

	_, err = svc.AjustarStock(context.Background(), v.ID, dto.AjusteStockRequest{Tipo: model.StockEntrada, Cantidad: -4}, "fran")
	assert.ErrorIs(t, err, ErrCantidadInvalida)

	_, err = svc.AjustarStock(context.Background(), v.ID, dto.AjusteStockRequest{Tipo: "transferencia", Cantidad: 1}, "fran")
	assert.ErrorIs(t, err, ErrTipoMovimientoInvalido)

	_, err = svc.AjustarStock(context.Background(), uuid.New(), dto.AjusteStockRequest{Tipo: model.StockEntrada, Cantidad: 1}, "fran")
	assert.ErrorIs(t, err, ErrVarianteNoEncontrada)

	assert.Empty(t, movimientos.movimientos)
}

func TestReconciliarStock(t *testing.T) {
	variantes := newFakeVarianteRepo()
	movimientos := newFakeMovStockRepo()
	svc := NewInventarioService(variantes, movimientos, nil)

	v := nuevaVarianteTest(variantes, "CAMP-SLO-XL", 10)

	// Delta positivo → entrada por la diferencia.
	variante, _ := variantes.FindByID(context.Background(), v.ID)
	require.NoError(t, svc.ReconciliarStockTx(nil, variante, 14, "fran"))
	guardada, _ := variantes.FindByID(context.Background(), v.ID)
	assert.Equal(t, 14, guardada.Stock)

	// Delta negativo → salida por la diferencia.
	variante, _ = variantes.FindByID(context.Background(), v.ID)
	require.NoError(t, svc.ReconciliarStockTx(nil, variante, 6, "fran"))
	guardada, _ = variantes.FindByID(context.Background(), v.ID)
	assert.Equal(t, 6, guardada.Stock)

	// Delta cero → sin movimiento nuevo.
	variante, _ = variantes.FindByID(context.Background(), v.ID)
	require.NoError(t, svc.ReconciliarStockTx(nil, variante, 6, "fran"))

	movs := movimientos.porVariante(v.ID)
	require.Len(t, movs, 2)
	assert.Equal(t, model.StockEntrada, movs[0].Tipo)
	assert.Equal(t, 4, movs[0].Cantidad)
	assert.Equal(t, "Ajuste manual de stock", movs[0].Motivo)
	assert.Equal(t, model.StockSalida, movs[1].Tipo)
	assert.Equal(t, 8, movs[1].Cantidad)
}

func TestStockDisponible(t *testing.T) {
	variantes := newFakeVarianteRepo()
	svc := NewInventarioService(variantes, newFakeMovStockRepo(), nil)

	v := nuevaVarianteTest(variantes, "CAMP-HUR-M", 7)

	assert.Equal(t, 7, svc.StockDisponible(context.Background(), v.ID))
	assert.Equal(t, 0, svc.StockDisponible(context.Background(), uuid.New()))
}
