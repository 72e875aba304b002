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

type ventaTestEnv struct {
	svc        VentaService
	variantes  *fakeVarianteRepo
	movStock   *fakeMovStockRepo
	cajaRepo   *fakeCajaRepo
	ventaRepo  *fakeVentaRepo
	inventario InventarioService
}

func newVentaTestEnv() *ventaTestEnv {
	variantes := newFakeVarianteRepo()
	movStock := newFakeMovStockRepo()
	cajaRepo := newFakeCajaRepo()
	ventaRepo := newFakeVentaRepo()

	inventario := NewInventarioService(variantes, movStock, nil)
	caja := NewCajaService(cajaRepo)

	return &ventaTestEnv{
		svc:        NewVentaService(ventaRepo, variantes, inventario, caja, nil),
		variantes:  variantes,
		movStock:   movStock,
		cajaRepo:   cajaRepo,
		ventaRepo:  ventaRepo,
		inventario: inventario,
	}
}

func TestRegistrarVenta(t *testing.T) {
	env := newVentaTestEnv()
	v1 := nuevaVarianteTest(env.variantes, "BOC-TIT-M", 10)
	v2 := env.variantes.add(&model.Variante{
		ProductoID:  uuid.New(),
		Talle:       "L",
		SKU:         "RIV-SUP-L",
		Precio:      decimal.NewFromInt(52000),
		Stock:       8,
		StockMinimo: 5,
	})

	resp, err := env.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.LineaVentaRequest{
			{VarianteID: v1.ID.String(), Cantidad: 2},
			{VarianteID: v2.ID.String(), Cantidad: 1},
		},
	}, "fran")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Numero)
	assert.Equal(t, "fisica", resp.TipoVenta)
	assert.Equal(t, "completada", resp.Estado)
	assert.Len(t, resp.Items, 2)
	assert.Empty(t, resp.Rechazos)
	// 2×45000 + 1×52000
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(142000)), "total = %s", resp.Total)

	// El stock bajó por el ledger: queda un movimiento de salida por línea,
	// con el motivo de la venta.
	assert.Equal(t, 8, env.inventario.StockDisponible(context.Background(), v1.ID))
	assert.Equal(t, 7, env.inventario.StockDisponible(context.Background(), v2.ID))
	movs := env.movStock.porVariante(v1.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.StockSalida, movs[0].Tipo)
	assert.Equal(t, 2, movs[0].Cantidad)
	assert.Equal(t, "Venta #1", movs[0].Motivo)
	assert.Equal(t, "fran", movs[0].Usuario)

	// El cobro quedó asentado en caja, ligado a la venta.
	require.NotNil(t, env.cajaRepo.caja)
	assert.True(t, env.cajaRepo.caja.Saldo.Equal(decimal.NewFromInt(142000)))
	require.Len(t, env.cajaRepo.movimientos, 1)
	for _, m := range env.cajaRepo.movimientos {
		assert.Equal(t, model.CajaIngreso, m.Tipo)
		assert.Equal(t, "Venta #1", m.Motivo)
		require.NotNil(t, m.VentaID)
		assert.Equal(t, resp.ID, m.VentaID.String())
	}
}

func TestRegistrarVentaNumeracion(t *testing.T) {
	env := newVentaTestEnv()
	v := nuevaVarianteTest(env.variantes, "ARG-TIT-M", 20)

	for i := 1; i <= 3; i++ {
		resp, err := env.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
			Items: []dto.LineaVentaRequest{{VarianteID: v.ID.String(), Cantidad: 1}},
		}, "fran")
		require.NoError(t, err)
		assert.Equal(t, i, resp.Numero)
	}
}

func TestRegistrarVentaRechazaLineas(t *testing.T) {
	env := newVentaTestEnv()
	ok := nuevaVarianteTest(env.variantes, "BOC-TIT-M", 10)
	agotada := nuevaVarianteTest(env.variantes, "BOC-TIT-S", 1)

	resp, err := env.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.LineaVentaRequest{
			{VarianteID: "no-es-un-uuid", Cantidad: 1},
			{VarianteID: ok.ID.String(), Cantidad: 0},
			{VarianteID: uuid.New().String(), Cantidad: 1},
			{VarianteID: agotada.ID.String(), Cantidad: 3},
			{VarianteID: ok.ID.String(), Cantidad: 2},
		},
	}, "fran")
	require.NoError(t, err)

	require.Len(t, resp.Rechazos, 4)
	assert.Equal(t, "variante inválida", resp.Rechazos[0].Motivo)
	assert.Equal(t, "cantidad inválida", resp.Rechazos[1].Motivo)
	assert.Equal(t, "variante inexistente", resp.Rechazos[2].Motivo)
	assert.Equal(t, "stock insuficiente (disponible 1)", resp.Rechazos[3].Motivo)

	// La única línea aceptada siguió su curso normal.
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, 8, env.inventario.StockDisponible(context.Background(), ok.ID))
	// La variante agotada no se tocó.
	assert.Equal(t, 1, env.inventario.StockDisponible(context.Background(), agotada.ID))
	assert.Empty(t, env.movStock.porVariante(agotada.ID))
}

func TestRegistrarVentaVacia(t *testing.T) {
	env := newVentaTestEnv()
	agotada := nuevaVarianteTest(env.variantes, "BOC-TIT-S", 0)

	_, err := env.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.LineaVentaRequest{
			{VarianteID: agotada.ID.String(), Cantidad: 1},
			{VarianteID: uuid.New().String(), Cantidad: 2},
		},
	}, "fran")
	require.ErrorIs(t, err, ErrVentaVacia)

	// No quedó nada: ni venta, ni movimientos, ni caja tocada.
	assert.Empty(t, env.ventaRepo.ventas)
	assert.Empty(t, env.movStock.movimientos)
	assert.Empty(t, env.cajaRepo.movimientos)
}

func TestRegistrarVentaPrecioDelProducto(t *testing.T) {
	env := newVentaTestEnv()
	producto := &model.Producto{ID: uuid.New(), Nombre: "Camiseta Racing Titular", Precio: decimal.NewFromInt(38000)}
	v := env.variantes.add(&model.Variante{
		ProductoID:  producto.ID,
		Talle:       "L",
		SKU:         "RAC-TIT-L",
		Precio:      decimal.Zero, // sin precio propio: hereda el del producto
		Stock:       5,
		StockMinimo: 2,
		Producto:    producto,
	})

	resp, err := env.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		Items: []dto.LineaVentaRequest{{VarianteID: v.ID.String(), Cantidad: 2}},
	}, "fran")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(38000)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(76000)))
}

func TestRegistrarVentaClienteInvalido(t *testing.T) {
	env := newVentaTestEnv()
	v := nuevaVarianteTest(env.variantes, "BOC-TIT-M", 10)

	malo := "zzz"
	_, err := env.svc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		ClienteID: &malo,
		Items:     []dto.LineaVentaRequest{{VarianteID: v.ID.String(), Cantidad: 1}},
	}, "fran")
	require.Error(t, err)
	assert.Empty(t, env.ventaRepo.ventas)
}

func TestDetalleVentaInexistente(t *testing.T) {
	env := newVentaTestEnv()
	_, err := env.svc.Detalle(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVentaNoEncontrada)
}
