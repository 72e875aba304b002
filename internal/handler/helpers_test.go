package handler

import (
	"testing"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidacionVentaAdmiteCantidadCero(t *testing.T) {
	// Una línea con cantidad 0 tiene que llegar al servicio, que la rechaza
	// línea por línea; la validación del request no debe frenarla con 422.
	req := dto.RegistrarVentaRequest{
		Items: []dto.LineaVentaRequest{
			{VarianteID: uuid.New().String(), Cantidad: 0},
			{VarianteID: uuid.New().String(), Cantidad: 2},
		},
	}
	assert.NoError(t, validate.Struct(req))
}

func TestValidacionVentaRechazaRequestInvalido(t *testing.T) {
	// Sin items no hay nada que procesar: eso sí se corta en la validación.
	require.Error(t, validate.Struct(dto.RegistrarVentaRequest{}))

	// VarianteID sigue teniendo que ser un uuid bien formado.
	assert.Error(t, validate.Struct(dto.RegistrarVentaRequest{
		Items: []dto.LineaVentaRequest{{VarianteID: "no-es-uuid", Cantidad: 1}},
	}))
}

func TestValidacionDecimal(t *testing.T) {
	// El CustomTypeFunc registra decimal.Decimal como numérico: gt=0 funciona.
	assert.Error(t, validate.Struct(dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: decimal.Zero, Motivo: "x",
	}))
	assert.NoError(t, validate.Struct(dto.MovimientoCajaRequest{
		Tipo: model.CajaIngreso, Monto: decimal.NewFromInt(100), Motivo: "x",
	}))
}
