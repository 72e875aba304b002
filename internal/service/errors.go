package service

import "errors"

// Errores tipados que el núcleo expone a la capa de presentación.
// Los handlers los traducen a códigos HTTP con errors.Is.
var (
	ErrVarianteNoEncontrada   = errors.New("variante no encontrada")
	ErrProductoNoEncontrado   = errors.New("producto no encontrado")
	ErrStockInsuficiente      = errors.New("stock insuficiente")
	ErrSaldoInsuficiente      = errors.New("no hay suficiente saldo en caja")
	ErrVentaVacia             = errors.New("ningún item de la venta pudo procesarse")
	ErrVentaNoEncontrada      = errors.New("venta no encontrada")
	ErrCajaNoEncontrada       = errors.New("caja no encontrada")
	ErrMovimientoNoEncontrado = errors.New("movimiento no encontrado")
	ErrCantidadInvalida       = errors.New("la cantidad debe ser mayor a cero")
	ErrMontoInvalido          = errors.New("el monto debe ser mayor a cero")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento inválido")
)
