package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/apierror"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/middleware"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/model"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Obtener godoc
// @Summary      Caja con sus movimientos recientes
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.CajaResponse
// @Router       /api/caja [get]
func (h *CajaHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.ObtenerCaja(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Saldo godoc
// @Summary      Saldo actual de la caja
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.SaldoResponse
// @Router       /api/caja/saldo [get]
func (h *CajaHandler) Saldo(c *gin.Context) {
	resp, err := h.svc.Saldo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarMovimiento godoc
// @Summary      Registrar ingreso o egreso manual
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MovimientoCajaRequest true "Movimiento"
// @Success      201  {object} dto.MovimientoCajaResponse
// @Failure      409  {object} apierror.APIError "saldo insuficiente"
// @Router       /api/caja/movimientos [post]
func (h *CajaHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), req, claims.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EditarMovimiento godoc
// @Summary      Editar un movimiento de caja
// @Description  Revierte el efecto original y aplica el nuevo; si el egreso no entra en el saldo revertido nada cambia.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del movimiento"
// @Param        body body dto.MovimientoCajaRequest true "Nuevos datos"
// @Success      200  {object} dto.MovimientoCajaResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError "saldo insuficiente"
// @Router       /api/caja/movimientos/{id} [put]
func (h *CajaHandler) EditarMovimiento(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	var req dto.MovimientoCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.EditarMovimiento(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarMovimiento godoc
// @Summary      Eliminar un movimiento de caja
// @Description  Borra el movimiento y revierte su efecto sobre el saldo.
// @Tags         caja
// @Security     BearerAuth
// @Param        id path string true "UUID del movimiento"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /api/caja/movimientos/{id} [delete]
func (h *CajaHandler) EliminarMovimiento(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	if err := h.svc.EliminarMovimiento(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Movimientos godoc
// @Summary      Historial de movimientos de caja
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string false "Fecha desde (RFC3339)"
// @Param        hasta query string false "Fecha hasta (RFC3339)"
// @Param        tipo  query string false "ingreso | egreso"
// @Param        limit query int    false "Maximo de resultados"
// @Success      200  {array} dto.MovimientoCajaResponse
// @Router       /api/caja/movimientos [get]
func (h *CajaHandler) Movimientos(c *gin.Context) {
	var filter repository.MovimientoCajaFilter
	if v := c.Query("desde"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.FechaDesde = &t
		}
	}
	if v := c.Query("hasta"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.FechaHasta = &t
		}
	}
	filter.Tipo = model.TipoMovimientoCaja(c.Query("tipo"))
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}

	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
