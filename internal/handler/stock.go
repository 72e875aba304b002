package handler

import (
	"net/http"
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

type StockHandler struct{ svc service.InventarioService }

func NewStockHandler(svc service.InventarioService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Ajustar godoc
// @Summary      Entrada o salida manual de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la variante"
// @Param        body body dto.AjusteStockRequest true "Ajuste"
// @Success      200  {object} dto.AjusteStockResponse
// @Failure      409  {object} apierror.APIError "stock insuficiente"
// @Router       /api/stock/{id}/ajustar [post]
func (h *StockHandler) Ajustar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	var req dto.AjusteStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.AjustarStock(c.Request.Context(), id, req, claims.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Vista de stock por variante
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        stock_bajo   query bool   false "Solo variantes bajo minimo"
// @Param        club_id      query string false "UUID del club"
// @Param        categoria_id query string false "UUID de la categoria"
// @Success      200  {array} dto.StockItemResponse
// @Router       /api/stock [get]
func (h *StockHandler) Listar(c *gin.Context) {
	var filter repository.VarianteFilter
	filter.StockBajo = c.Query("stock_bajo") == "true"
	if v := c.Query("club_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.ClubID = &id
		}
	}
	if v := c.Query("categoria_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CategoriaID = &id
		}
	}

	resp, err := h.svc.ListarStock(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimientos godoc
// @Summary      Historial de movimientos de stock
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        desde       query string false "Fecha desde (RFC3339)"
// @Param        hasta       query string false "Fecha hasta (RFC3339)"
// @Param        tipo        query string false "entrada | salida"
// @Param        producto_id query string false "UUID del producto"
// @Success      200  {array} dto.MovimientoStockResponse
// @Router       /api/stock/movimientos [get]
func (h *StockHandler) Movimientos(c *gin.Context) {
	var filter repository.MovimientoStockFilter
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
	filter.Tipo = model.TipoMovimientoStock(c.Query("tipo"))
	if v := c.Query("producto_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.ProductoID = &id
		}
	}

	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
