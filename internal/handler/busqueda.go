package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/apierror"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const stockCacheTTL = 60 * time.Second

// BusquedaHandler serves the point-of-sale search box and the SKU stock
// lookup. The SKU lookup goes through a short-lived Redis cache: stock
// changes often, so the TTL is seconds, not hours.
type BusquedaHandler struct {
	svc service.ProductoService
	rdb *redis.Client
}

func NewBusquedaHandler(svc service.ProductoService, rdb *redis.Client) *BusquedaHandler {
	return &BusquedaHandler{svc: svc, rdb: rdb}
}

// Buscar godoc
// @Summary      Busqueda libre para el mostrador
// @Tags         busqueda
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Nombre, SKU o club"
// @Success      200  {array} dto.ResultadoBusqueda
// @Router       /api/buscar [get]
func (h *BusquedaHandler) Buscar(c *gin.Context) {
	termino := strings.TrimSpace(c.Query("q"))
	if len(termino) < 2 {
		c.JSON(http.StatusOK, []dto.ResultadoBusqueda{})
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), termino)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StockPorSKU godoc
// @Summary      Stock y precio por SKU
// @Tags         busqueda
// @Produce      json
// @Security     BearerAuth
// @Param        sku path string true "SKU de la variante"
// @Success      200  {object} dto.StockSKUResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/stock/sku/{sku} [get]
func (h *BusquedaHandler) StockPorSKU(c *gin.Context) {
	sku := c.Param("sku")
	ctx := c.Request.Context()
	cacheKey := "stock:sku:" + sku

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.StockSKUResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.StockPorSKU(ctx, sku)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("variante no encontrada"))
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, stockCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
