package handler

import (
	"net/http"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/apierror"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/middleware"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProductoRequest true "Datos del producto"
// @Success      201  {object} dto.ProductoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener godoc
// @Summary      Detalle de producto con variantes
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto"
// @Success      200  {object} dto.ProductoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/productos/{id} [get]
func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar productos con filtros
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        club_id      query string false "UUID del club"
// @Param        categoria_id query string false "UUID de la categoria"
// @Param        temporada    query string false "Temporada"
// @Param        talle        query string false "Talle"
// @Success      200  {array} dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter repository.ProductoFilter
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
	filter.Temporada = c.Query("temporada")
	filter.Talle = c.Query("talle")

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarVariante godoc
// @Summary      Agregar variante a un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del producto"
// @Param        body body dto.VarianteRequest true "Datos de la variante"
// @Success      201  {object} dto.VarianteResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/productos/{id}/variantes [post]
func (h *ProductosHandler) AgregarVariante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	var req dto.VarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.AgregarVariante(c.Request.Context(), id, req, claims.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarVariante godoc
// @Summary      Editar variante
// @Description  Un stock distinto al actual se reconcilia via ledger de inventario.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la variante"
// @Param        body body dto.ActualizarVarianteRequest true "Datos de la variante"
// @Success      200  {object} dto.VarianteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/variantes/{id} [put]
func (h *ProductosHandler) ActualizarVariante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	var req dto.ActualizarVarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.ActualizarVariante(c.Request.Context(), id, req, claims.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
