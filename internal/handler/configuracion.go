package handler

import (
	"net/http"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/apierror"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfiguracionHandler expone los catálogos auxiliares: clubes, categorías,
// clientes y proveedores.
type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

func (h *ConfiguracionHandler) CrearClub(c *gin.Context) {
	var req dto.ClubRequest
	if !bindAndValidate(c, &req) {
		return
	}
	club, err := h.svc.CrearClub(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, club)
}

func (h *ConfiguracionHandler) ListarClubes(c *gin.Context) {
	clubes, err := h.svc.ListarClubes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubes)
}

func (h *ConfiguracionHandler) CrearCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

func (h *ConfiguracionHandler) ListarCategorias(c *gin.Context) {
	categorias, err := h.svc.ListarCategorias(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *ConfiguracionHandler) CrearCliente(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.CrearCliente(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ConfiguracionHandler) ListarClientes(c *gin.Context) {
	clientes, err := h.svc.ListarClientes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ConfiguracionHandler) CrearProveedor(c *gin.Context) {
	var req dto.ProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.CrearProveedor(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, proveedor)
}

func (h *ConfiguracionHandler) ListarProveedores(c *gin.Context) {
	proveedores, err := h.svc.ListarProveedores(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedores)
}

// Dashboard godoc
// @Summary      Contadores de la pantalla inicial
// @Tags         configuracion
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *ConfiguracionHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
