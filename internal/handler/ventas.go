package handler

import (
	"net/http"
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/apierror"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/dto"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/infra"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/middleware"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc            service.VentaService
	ventaRepo      repository.VentaRepository
	pdfStoragePath string
}

func NewVentasHandler(svc service.VentaService, ventaRepo repository.VentaRepository, pdfStoragePath string) *VentasHandler {
	return &VentasHandler{svc: svc, ventaRepo: ventaRepo, pdfStoragePath: pdfStoragePath}
}

// Registrar godoc
// @Summary      Registrar una venta
// @Description  Descuenta stock y acredita el cobro en caja en una unica transaccion. Las lineas sin stock se rechazan sin abortar el resto.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Items de la venta"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError "ninguna linea procesable"
// @Router       /api/ventas [post]
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.RegistrarVenta(c.Request.Context(), req, claims.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Detalle godoc
// @Summary      Detalle de una venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200  {object} dto.VentaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/ventas/{id} [get]
func (h *VentasHandler) Detalle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	resp, err := h.svc.Detalle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        desde      query string false "Fecha desde (RFC3339)"
// @Param        hasta      query string false "Fecha hasta (RFC3339)"
// @Param        cliente_id query string false "UUID del cliente"
// @Param        tipo_venta query string false "fisica | online"
// @Success      200  {array} dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter repository.VentaFilter
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
	if v := c.Query("cliente_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.ClienteID = &id
		}
	}
	filter.TipoVenta = c.Query("tipo_venta")

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ticket godoc
// @Summary      Descargar ticket PDF de una venta
// @Tags         ventas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200
// @Failure      404  {object} apierror.APIError
// @Router       /api/ventas/{id}/ticket [get]
func (h *VentasHandler) Ticket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return
	}
	venta, err := h.ventaRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("venta no encontrada"))
		return
	}

	path, err := infra.GenerateTicketPDF(venta, h.pdfStoragePath)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.FileAttachment(path, "ticket.pdf")
}
