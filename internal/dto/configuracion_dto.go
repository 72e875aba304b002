package dto

type ClubRequest struct {
	Nombre string  `json:"nombre" validate:"required"`
	Liga   *string `json:"liga"`
}

type CategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

type ClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Email     *string `json:"email"  validate:"omitempty,email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ProveedorRequest struct {
	Nombre   string  `json:"nombre" validate:"required"`
	Contacto *string `json:"contacto"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// DashboardResponse son los contadores de la pantalla inicial.
type DashboardResponse struct {
	TotalProductos     int64           `json:"total_productos"`
	TotalVentas        int64           `json:"total_ventas"`
	TotalClientes      int64           `json:"total_clientes"`
	VariantesStockBajo int             `json:"variantes_stock_bajo"`
	VentasRecientes    []VentaResponse `json:"ventas_recientes"`
}
