package router

import (
	"time"

	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/config"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/handler"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/middleware"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/repository"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/service"
	"github.com/FranAmbrogioItec/sistema-gestion-campeones/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	varianteRepo := repository.NewVarianteRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	inventarioSvc := service.NewInventarioService(varianteRepo, movimientoStockRepo, dispatcher)
	cajaSvc := service.NewCajaService(cajaRepo)
	ventaSvc := service.NewVentaService(ventaRepo, varianteRepo, inventarioSvc, cajaSvc, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, varianteRepo, inventarioSvc)
	configuracionSvc := service.NewConfiguracionService(catalogoRepo, productoRepo, varianteRepo, ventaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	stockH := handler.NewStockHandler(inventarioSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, ventaRepo, cfg.PDFStoragePath)
	configuracionH := handler.NewConfiguracionHandler(configuracionSvc)
	busquedaH := handler.NewBusquedaHandler(productoSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		// Usuarios — solo admin
		usuarios := api.Group("/auth/usuarios", middleware.RequireRole("admin"))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
		}

		// Catálogo
		api.GET("/productos", productosH.Listar)
		api.GET("/productos/:id", productosH.Obtener)
		api.POST("/productos", middleware.RequireRole("admin"), productosH.Crear)
		api.POST("/productos/:id/variantes", middleware.RequireRole("admin"), productosH.AgregarVariante)
		api.PUT("/variantes/:id", middleware.RequireRole("admin"), productosH.ActualizarVariante)

		// Búsqueda del mostrador
		api.GET("/buscar", busquedaH.Buscar)
		api.GET("/stock/sku/:sku", busquedaH.StockPorSKU)

		// Inventario
		api.GET("/stock", stockH.Listar)
		api.GET("/stock/movimientos", stockH.Movimientos)
		api.POST("/stock/:id/ajustar", stockH.Ajustar)

		// Caja
		caja := api.Group("/caja")
		{
			caja.GET("", cajaH.Obtener)
			caja.GET("/saldo", cajaH.Saldo)
			caja.GET("/movimientos", cajaH.Movimientos)
			caja.POST("/movimientos", cajaH.RegistrarMovimiento)
			caja.PUT("/movimientos/:id", cajaH.EditarMovimiento)
			caja.DELETE("/movimientos/:id", cajaH.EliminarMovimiento)
		}

		// Ventas
		api.POST("/ventas", ventasH.Registrar)
		api.GET("/ventas", ventasH.Listar)
		api.GET("/ventas/:id", ventasH.Detalle)
		api.GET("/ventas/:id/ticket", ventasH.Ticket)

		// Configuración
		api.GET("/clubes", configuracionH.ListarClubes)
		api.POST("/clubes", middleware.RequireRole("admin"), configuracionH.CrearClub)
		api.GET("/categorias", configuracionH.ListarCategorias)
		api.POST("/categorias", middleware.RequireRole("admin"), configuracionH.CrearCategoria)
		api.GET("/clientes", configuracionH.ListarClientes)
		api.POST("/clientes", configuracionH.CrearCliente)
		api.GET("/proveedores", configuracionH.ListarProveedores)
		api.POST("/proveedores", middleware.RequireRole("admin"), configuracionH.CrearProveedor)

		api.GET("/dashboard", configuracionH.Dashboard)
	}

	return r
}
