package router

import (
	"time"

	"servidorinventario/internal/config"
	"servidorinventario/internal/handler"
	"servidorinventario/internal/infra"
	"servidorinventario/internal/middleware"
	"servidorinventario/internal/repository"
	"servidorinventario/internal/service"
	"servidorinventario/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, fotos *infra.FileStore) *gin.Engine {
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
	r.Use(middleware.BodyLimit(cfg.MaxUploadBytes))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, dispatcher)
	subidaMasivaSvc := service.NewSubidaMasivaService(categoriaRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	subidaMasivaH := handler.NewSubidaMasivaHandler(subidaMasivaSvc)
	archivosH := handler.NewArchivosHandler(fotos)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	categoria := r.Group("/categoria")
	{
		categoria.GET("", categoriasH.Listar)
		categoria.POST("", categoriasH.Crear)
		categoria.PUT("/:id", categoriasH.Actualizar)
		categoria.DELETE("/:id", categoriasH.Eliminar)
	}

	producto := r.Group("/producto")
	{
		producto.GET("", productosH.Listar)
		producto.GET("/:id", productosH.ObtenerPorID)
		producto.GET("/categoria/:idCategoria", productosH.ListarPorCategoria)
		producto.POST("", productosH.Crear)
		producto.PUT("/:id", productosH.Actualizar)
		producto.DELETE("/:id", productosH.Eliminar)
	}

	usuario := r.Group("/usuario")
	{
		usuario.GET("", usuariosH.Listar)
		usuario.POST("", usuariosH.Crear)
		usuario.PUT("/:id", usuariosH.Actualizar)
		usuario.DELETE("/:id", usuariosH.Eliminar)
	}

	subida := r.Group("/subidamasiva")
	{
		subida.POST("/productos", subidaMasivaH.ImportarProductos)
		subida.POST("/categorias", subidaMasivaH.ImportarCategorias)
	}

	r.GET("/descargar/plantilla/productos", subidaMasivaH.DescargarPlantillaProductos)
	r.GET("/descargar/plantilla/categorias", subidaMasivaH.DescargarPlantillaCategorias)

	r.POST("/upload", archivosH.Subir)
	uploads := r.Group("/uploads/usuarios")
	{
		uploads.GET("/:filename", archivosH.Servir)
		uploads.DELETE("/:filename", archivosH.Eliminar)
	}

	return r
}
