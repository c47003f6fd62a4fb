package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"servidorinventario/internal/dto"
	"servidorinventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// tiposArchivoPermitidos are the accepted MIME types for uploaded import
// files. A file with another type is still accepted if its name ends in
// .csv or .txt, since browsers report CSVs inconsistently.
var tiposArchivoPermitidos = map[string]bool{
	"text/plain":      true,
	"text/csv":        true,
	"application/csv": true,
}

type SubidaMasivaHandler struct{ svc service.SubidaMasivaService }

func NewSubidaMasivaHandler(svc service.SubidaMasivaService) *SubidaMasivaHandler {
	return &SubidaMasivaHandler{svc: svc}
}

// leerArchivo extracts and validates the "file" part of the multipart form.
// On any failure it writes the 400 response and returns ok=false.
func leerArchivo(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("Archivo no encontrado"))
		return "", false
	}
	if !archivoPermitido(fileHeader) {
		c.JSON(http.StatusBadRequest, dto.Fallo("Solo se permiten archivos CSV o TXT"))
		return "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("No se pudo leer el archivo"))
		return "", false
	}
	defer f.Close()

	contenido, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("No se pudo leer el archivo"))
		return "", false
	}
	return string(contenido), true
}

func archivoPermitido(fh *multipart.FileHeader) bool {
	if tiposArchivoPermitidos[fh.Header.Get("Content-Type")] {
		return true
	}
	nombre := strings.ToLower(fh.Filename)
	return strings.HasSuffix(nombre, ".csv") || strings.HasSuffix(nombre, ".txt")
}

// ImportarProductos POST /subidamasiva/productos
func (h *SubidaMasivaHandler) ImportarProductos(c *gin.Context) {
	contenido, ok := leerArchivo(c)
	if !ok {
		return
	}

	resultado, err := h.svc.ImportarProductos(c.Request.Context(), contenido)
	if err != nil {
		responderError(c, err)
		return
	}

	log.Info().
		Int("total", resultado.Total).
		Int("success", resultado.Success).
		Int("errors", resultado.Errors).
		Msg("subida masiva de productos completada")

	mensaje := fmt.Sprintf("Procesamiento completado: %d productos insertados, %d errores",
		resultado.Success, resultado.Errors)
	c.JSON(http.StatusOK, dto.OK(mensaje, resultado))
}

// ImportarCategorias POST /subidamasiva/categorias
func (h *SubidaMasivaHandler) ImportarCategorias(c *gin.Context) {
	contenido, ok := leerArchivo(c)
	if !ok {
		return
	}

	resultado, err := h.svc.ImportarCategorias(c.Request.Context(), contenido)
	if err != nil {
		responderError(c, err)
		return
	}

	log.Info().
		Int("total", resultado.Total).
		Int("success", resultado.Success).
		Int("errors", resultado.Errors).
		Msg("subida masiva de categorías completada")

	mensaje := fmt.Sprintf("Procesamiento completado: %d categorías insertadas, %d errores",
		resultado.Success, resultado.Errors)
	c.JSON(http.StatusOK, dto.OK(mensaje, resultado))
}

const plantillaProductos = `# Plantilla para subida masiva de productos
# Formato: descripcion|cantidad|precio|unidadMedida|nombreCategoria
# Ejemplo:
iPhone 15 Pro|50|1299.99|unidades|Electrónicos
MacBook Air M3|20|1499.99|unidades|Computadoras
Escritorio de oficina|10|299.99|unidades|Muebles
Silla ergonómica|25|199.99|unidades|Muebles`

const plantillaCategorias = `# Plantilla para subida masiva de categorías
# Una categoría por línea
# Ejemplo:
Electrónicos
Computadoras
Muebles
Ropa
Hogar
Deportes`

// DescargarPlantillaProductos GET /descargar/plantilla/productos
func (h *SubidaMasivaHandler) DescargarPlantillaProductos(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=plantilla_productos.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(plantillaProductos))
}

// DescargarPlantillaCategorias GET /descargar/plantilla/categorias
func (h *SubidaMasivaHandler) DescargarPlantillaCategorias(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=plantilla_categorias.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(plantillaCategorias))
}
