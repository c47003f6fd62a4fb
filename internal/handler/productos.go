package handler

import (
	"net/http"

	"servidorinventario/internal/dto"
	"servidorinventario/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar GET /producto
func (h *ProductosHandler) Listar(c *gin.Context) {
	productos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Productos obtenidos correctamente", productos))
}

// ObtenerPorID GET /producto/:id
func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	producto, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Producto obtenido correctamente", producto))
}

// ListarPorCategoria GET /producto/categoria/:idCategoria
func (h *ProductosHandler) ListarPorCategoria(c *gin.Context) {
	idCategoria, ok := idParam(c, "idCategoria")
	if !ok {
		return
	}
	productos, err := h.svc.ListarPorCategoria(c.Request.Context(), idCategoria)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Productos obtenidos correctamente", productos))
}

// Crear POST /producto
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Producto registrado correctamente", producto))
}

// Actualizar PUT /producto/:id
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Producto actualizado correctamente", producto))
}

// Eliminar DELETE /producto/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	producto, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Producto eliminado correctamente", producto))
}
