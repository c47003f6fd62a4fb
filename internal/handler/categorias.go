package handler

import (
	"net/http"

	"servidorinventario/internal/dto"
	"servidorinventario/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Listar GET /categoria
func (h *CategoriasHandler) Listar(c *gin.Context) {
	categorias, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Categorías obtenidas correctamente", categorias))
}

// Crear POST /categoria
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Categoría registrada correctamente", categoria))
}

// Actualizar PUT /categoria/:id
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	categoria, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Categoría actualizada correctamente", categoria))
}

// Eliminar DELETE /categoria/:id
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	categoria, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Categoría eliminada correctamente", categoria))
}
