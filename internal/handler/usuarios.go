package handler

import (
	"net/http"

	"servidorinventario/internal/dto"
	"servidorinventario/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar GET /usuario
func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Usuarios obtenidos correctamente", usuarios))
}

// Crear POST /usuario
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Usuario registrado correctamente", usuario))
}

// Actualizar PUT /usuario/:id
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Usuario actualizado correctamente", usuario))
}

// Eliminar DELETE /usuario/:id
func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	usuario, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Usuario eliminado correctamente", usuario))
}
