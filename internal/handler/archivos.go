package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"servidorinventario/internal/dto"
	"servidorinventario/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ArchivosHandler struct{ store *infra.FileStore }

func NewArchivosHandler(store *infra.FileStore) *ArchivosHandler {
	return &ArchivosHandler{store: store}
}

// Subir POST /upload
func (h *ArchivosHandler) Subir(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("Archivo no encontrado"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("No se pudo leer el archivo"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	foto, err := h.store.Guardar(fileHeader.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, infra.ErrTipoNoPermitido):
			c.JSON(http.StatusBadRequest, dto.Fallo(
				"Tipo de archivo no permitido: "+contentType+". Solo se permiten imágenes (JPG, PNG, GIF, WebP)"))
		case errors.Is(err, infra.ErrArchivoMuyGrande):
			c.JSON(http.StatusBadRequest, dto.Fallo("El archivo es demasiado grande (máximo 3MB)"))
		default:
			log.Error().Err(err).Str("archivo", fileHeader.Filename).Msg("fallo al guardar foto")
			c.JSON(http.StatusInternalServerError, dto.Fallo("No se pudo guardar el archivo"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK("Foto subida correctamente", dto.FotoResponse{
		OriginalName: fileHeader.Filename,
		FileName:     foto.FileName,
		Size:         foto.Size,
		Type:         foto.Type,
		UploadedAt:   foto.UploadedAt.Format(time.RFC3339),
		URL:          "/uploads/usuarios/" + foto.FileName,
	}))
}

// Servir GET /uploads/usuarios/:filename
func (h *ArchivosHandler) Servir(c *gin.Context) {
	data, contentType, err := h.store.Abrir(c.Param("filename"))
	if err != nil {
		if errors.Is(err, infra.ErrFotoNoEncontrada) || errors.Is(err, infra.ErrNombreInvalido) {
			c.JSON(http.StatusNotFound, dto.Fallo("Foto no encontrada"))
			return
		}
		log.Error().Err(err).Str("archivo", c.Param("filename")).Msg("fallo al leer foto")
		c.JSON(http.StatusInternalServerError, dto.Fallo("No se pudo leer el archivo"))
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, data)
}

// Eliminar DELETE /uploads/usuarios/:filename
func (h *ArchivosHandler) Eliminar(c *gin.Context) {
	filename := c.Param("filename")
	if !h.store.Existe(filename) {
		c.JSON(http.StatusNotFound, dto.Fallo("Foto no encontrada"))
		return
	}
	if err := h.store.Eliminar(filename); err != nil {
		log.Error().Err(err).Str("archivo", filename).Msg("fallo al eliminar foto")
		c.JSON(http.StatusInternalServerError, dto.Fallo("No se pudo eliminar el archivo"))
		return
	}
	c.JSON(http.StatusOK, dto.OK("Foto eliminada correctamente", nil))
}
