package handler

import (
	"net/http"
	"strconv"

	"servidorinventario/internal/apierror"
	"servidorinventario/internal/dto"
	"servidorinventario/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if binding or validation fails,
// in which case the caller must return without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("Todos los campos son requeridos"))
		return false
	}
	return true
}

// idParam parses the :id path parameter. Returns false after writing the
// error response when the value is not a valid integer.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fallo("ID inválido"))
		return 0, false
	}
	return id, true
}

// responderError maps the error taxonomy to HTTP status codes. Unclassified
// errors are logged with the request id and answered with a generic message
// so driver details never reach the client.
func responderError(c *gin.Context, err error) {
	switch apierror.KindOf(err) {
	case apierror.KindValidacion:
		c.JSON(http.StatusBadRequest, dto.Fallo(apierror.Mensaje(err)))
	case apierror.KindNoEncontrado:
		c.JSON(http.StatusNotFound, dto.Fallo(apierror.Mensaje(err)))
	case apierror.KindIntegridad:
		c.JSON(http.StatusConflict, dto.Fallo(apierror.Mensaje(err)))
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("error interno")
		c.JSON(http.StatusInternalServerError, dto.Fallo(apierror.MensajeInterno))
	}
}
