package infra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), 1024)
	require.NoError(t, err)
	return store
}

func TestGuardarYAbrirFoto(t *testing.T) {
	store := newTestStore(t)

	foto, err := store.Guardar("retrato.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(foto.FileName, "usuario_"))
	assert.True(t, strings.HasSuffix(foto.FileName, ".png"))
	assert.Equal(t, int64(9), foto.Size)

	data, contentType, err := store.Abrir(foto.FileName)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestGuardarRechazaTipoNoImagen(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Guardar("nota.txt", "text/plain", []byte("hola"))
	assert.ErrorIs(t, err, ErrTipoNoPermitido)
}

func TestGuardarRechazaArchivoGrande(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Guardar("grande.jpg", "image/jpeg", make([]byte, 2048))
	assert.ErrorIs(t, err, ErrArchivoMuyGrande)
}

func TestNombresUnicosPorSubida(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Guardar("misma.jpg", "image/jpeg", []byte("a"))
	require.NoError(t, err)
	b, err := store.Guardar("misma.jpg", "image/jpeg", []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a.FileName, b.FileName)
}

func TestEliminarEsIdempotente(t *testing.T) {
	store := newTestStore(t)

	foto, err := store.Guardar("x.gif", "image/gif", []byte("gif"))
	require.NoError(t, err)

	require.NoError(t, store.Eliminar(foto.FileName))
	assert.False(t, store.Existe(foto.FileName))
	// Repetir la limpieza de una foto ya borrada no falla.
	require.NoError(t, store.Eliminar(foto.FileName))
}

func TestNombreConRutaEsRechazado(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Abrir("../../../etc/passwd")
	assert.ErrorIs(t, err, ErrNombreInvalido)
	assert.ErrorIs(t, store.Eliminar("a/b.jpg"), ErrNombreInvalido)
}

func TestAbrirFotoInexistente(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Abrir("usuario_1_noexiste.jpg")
	assert.ErrorIs(t, err, ErrFotoNoEncontrada)
}
