package service

import (
	"context"
	"testing"

	"servidorinventario/internal/apierror"
	"servidorinventario/internal/dto"
	"servidorinventario/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategoria(repo *stubCategoriaRepo, nombre string) *model.Categoria {
	c := &model.Categoria{Nombre: nombre}
	repo.insertar(c)
	return c
}

func TestCrearCategoria(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))

	creada, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Electrónicos"})
	require.NoError(t, err)
	assert.NotZero(t, creada.ID)
	assert.Equal(t, "Electrónicos", creada.Nombre)
}

func TestCrearCategoriaNombreVacio(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "   "})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
	assert.Empty(t, catRepo.categorias)
}

func TestCrearCategoriaDuplicada(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))
	seedCategoria(catRepo, "Muebles")

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Muebles"})
	require.Error(t, err)
	assert.ErrorContains(t, err, `Ya existe una categoría con el nombre "Muebles"`)
	assert.Len(t, catRepo.categorias, 1)
}

func TestListarCategoriasOrdenadasPorNombre(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))
	seedCategoria(catRepo, "Muebles")
	seedCategoria(catRepo, "Bebidas")

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "Bebidas", lista[0].Nombre)
	assert.Equal(t, "Muebles", lista[1].Nombre)
}

func TestActualizarCategoria(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))
	c := seedCategoria(catRepo, "Ropa")

	actualizada, err := svc.Actualizar(context.Background(), c.ID, dto.ActualizarCategoriaRequest{Nombre: "Indumentaria"})
	require.NoError(t, err)
	assert.Equal(t, c.ID, actualizada.ID)
	assert.Equal(t, "Indumentaria", actualizada.Nombre)
}

func TestActualizarCategoriaNoExiste(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))

	_, err := svc.Actualizar(context.Background(), 999, dto.ActualizarCategoriaRequest{Nombre: "Nada"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNoEncontrado, apierror.KindOf(err))
}

func TestEliminarCategoriaSinProductos(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))
	c := seedCategoria(catRepo, "Hogar")

	eliminada, err := svc.Eliminar(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hogar", eliminada.Nombre)
	assert.Empty(t, catRepo.categorias)
}

func TestEliminarCategoriaConProductos(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo(catRepo)
	svc := NewCategoriaService(catRepo, prodRepo)
	c := seedCategoria(catRepo, "Bebidas")

	for _, desc := range []string{"Agua 500ml", "Gaseosa 1.5L", "Jugo 1L"} {
		prodRepo.insertar(&model.Producto{
			Descripcion: desc, Cantidad: "10", Precio: "5.00", UnidadMedida: "unidades", CategoriaID: c.ID,
		})
	}

	_, err := svc.Eliminar(context.Background(), c.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindIntegridad, apierror.KindOf(err))
	assert.ErrorContains(t, err, "tiene 3 producto(s) asociado(s)")
	assert.Len(t, catRepo.categorias, 1)
}

func TestEliminarCategoriaNoExiste(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewCategoriaService(catRepo, newStubProductoRepo(catRepo))

	_, err := svc.Eliminar(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNoEncontrado, apierror.KindOf(err))
}
