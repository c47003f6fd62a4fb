package service

import (
	"context"
	"errors"
	"testing"

	"servidorinventario/internal/apierror"
	"servidorinventario/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportarProductosLineaMalaNoAbortaElLote(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo(catRepo)
	svc := NewSubidaMasivaService(catRepo, prodRepo)

	contenido := "Widget|10|5.00|unidades|Hardware\nGadget|3.00|unidades|Hardware\n"

	resultado, err := svc.ImportarProductos(context.Background(), contenido)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Total)
	assert.Equal(t, 1, resultado.Success)
	assert.Equal(t, 1, resultado.Errors)
	require.Len(t, resultado.Details, 2)

	assert.Equal(t, 1, resultado.Details[0].Line)
	assert.Equal(t, dto.EstadoSuccess, resultado.Details[0].Status)
	assert.Equal(t, "Widget", resultado.Details[0].Producto)
	assert.Equal(t, "Hardware", resultado.Details[0].Categoria)

	assert.Equal(t, 2, resultado.Details[1].Line)
	assert.Equal(t, dto.EstadoError, resultado.Details[1].Status)
	assert.Contains(t, resultado.Details[1].Error, "Línea 2: Formato incorrecto. Se esperan 5 campos separados por |")

	// Line 1 committed on its own: the bad line left no side effects of its own.
	assert.Len(t, prodRepo.productos, 1)
	assert.Len(t, catRepo.categorias, 1)
}

func TestImportarProductosCreaCategoriaUnaVez(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo(catRepo)
	svc := NewSubidaMasivaService(catRepo, prodRepo)

	contenido := "Martillo|10|12.00|unidades|Ferretería\nDestornillador|25|6.50|unidades|Ferretería\n"

	resultado, err := svc.ImportarProductos(context.Background(), contenido)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Success)
	assert.Zero(t, resultado.Errors)
	assert.Len(t, catRepo.categorias, 1)
	assert.Len(t, prodRepo.productos, 2)

	// Both products point at the same category row.
	ferreteria, err := catRepo.ObtenerPorNombre(context.Background(), "Ferretería")
	require.NoError(t, err)
	for _, p := range prodRepo.productos {
		assert.Equal(t, ferreteria.ID, p.CategoriaID)
	}
}

func TestImportarProductosCamposVacios(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo(catRepo)
	svc := NewSubidaMasivaService(catRepo, prodRepo)

	resultado, err := svc.ImportarProductos(context.Background(), "Mesa| |50.00|unidades|Muebles\n")
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Errors)
	assert.Contains(t, resultado.Details[0].Error, "Línea 1: Todos los campos son obligatorios")
	assert.Empty(t, prodRepo.productos)
}

func TestImportarProductosFalloDeInsercion(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo(catRepo)
	prodRepo.crearErr = errors.New("duplicate key value violates unique constraint")
	svc := NewSubidaMasivaService(catRepo, prodRepo)

	resultado, err := svc.ImportarProductos(context.Background(), "Widget|10|5.00|unidades|Hardware\n")
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Errors)
	// The raw driver error is logged, never surfaced in the ledger.
	assert.Equal(t, "Línea 1: No se pudo registrar el producto", resultado.Details[0].Error)
}

func TestImportarProductosArchivoVacio(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewSubidaMasivaService(catRepo, newStubProductoRepo(catRepo))

	_, err := svc.ImportarProductos(context.Background(), "  \n\n   \n")
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
	assert.ErrorContains(t, err, "El archivo está vacío")
}

func TestImportarProductosPlantillaSinEditarFallaEnEncabezados(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo(catRepo)
	svc := NewSubidaMasivaService(catRepo, prodRepo)

	// Header lines starting with # are data like any other line.
	contenido := "# Plantilla para subida masiva de productos\nWidget|10|5.00|unidades|Hardware\n"

	resultado, err := svc.ImportarProductos(context.Background(), contenido)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Total)
	assert.Equal(t, 1, resultado.Success)
	assert.Equal(t, 1, resultado.Errors)
	assert.Equal(t, dto.EstadoError, resultado.Details[0].Status)
}

func TestImportarCategorias(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewSubidaMasivaService(catRepo, newStubProductoRepo(catRepo))

	resultado, err := svc.ImportarCategorias(context.Background(), "Electrónicos\nMuebles\nRopa\n")
	require.NoError(t, err)

	assert.Equal(t, 3, resultado.Total)
	assert.Equal(t, 3, resultado.Success)
	assert.Zero(t, resultado.Errors)
	assert.Len(t, catRepo.categorias, 3)
}

func TestImportarCategoriasExistentesQuedanSkipped(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	svc := NewSubidaMasivaService(catRepo, newStubProductoRepo(catRepo))
	seedCategoria(catRepo, "Electrónicos")
	seedCategoria(catRepo, "Muebles")

	resultado, err := svc.ImportarCategorias(context.Background(), "Electrónicos\nMuebles\n")
	require.NoError(t, err)

	// Skipped lines count toward the total but toward neither counter.
	assert.Equal(t, 2, resultado.Total)
	assert.Zero(t, resultado.Success)
	assert.Zero(t, resultado.Errors)
	require.Len(t, resultado.Details, 2)
	for _, d := range resultado.Details {
		assert.Equal(t, dto.EstadoSkipped, d.Status)
		assert.Equal(t, "Ya existe", d.Message)
	}
	assert.Len(t, catRepo.categorias, 2)
}

func TestImportarCategoriasFalloDeInsercion(t *testing.T) {
	catRepo := newStubCategoriaRepo()
	catRepo.crearErr = errors.New("connection reset by peer")
	svc := NewSubidaMasivaService(catRepo, newStubProductoRepo(catRepo))

	resultado, err := svc.ImportarCategorias(context.Background(), "Electrónicos\n")
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Errors)
	assert.Equal(t, "Línea 1: No se pudo crear la categoría Electrónicos", resultado.Details[0].Error)
}

func TestLineasNoVacias(t *testing.T) {
	lineas := lineasNoVacias("  uno  \n\n\tdos\n   \ntres")
	assert.Equal(t, []string{"uno", "dos", "tres"}, lineas)
}
