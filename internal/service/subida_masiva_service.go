package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"servidorinventario/internal/apierror"
	"servidorinventario/internal/dto"
	"servidorinventario/internal/model"
	"servidorinventario/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// camposPorLinea is the field count of one product line:
// descripcion|cantidad|precio|unidadMedida|nombreCategoria
const camposPorLinea = 5

// SubidaMasivaService is the bulk import engine. Both modes share one
// skeleton: split into non-empty trimmed lines, process strictly in file
// order, record one ledger entry per line.
//
// There is deliberately NO file-wide transaction. Each line's statements
// commit on their own, so a bad line (or a crash mid-file) never undoes the
// lines already imported — the per-line ledger only means something if
// completed lines persist independently of later failures.
type SubidaMasivaService interface {
	ImportarProductos(ctx context.Context, contenido string) (*dto.ResultadoImportacion, error)
	ImportarCategorias(ctx context.Context, contenido string) (*dto.ResultadoImportacion, error)
}

type subidaMasivaService struct {
	categoriaRepo repository.CategoriaRepository
	productoRepo  repository.ProductoRepository
}

func NewSubidaMasivaService(categoriaRepo repository.CategoriaRepository, productoRepo repository.ProductoRepository) SubidaMasivaService {
	return &subidaMasivaService{categoriaRepo: categoriaRepo, productoRepo: productoRepo}
}

// lineasNoVacias trims every line and drops the empty ones. Line numbers in
// the ledger refer to this filtered sequence, starting at 1. Note that `#`
// lines are NOT treated as comments: a template file uploaded unmodified
// will error on each of its header lines.
func lineasNoVacias(contenido string) []string {
	var lineas []string
	for _, linea := range strings.Split(contenido, "\n") {
		if linea = strings.TrimSpace(linea); linea != "" {
			lineas = append(lineas, linea)
		}
	}
	return lineas
}

// ImportarProductos loads `|`-delimited product lines. A failing line is
// recorded and skipped; it never aborts the batch.
func (s *subidaMasivaService) ImportarProductos(ctx context.Context, contenido string) (*dto.ResultadoImportacion, error) {
	lineas := lineasNoVacias(contenido)
	if len(lineas) == 0 {
		return nil, apierror.Validacion("El archivo está vacío")
	}

	resultado := &dto.ResultadoImportacion{Details: make([]dto.DetalleImportacion, 0, len(lineas))}

	for i, linea := range lineas {
		numero := i + 1
		resultado.Total++

		descripcion, cantidad, precio, unidadMedida, nombreCategoria, err := parsearLineaProducto(numero, linea)
		if err == nil {
			err = s.insertarProducto(ctx, numero, descripcion, cantidad, precio, unidadMedida, nombreCategoria)
		}
		if err != nil {
			resultado.Errors++
			resultado.Details = append(resultado.Details, dto.DetalleImportacion{
				Line:   numero,
				Status: dto.EstadoError,
				Error:  err.Error(),
			})
			log.Warn().Int("linea", numero).Err(err).Msg("subida masiva: línea de producto rechazada")
			continue
		}

		resultado.Success++
		resultado.Details = append(resultado.Details, dto.DetalleImportacion{
			Line:      numero,
			Status:    dto.EstadoSuccess,
			Producto:  descripcion,
			Categoria: nombreCategoria,
		})
	}

	return resultado, nil
}

func parsearLineaProducto(numero int, linea string) (descripcion, cantidad, precio, unidadMedida, nombreCategoria string, err error) {
	partes := strings.Split(linea, "|")
	if len(partes) != camposPorLinea {
		return "", "", "", "", "", fmt.Errorf("Línea %d: Formato incorrecto. Se esperan 5 campos separados por |", numero)
	}
	for i := range partes {
		partes[i] = strings.TrimSpace(partes[i])
		if partes[i] == "" {
			return "", "", "", "", "", fmt.Errorf("Línea %d: Todos los campos son obligatorios", numero)
		}
	}
	return partes[0], partes[1], partes[2], partes[3], partes[4], nil
}

// insertarProducto resolves (or creates) the category and inserts the
// product. Statements run outside any transaction on purpose: the line is
// the unit of failure, not the file.
func (s *subidaMasivaService) insertarProducto(ctx context.Context, numero int, descripcion, cantidad, precio, unidadMedida, nombreCategoria string) error {
	idCategoria, err := s.resolverCategoria(ctx, numero, nombreCategoria)
	if err != nil {
		return err
	}

	p := model.Producto{
		Descripcion:  descripcion,
		Cantidad:     cantidad,
		Precio:       precio,
		UnidadMedida: unidadMedida,
		CategoriaID:  idCategoria,
	}
	if err := s.productoRepo.Crear(ctx, &p); err != nil {
		log.Error().Int("linea", numero).Err(err).Msg("subida masiva: fallo al insertar producto")
		return fmt.Errorf("Línea %d: No se pudo registrar el producto", numero)
	}
	return nil
}

// resolverCategoria returns the id for a category name, creating the row if
// it does not exist yet. After creating, the id is re-read by name instead
// of trusting the insert's returned id: the read-back is what later lines
// (and concurrent imports) will see.
func (s *subidaMasivaService) resolverCategoria(ctx context.Context, numero int, nombre string) (int64, error) {
	categoria, err := s.categoriaRepo.ObtenerPorNombre(ctx, nombre)
	if err == nil {
		return categoria.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Int("linea", numero).Err(err).Msg("subida masiva: fallo al buscar categoría")
		return 0, fmt.Errorf("Línea %d: No se pudo crear la categoría %s", numero, nombre)
	}

	if err := s.categoriaRepo.Crear(ctx, &model.Categoria{Nombre: nombre}); err != nil {
		log.Error().Int("linea", numero).Err(err).Msg("subida masiva: fallo al crear categoría")
		return 0, fmt.Errorf("Línea %d: No se pudo crear la categoría %s", numero, nombre)
	}

	creada, err := s.categoriaRepo.ObtenerPorNombre(ctx, nombre)
	if err != nil {
		log.Error().Int("linea", numero).Err(err).Msg("subida masiva: categoría creada pero no recuperable")
		return 0, fmt.Errorf("Línea %d: No se pudo crear la categoría %s", numero, nombre)
	}
	return creada.ID, nil
}

// ImportarCategorias loads one category name per line. Existing names are
// recorded as skipped — they count toward the total but neither as success
// nor as error — and no duplicate row is inserted.
func (s *subidaMasivaService) ImportarCategorias(ctx context.Context, contenido string) (*dto.ResultadoImportacion, error) {
	lineas := lineasNoVacias(contenido)
	if len(lineas) == 0 {
		return nil, apierror.Validacion("El archivo está vacío")
	}

	resultado := &dto.ResultadoImportacion{Details: make([]dto.DetalleImportacion, 0, len(lineas))}

	for i, nombre := range lineas {
		numero := i + 1
		resultado.Total++

		existente, err := s.categoriaRepo.ObtenerPorNombre(ctx, nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			resultado.Errors++
			resultado.Details = append(resultado.Details, dto.DetalleImportacion{
				Line:   numero,
				Status: dto.EstadoError,
				Error:  fmt.Sprintf("Línea %d: No se pudo verificar la categoría %s", numero, nombre),
			})
			log.Error().Int("linea", numero).Err(err).Msg("subida masiva: fallo al verificar categoría")
			continue
		}
		if existente != nil {
			resultado.Details = append(resultado.Details, dto.DetalleImportacion{
				Line:      numero,
				Status:    dto.EstadoSkipped,
				Categoria: nombre,
				Message:   "Ya existe",
			})
			continue
		}

		if err := s.categoriaRepo.Crear(ctx, &model.Categoria{Nombre: nombre}); err != nil {
			resultado.Errors++
			resultado.Details = append(resultado.Details, dto.DetalleImportacion{
				Line:   numero,
				Status: dto.EstadoError,
				Error:  fmt.Sprintf("Línea %d: No se pudo crear la categoría %s", numero, nombre),
			})
			log.Error().Int("linea", numero).Err(err).Msg("subida masiva: fallo al crear categoría")
			continue
		}

		resultado.Success++
		resultado.Details = append(resultado.Details, dto.DetalleImportacion{
			Line:      numero,
			Status:    dto.EstadoSuccess,
			Categoria: nombre,
		})
	}

	return resultado, nil
}
