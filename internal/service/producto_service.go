package service

import (
	"context"
	"errors"
	"strings"

	"servidorinventario/internal/apierror"
	"servidorinventario/internal/dto"
	"servidorinventario/internal/model"
	"servidorinventario/internal/repository"

	"gorm.io/gorm"
)

// ProductoService owns product CRUD. Writes always verify the referenced
// category first, in the same logical operation, so a committed product can
// never point at a category that was missing when it was written.
type ProductoService interface {
	Listar(ctx context.Context) ([]model.ProductoConCategoria, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.ProductoConCategoria, error)
	ListarPorCategoria(ctx context.Context, categoriaID int64) ([]model.ProductoConCategoria, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.ProductoConCategoria, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest) (*model.ProductoConCategoria, error)
	Eliminar(ctx context.Context, id int64) (*model.ProductoConCategoria, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo}
}

func (s *productoService) Listar(ctx context.Context) ([]model.ProductoConCategoria, error) {
	return s.repo.Listar(ctx)
}

func (s *productoService) ObtenerPorID(ctx context.Context, id int64) (*model.ProductoConCategoria, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El producto no existe")
		}
		return nil, err
	}
	return p, nil
}

func (s *productoService) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]model.ProductoConCategoria, error) {
	return s.repo.ListarPorCategoria(ctx, categoriaID)
}

// validarCampos enforces presence only. Cantidad and Precio stay opaque
// strings: the store performs no numeric parsing or range checks.
func validarCampos(descripcion, cantidad, precio, unidadMedida string, categoriaID int64) error {
	if strings.TrimSpace(descripcion) == "" ||
		strings.TrimSpace(cantidad) == "" ||
		strings.TrimSpace(precio) == "" ||
		strings.TrimSpace(unidadMedida) == "" ||
		categoriaID == 0 {
		return apierror.Validacion("Todos los campos son requeridos para el producto")
	}
	return nil
}

// verificarCategoria confirms the referenced category exists. Runs BEFORE
// the write transaction opens so a bad reference leaves no partial state.
func (s *productoService) verificarCategoria(ctx context.Context, categoriaID int64) error {
	_, err := s.categoriaRepo.ObtenerPorID(ctx, categoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Integridad("La categoría especificada no existe")
		}
		return err
	}
	return nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.ProductoConCategoria, error) {
	if err := validarCampos(req.Descripcion, req.Cantidad, req.Precio, req.UnidadMedida, req.CategoriaID); err != nil {
		return nil, err
	}
	if err := s.verificarCategoria(ctx, req.CategoriaID); err != nil {
		return nil, err
	}

	var creado *model.ProductoConCategoria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p := model.Producto{
			Descripcion:  strings.TrimSpace(req.Descripcion),
			Cantidad:     strings.TrimSpace(req.Cantidad),
			Precio:       strings.TrimSpace(req.Precio),
			UnidadMedida: strings.TrimSpace(req.UnidadMedida),
			CategoriaID:  req.CategoriaID,
		}
		rows, err := s.repo.CrearTx(tx, &p)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.Interno()
		}
		creado, err = s.repo.ObtenerPorIDTx(tx, p.ID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return creado, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest) (*model.ProductoConCategoria, error) {
	if err := validarCampos(req.Descripcion, req.Cantidad, req.Precio, req.UnidadMedida, req.CategoriaID); err != nil {
		return nil, err
	}
	if err := s.verificarCategoria(ctx, req.CategoriaID); err != nil {
		return nil, err
	}

	var actualizado *model.ProductoConCategoria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p := model.Producto{
			Descripcion:  strings.TrimSpace(req.Descripcion),
			Cantidad:     strings.TrimSpace(req.Cantidad),
			Precio:       strings.TrimSpace(req.Precio),
			UnidadMedida: strings.TrimSpace(req.UnidadMedida),
			CategoriaID:  req.CategoriaID,
		}
		rows, err := s.repo.ActualizarTx(tx, id, &p)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NoEncontrado("El producto no existe")
		}
		actualizado, err = s.repo.ObtenerPorIDTx(tx, id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return actualizado, nil
}

func (s *productoService) Eliminar(ctx context.Context, id int64) (*model.ProductoConCategoria, error) {
	var eliminado *model.ProductoConCategoria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existente, err := s.repo.ObtenerPorIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NoEncontrado("El producto no existe")
			}
			return err
		}

		rows, err := s.repo.EliminarTx(tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.Interno()
		}
		eliminado = existente
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return eliminado, nil
}
