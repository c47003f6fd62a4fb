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

// CategoriaService owns category CRUD and the referential rule guarding
// deletion: a category with products can never be removed.
type CategoriaService interface {
	Listar(ctx context.Context) ([]model.Categoria, error)
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarCategoriaRequest) (*model.Categoria, error)
	Eliminar(ctx context.Context, id int64) (*model.Categoria, error)
}

type categoriaService struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productoRepo: productoRepo}
}

func (s *categoriaService) Listar(ctx context.Context) ([]model.Categoria, error) {
	return s.repo.Listar(ctx)
}

// Crear inserts a category and returns the persisted row read back by its
// generated id. Name uniqueness is a pre-insert lookup, not a DB constraint:
// two concurrent creates for the same name can both pass the check. Known
// check-then-insert window, accepted in exchange for readable messages.
func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.Validacion("El nombre de la categoría es requerido")
	}

	existente, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Validacion("Ya existe una categoría con el nombre %q", nombre)
	}

	var creada *model.Categoria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		c := model.Categoria{Nombre: nombre}
		rows, err := s.repo.CrearTx(tx, &c)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.Interno()
		}
		creada, err = s.repo.ObtenerPorIDTx(tx, c.ID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return creada, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id int64, req dto.ActualizarCategoriaRequest) (*model.Categoria, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.Validacion("El nombre de la categoría es requerido")
	}

	var actualizada *model.Categoria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		rows, err := s.repo.ActualizarTx(tx, id, nombre)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NoEncontrado("La categoría no existe")
		}
		actualizada, err = s.repo.ObtenerPorIDTx(tx, id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return actualizada, nil
}

// Eliminar removes a category only when no product references it. The count
// and the delete run in one transaction so a product created in between
// cannot be orphaned.
func (s *categoriaService) Eliminar(ctx context.Context, id int64) (*model.Categoria, error) {
	var eliminada *model.Categoria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		total, err := s.productoRepo.ContarPorCategoriaTx(tx, id)
		if err != nil {
			return err
		}
		if total > 0 {
			return apierror.Integridad("No se puede eliminar la categoría porque tiene %d producto(s) asociado(s)", total)
		}

		existente, err := s.repo.ObtenerPorIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NoEncontrado("La categoría no existe")
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
		eliminada = existente
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return eliminada, nil
}
