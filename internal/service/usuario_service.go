package service

import (
	"context"
	"errors"
	"strings"

	"servidorinventario/internal/apierror"
	"servidorinventario/internal/dto"
	"servidorinventario/internal/model"
	"servidorinventario/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LimpiadorFotos enqueues asynchronous cleanup of a photo that no longer has
// an owning user. Implemented by worker.Dispatcher; nil-safe via noopLimpiador
// in tests.
type LimpiadorFotos interface {
	EncolarLimpiezaFoto(ctx context.Context, foto string) error
}

// UsuarioService owns user CRUD. Users have no relational invariants; the
// only side effect is handing orphaned photos to the cleanup queue.
type UsuarioService interface {
	Listar(ctx context.Context) ([]model.Usuario, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarUsuarioRequest) (*model.Usuario, error)
	Eliminar(ctx context.Context, id int64) (*model.Usuario, error)
}

type usuarioService struct {
	repo      repository.UsuarioRepository
	limpiador LimpiadorFotos
}

func NewUsuarioService(repo repository.UsuarioRepository, limpiador LimpiadorFotos) UsuarioService {
	if limpiador == nil {
		limpiador = noopLimpiador{}
	}
	return &usuarioService{repo: repo, limpiador: limpiador}
}

type noopLimpiador struct{}

func (noopLimpiador) EncolarLimpiezaFoto(context.Context, string) error { return nil }

func (s *usuarioService) Listar(ctx context.Context) ([]model.Usuario, error) {
	return s.repo.Listar(ctx)
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error) {
	nombre := strings.TrimSpace(req.Nombre)
	apellido := strings.TrimSpace(req.Apellido)
	foto := strings.TrimSpace(req.Foto)
	if nombre == "" || apellido == "" || foto == "" {
		return nil, apierror.Validacion("Faltan campos requeridos para registrar el usuario")
	}

	var creado *model.Usuario
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		u := model.Usuario{Nombre: nombre, Apellido: apellido, Foto: foto}
		rows, err := s.repo.CrearTx(tx, &u)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.Interno()
		}
		creado, err = s.repo.ObtenerPorIDTx(tx, u.ID)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return creado, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id int64, req dto.ActualizarUsuarioRequest) (*model.Usuario, error) {
	nombre := strings.TrimSpace(req.Nombre)
	apellido := strings.TrimSpace(req.Apellido)
	foto := strings.TrimSpace(req.Foto)
	if nombre == "" || apellido == "" || foto == "" {
		return nil, apierror.Validacion("Faltan campos requeridos para actualizar el usuario")
	}

	anterior, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El usuario no existe")
		}
		return nil, err
	}

	var actualizado *model.Usuario
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		u := model.Usuario{Nombre: nombre, Apellido: apellido, Foto: foto}
		rows, err := s.repo.ActualizarTx(tx, id, &u)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NoEncontrado("El usuario no existe")
		}
		actualizado, err = s.repo.ObtenerPorIDTx(tx, id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	// The photo lives in the side file store; once it is no longer referenced
	// it gets cleaned up asynchronously. Best effort: a failed enqueue never
	// fails the update that already committed.
	if anterior.Foto != "" && anterior.Foto != actualizado.Foto {
		if err := s.limpiador.EncolarLimpiezaFoto(ctx, anterior.Foto); err != nil {
			log.Warn().Err(err).Str("foto", anterior.Foto).Msg("no se pudo encolar limpieza de foto")
		}
	}
	return actualizado, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id int64) (*model.Usuario, error) {
	var eliminado *model.Usuario
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existente, err := s.repo.ObtenerPorIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NoEncontrado("El usuario no existe")
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

	if eliminado.Foto != "" {
		if err := s.limpiador.EncolarLimpiezaFoto(ctx, eliminado.Foto); err != nil {
			log.Warn().Err(err).Str("foto", eliminado.Foto).Msg("no se pudo encolar limpieza de foto")
		}
	}
	return eliminado, nil
}
