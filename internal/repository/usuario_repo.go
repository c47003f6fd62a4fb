package repository

import (
	"context"

	"servidorinventario/internal/model"

	"gorm.io/gorm"
)

// UsuarioRepository defines data access for users. No referential checks:
// usuario rows have no dependents.
type UsuarioRepository interface {
	Listar(ctx context.Context) ([]model.Usuario, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Usuario, error)

	CrearTx(tx *gorm.DB, u *model.Usuario) (int64, error)
	ActualizarTx(tx *gorm.DB, id int64, u *model.Usuario) (int64, error)
	EliminarTx(tx *gorm.DB, id int64) (int64, error)
	ObtenerPorIDTx(tx *gorm.DB, id int64) (*model.Usuario, error)

	DB() *gorm.DB
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var list []model.Usuario
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id int64) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) CrearTx(tx *gorm.DB, u *model.Usuario) (int64, error) {
	result := tx.Create(u)
	return result.RowsAffected, result.Error
}

func (r *usuarioRepo) ActualizarTx(tx *gorm.DB, id int64, u *model.Usuario) (int64, error) {
	result := tx.Model(&model.Usuario{}).Where("id = ?", id).Updates(map[string]any{
		"nombre":   u.Nombre,
		"apellido": u.Apellido,
		"foto":     u.Foto,
	})
	return result.RowsAffected, result.Error
}

func (r *usuarioRepo) EliminarTx(tx *gorm.DB, id int64) (int64, error) {
	result := tx.Delete(&model.Usuario{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *usuarioRepo) ObtenerPorIDTx(tx *gorm.DB, id int64) (*model.Usuario, error) {
	var u model.Usuario
	if err := tx.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) DB() *gorm.DB { return r.db }
