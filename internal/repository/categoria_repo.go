package repository

import (
	"context"

	"servidorinventario/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines data access for categories. Tx variants run on
// a caller-owned transaction handle: services decide transaction scope, the
// repository only issues statements.
type CategoriaRepository interface {
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)

	// Crear inserts outside any transaction. The bulk importer uses it so
	// each line commits independently.
	Crear(ctx context.Context, c *model.Categoria) error

	CrearTx(tx *gorm.DB, c *model.Categoria) (int64, error)
	ActualizarTx(tx *gorm.DB, id int64, nombre string) (int64, error)
	EliminarTx(tx *gorm.DB, id int64) (int64, error)
	ObtenerPorIDTx(tx *gorm.DB, id int64) (*model.Categoria, error)

	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepo{db: db}
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&list).Error
	return list, err
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id int64) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) CrearTx(tx *gorm.DB, c *model.Categoria) (int64, error) {
	result := tx.Create(c)
	return result.RowsAffected, result.Error
}

func (r *categoriaRepo) ActualizarTx(tx *gorm.DB, id int64, nombre string) (int64, error) {
	result := tx.Model(&model.Categoria{}).Where("id = ?", id).Update("nombre", nombre)
	return result.RowsAffected, result.Error
}

func (r *categoriaRepo) EliminarTx(tx *gorm.DB, id int64) (int64, error) {
	result := tx.Delete(&model.Categoria{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *categoriaRepo) ObtenerPorIDTx(tx *gorm.DB, id int64) (*model.Categoria, error) {
	var c model.Categoria
	if err := tx.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) DB() *gorm.DB { return r.db }
