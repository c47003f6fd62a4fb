package repository

import (
	"context"

	"servidorinventario/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines data access for products. Every read is joined
// with categoria so callers always get the owning category's name.
type ProductoRepository interface {
	Listar(ctx context.Context) ([]model.ProductoConCategoria, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.ProductoConCategoria, error)
	ListarPorCategoria(ctx context.Context, categoriaID int64) ([]model.ProductoConCategoria, error)

	// Crear inserts outside any transaction (bulk import path).
	Crear(ctx context.Context, p *model.Producto) error

	CrearTx(tx *gorm.DB, p *model.Producto) (int64, error)
	ActualizarTx(tx *gorm.DB, id int64, p *model.Producto) (int64, error)
	EliminarTx(tx *gorm.DB, id int64) (int64, error)
	ObtenerPorIDTx(tx *gorm.DB, id int64) (*model.ProductoConCategoria, error)
	// ContarPorCategoriaTx counts products referencing a category, inside the
	// caller's transaction. Category deletion is guarded by this count.
	ContarPorCategoriaTx(tx *gorm.DB, categoriaID int64) (int64, error)

	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepo{db: db}
}

// conCategoria builds the LEFT JOIN read used by all product queries.
// LEFT (not INNER) so a dangling categoria_id still yields the row, with a
// NULL category name.
func conCategoria(db *gorm.DB) *gorm.DB {
	return db.Table("producto AS p").
		Select("p.id, p.descripcion, p.cantidad, p.precio, p.unidad_medida, p.categoria_id, c.nombre AS nombre_categoria").
		Joins("LEFT JOIN categoria AS c ON c.id = p.categoria_id")
}

func (r *productoRepo) Listar(ctx context.Context) ([]model.ProductoConCategoria, error) {
	var list []model.ProductoConCategoria
	err := conCategoria(r.db.WithContext(ctx)).Order("p.descripcion ASC").Scan(&list).Error
	return list, err
}

func (r *productoRepo) ObtenerPorID(ctx context.Context, id int64) (*model.ProductoConCategoria, error) {
	return obtenerConCategoria(r.db.WithContext(ctx), id)
}

func (r *productoRepo) ListarPorCategoria(ctx context.Context, categoriaID int64) ([]model.ProductoConCategoria, error) {
	var list []model.ProductoConCategoria
	err := conCategoria(r.db.WithContext(ctx)).
		Where("p.categoria_id = ?", categoriaID).
		Order("p.descripcion ASC").
		Scan(&list).Error
	return list, err
}

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) CrearTx(tx *gorm.DB, p *model.Producto) (int64, error) {
	result := tx.Create(p)
	return result.RowsAffected, result.Error
}

func (r *productoRepo) ActualizarTx(tx *gorm.DB, id int64, p *model.Producto) (int64, error) {
	result := tx.Model(&model.Producto{}).Where("id = ?", id).Updates(map[string]any{
		"descripcion":   p.Descripcion,
		"cantidad":      p.Cantidad,
		"precio":        p.Precio,
		"unidad_medida": p.UnidadMedida,
		"categoria_id":  p.CategoriaID,
	})
	return result.RowsAffected, result.Error
}

func (r *productoRepo) EliminarTx(tx *gorm.DB, id int64) (int64, error) {
	result := tx.Delete(&model.Producto{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *productoRepo) ObtenerPorIDTx(tx *gorm.DB, id int64) (*model.ProductoConCategoria, error) {
	return obtenerConCategoria(tx, id)
}

func (r *productoRepo) ContarPorCategoriaTx(tx *gorm.DB, categoriaID int64) (int64, error) {
	var total int64
	err := tx.Model(&model.Producto{}).Where("categoria_id = ?", categoriaID).Count(&total).Error
	return total, err
}

func (r *productoRepo) DB() *gorm.DB { return r.db }

func obtenerConCategoria(db *gorm.DB, id int64) (*model.ProductoConCategoria, error) {
	var p model.ProductoConCategoria
	result := conCategoria(db).Where("p.id = ?", id).Scan(&p)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}
