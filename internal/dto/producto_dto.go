package dto

// Cantidad and Precio are decimal-like strings; validation is presence-only
// (no parsing or range checks), matching what the store persists.

type CrearProductoRequest struct {
	Descripcion  string `json:"descripcion"  validate:"required"`
	Cantidad     string `json:"cantidad"     validate:"required"`
	Precio       string `json:"precio"       validate:"required"`
	UnidadMedida string `json:"unidadMedida" validate:"required"`
	CategoriaID  int64  `json:"idCategoria"  validate:"required"`
}

type ActualizarProductoRequest struct {
	Descripcion  string `json:"descripcion"  validate:"required"`
	Cantidad     string `json:"cantidad"     validate:"required"`
	Precio       string `json:"precio"       validate:"required"`
	UnidadMedida string `json:"unidadMedida" validate:"required"`
	CategoriaID  int64  `json:"idCategoria"  validate:"required"`
}
