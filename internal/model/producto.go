package model

// Producto is a catalog entry. Cantidad and Precio are stored as text on
// purpose: the API accepts them as opaque decimal strings and performs no
// arithmetic, so nothing is gained (and precision is risked) by parsing them.
//
// CategoriaID is a logical foreign key. There is no DB-declared constraint;
// services verify the category exists inside the same operation so the API
// can answer with "La categoría especificada no existe" instead of a driver
// error.
type Producto struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"idProducto"`
	Descripcion  string `gorm:"not null" json:"descripcion"`
	Cantidad     string `gorm:"not null" json:"cantidad"`
	Precio       string `gorm:"not null" json:"precio"`
	UnidadMedida string `gorm:"not null" json:"unidadMedida"`
	CategoriaID  int64  `gorm:"not null;index" json:"idCategoria"`
}

func (Producto) TableName() string { return "producto" }

// ProductoConCategoria is the joined read shape for product queries: every
// read returns the owning category's name. NombreCategoria is a pointer
// because the LEFT JOIN yields NULL if the logical FK ever dangles — reads
// must not break on that.
type ProductoConCategoria struct {
	ID              int64   `json:"idProducto"`
	Descripcion     string  `json:"descripcion"`
	Cantidad        string  `json:"cantidad"`
	Precio          string  `json:"precio"`
	UnidadMedida    string  `json:"unidadMedida"`
	CategoriaID     int64   `json:"idCategoria"`
	NombreCategoria *string `json:"nombreCategoria"`
}
