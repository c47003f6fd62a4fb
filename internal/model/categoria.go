package model

// Categoria classifies products. Name uniqueness is intentionally NOT a DB
// constraint: services check by name before inserting so the API can return
// a readable message instead of a constraint violation.
type Categoria struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"idCategoria"`
	Nombre string `gorm:"not null" json:"nombreCategoria"`
}

// TableName keeps the singular Spanish table name used by the original schema.
func (Categoria) TableName() string { return "categoria" }
