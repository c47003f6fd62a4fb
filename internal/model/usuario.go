package model

// Usuario has no relational invariants. Foto is an opaque reference into the
// photo file store; the file's lifecycle is handled by the cleanup worker,
// never by SQL.
type Usuario struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"idUsuario"`
	Nombre   string `gorm:"not null" json:"nombre"`
	Apellido string `gorm:"not null" json:"apellido"`
	Foto     string `gorm:"not null" json:"foto"`
}

func (Usuario) TableName() string { return "usuario" }
