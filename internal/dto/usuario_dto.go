package dto

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Foto     string `json:"foto"     validate:"required"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Foto     string `json:"foto"     validate:"required"`
}
