package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────
// One explicit shape per operation: the id always travels in the URL, never
// inferred from which body fields happen to be set.

type CrearCategoriaRequest struct {
	Nombre string `json:"nombreCategoria" validate:"required"`
}

type ActualizarCategoriaRequest struct {
	Nombre string `json:"nombreCategoria" validate:"required"`
}
