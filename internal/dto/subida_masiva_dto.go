package dto

// Per-line statuses of a bulk import. "skipped" only applies to category
// imports (name already present).
const (
	EstadoSuccess = "success"
	EstadoError   = "error"
	EstadoSkipped = "skipped"
)

// DetalleImportacion is one ledger entry. Line numbers count non-empty lines
// in file order, starting at 1.
type DetalleImportacion struct {
	Line      int    `json:"line"`
	Status    string `json:"status"`
	Producto  string `json:"producto,omitempty"`
	Categoria string `json:"categoria,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ResultadoImportacion is the full ledger for one import run. Skipped lines
// count toward Total but toward neither Success nor Errors.
type ResultadoImportacion struct {
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Errors  int                  `json:"errors"`
	Details []DetalleImportacion `json:"details"`
}
