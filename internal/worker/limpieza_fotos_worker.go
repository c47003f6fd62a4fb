package worker

// limpieza_fotos_worker.go
// Removes user photos from the file store once no usuario row references
// them. The photo reference may arrive as a bare file name or as the public
// /uploads/usuarios/... URL; only the base name matters here.

import (
	"context"
	"encoding/json"
	"path"
	"strings"

	"servidorinventario/internal/infra"

	"github.com/rs/zerolog/log"
)

// LimpiezaFotoPayload is the job envelope sent to QueueLimpiezaFotos.
type LimpiezaFotoPayload struct {
	Foto string `json:"foto"`
}

// LimpiezaFotosWorker deletes orphaned photos from the file store.
type LimpiezaFotosWorker struct {
	store *infra.FileStore
}

func NewLimpiezaFotosWorker(store *infra.FileStore) *LimpiezaFotosWorker {
	return &LimpiezaFotosWorker{store: store}
}

// Process deletes the referenced photo. A failure is returned so the pool
// can park the job in the DLQ for manual inspection.
func (w *LimpiezaFotosWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LimpiezaFotoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("limpieza_fotos: invalid payload")
		return err
	}

	nombre := path.Base(strings.TrimSpace(payload.Foto))
	if nombre == "" || nombre == "." || nombre == "/" {
		log.Warn().Str("foto", payload.Foto).Msg("limpieza_fotos: empty photo reference — skipping")
		return nil
	}

	if err := w.store.Eliminar(nombre); err != nil {
		log.Error().Err(err).Str("foto", nombre).Msg("limpieza_fotos: failed to delete photo")
		return err
	}
	log.Info().Str("foto", nombre).Msg("limpieza_fotos: orphaned photo removed")
	return nil
}
