package infra

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore persists user profile photos on local disk. The rest of the
// system only ever holds the file name as an opaque string; this store is
// the single owner of the bytes.
type FileStore struct {
	baseDir  string
	maxBytes int64
}

var (
	ErrTipoNoPermitido  = errors.New("tipo de archivo no permitido")
	ErrArchivoMuyGrande = errors.New("el archivo es demasiado grande")
	ErrFotoNoEncontrada = errors.New("foto no encontrada")
	ErrNombreInvalido   = errors.New("nombre de archivo invalido")
)

// Only images are accepted as profile photos.
var mimePorExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

var extensionPorMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// FotoGuardada describes a stored photo.
type FotoGuardada struct {
	FileName   string
	Size       int64
	Type       string
	UploadedAt time.Time
}

func NewFileStore(baseDir string, maxBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &FileStore{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Guardar validates type and size and writes the photo under a unique name
// (usuario_<timestamp>_<uuid><ext>) so uploads never collide.
func (s *FileStore) Guardar(nombreOriginal, contentType string, data []byte) (*FotoGuardada, error) {
	ext, ok := extensionPorMime[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTipoNoPermitido, contentType)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrArchivoMuyGrande
	}

	if origExt := strings.ToLower(filepath.Ext(nombreOriginal)); origExt != "" {
		if _, conocida := mimePorExtension[origExt]; conocida {
			ext = origExt
		}
	}

	fileName := fmt.Sprintf("usuario_%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.baseDir, fileName), data, 0o644); err != nil {
		return nil, err
	}

	return &FotoGuardada{
		FileName:   fileName,
		Size:       int64(len(data)),
		Type:       contentType,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// Abrir returns the photo bytes and its MIME type.
func (s *FileStore) Abrir(fileName string) ([]byte, string, error) {
	path, err := s.ruta(fileName)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrFotoNoEncontrada
		}
		return nil, "", err
	}
	contentType := mimePorExtension[strings.ToLower(filepath.Ext(fileName))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

// Eliminar removes a stored photo. Deleting a photo that is already gone is
// not an error: cleanup jobs may retry.
func (s *FileStore) Eliminar(fileName string) error {
	path, err := s.ruta(fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Existe reports whether the photo is currently stored.
func (s *FileStore) Existe(fileName string) bool {
	path, err := s.ruta(fileName)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ruta rejects anything that is not a bare file name, so a crafted name can
// never escape the uploads directory.
func (s *FileStore) ruta(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", ErrNombreInvalido
	}
	return filepath.Join(s.baseDir, fileName), nil
}
