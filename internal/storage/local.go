package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// localStorage implements FileStorage on the local filesystem. Files are laid
// out as <basePath>/<kind>/<storedName>.
type localStorage struct {
	basePath string
	log      zerolog.Logger
}

// NewLocalStorage creates a disk-backed file store rooted at basePath,
// creating the per-kind subdirectories up front.
func NewLocalStorage(basePath string, log zerolog.Logger) (FileStorage, error) {
	for _, kind := range []Kind{KindVideo, KindNote, KindThumbnail} {
		dir := filepath.Join(basePath, string(kind))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	log.Info().Str("path", basePath).Msg("local file storage initialized")

	return &localStorage{basePath: basePath, log: log}, nil
}

// Save streams content to disk under a generated name. On a write failure the
// partial file is removed, so a record never references missing bytes.
func (s *localStorage) Save(ctx context.Context, kind Kind, originalName string, content io.Reader) (StoredFile, error) {
	ext := filepath.Ext(originalName)
	storedName := uuid.NewString() + ext
	dstPath := filepath.Join(s.basePath, string(kind), storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to create file %s: %w", dstPath, err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, content)
	if err != nil {
		_ = os.Remove(dstPath)
		return StoredFile{}, fmt.Errorf("failed to write file content: %w", err)
	}

	s.log.Info().
		Str("kind", string(kind)).
		Str("original", originalName).
		Str("stored", storedName).
		Int64("size", size).
		Msg("file stored")

	return StoredFile{Name: storedName, Size: size}, nil
}

// Delete removes a stored file. A missing file is treated as already deleted.
func (s *localStorage) Delete(ctx context.Context, kind Kind, storedName string) error {
	// Base() guards against path traversal through a stored name.
	path := filepath.Join(s.basePath, string(kind), filepath.Base(storedName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}
