package storage

import (
	"context"
	"io"
)

// Kind partitions the file store by content type. The value doubles as the
// storage subdirectory (or S3 key prefix).
type Kind string

const (
	KindVideo     Kind = "videos"
	KindNote      Kind = "notes"
	KindThumbnail Kind = "thumbnails"
)

// StoredFile describes a persisted object.
type StoredFile struct {
	// Name is the generated, collision-resistant filename (random UUID plus
	// the original extension). Distinct from the user-supplied name by
	// construction.
	Name string
	// Size is the number of bytes written.
	Size int64
}

// FileStorage defines the interface for persisting uploaded file bytes.
// Records hold only the returned stored name; the bytes are owned by the
// store once written.
type FileStorage interface {
	// Save writes the full content under a freshly generated name in the
	// kind-specific area and returns the stored name for persistence.
	Save(ctx context.Context, kind Kind, originalName string, content io.Reader) (StoredFile, error)

	// Delete removes a stored object. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, kind Kind, storedName string) error
}
