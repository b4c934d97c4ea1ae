package domain

import (
	"time"
)

// Note represents uploaded lecture notes. Same shape as Video minus the
// video-only fields. The downloads counter is stored for forward
// compatibility; no current route increments it.
type Note struct {
	ID               string    `bson:"_id" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description" json:"description"`
	Filename         string    `bson:"filename" json:"filename"`
	OriginalFilename string    `bson:"original_filename" json:"original_filename"`
	FileSize         int64     `bson:"file_size" json:"file_size"`
	UploadedBy       string    `bson:"uploaded_by" json:"uploaded_by"` // User ID
	UploadedAt       time.Time `bson:"uploaded_at" json:"uploaded_at"`
	Downloads        int64     `bson:"downloads" json:"downloads"`
	IsActive         bool      `bson:"is_active" json:"is_active"`
}
