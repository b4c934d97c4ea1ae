package domain

import (
	"time"
)

// Video represents an uploaded lecture video. The bytes live in the file
// store under Filename; only the path reference is persisted here.
type Video struct {
	ID               string    `bson:"_id" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description" json:"description"`
	Filename         string    `bson:"filename" json:"filename"`                   // Generated stored name, unique
	OriginalFilename string    `bson:"original_filename" json:"original_filename"` // Untrusted, display only
	FileSize         int64     `bson:"file_size" json:"file_size"`
	Duration         *int      `bson:"duration,omitempty" json:"duration"`
	ThumbnailPath    *string   `bson:"thumbnail_path,omitempty" json:"thumbnail_path"`
	UploadedBy       string    `bson:"uploaded_by" json:"uploaded_by"` // User ID
	UploadedAt       time.Time `bson:"uploaded_at" json:"uploaded_at"`
	Views            int64     `bson:"views" json:"views"`
	IsActive         bool      `bson:"is_active" json:"is_active"`
}
