package repository

import (
	"campuskit/lms-app/internal/domain"
	"context"
)

// MaxListResults caps unpaginated list queries. No cursor/pagination token is
// exposed to callers.
const MaxListResults = 1000

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// UpdateStatus sets the account status and updated_at. Returns
	// ErrNotFound when no record matched the id.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}

// VideoRepository defines the interface for interacting with video metadata.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	ListActive(ctx context.Context) ([]domain.Video, error)
	// IncrementViews atomically bumps the view counter of an active video
	// and returns the record with the post-increment count.
	IncrementViews(ctx context.Context, id string) (*domain.Video, error)
}

// NoteRepository defines the interface for interacting with note metadata.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListActive(ctx context.Context) ([]domain.Note, error)
}

// QuizRepository defines the interface for interacting with quiz definitions.
type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz) error
	ListActive(ctx context.Context) ([]domain.Quiz, error)
}
