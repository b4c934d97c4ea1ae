// Package inmem provides in-memory implementations of the repository
// interfaces. They back the service and handler tests; the production server
// uses the MongoDB implementations.
package inmem

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UserRepository is a map-backed repository.UserRepository. Insertion order
// is preserved to match the store-native ordering contract.
type UserRepository struct {
	mu    sync.Mutex
	order []string
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}

	user.ID = uuid.NewString()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.order = append(r.order, user.ID)
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := u
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		if len(users) == repository.MaxListResults {
			break
		}
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return nil
}

// VideoRepository is a map-backed repository.VideoRepository.
type VideoRepository struct {
	mu     sync.Mutex
	order  []string
	videos map[string]domain.Video
}

func NewVideoRepository() *VideoRepository {
	return &VideoRepository{videos: make(map[string]domain.Video)}
}

func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	video.ID = uuid.NewString()
	video.UploadedAt = time.Now().UTC()
	video.IsActive = true

	r.order = append(r.order, video.ID)
	r.videos[video.ID] = *video
	return nil
}

func (r *VideoRepository) ListActive(ctx context.Context) ([]domain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	videos := make([]domain.Video, 0, len(r.order))
	for _, id := range r.order {
		if len(videos) == repository.MaxListResults {
			break
		}
		if v := r.videos[id]; v.IsActive {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) (*domain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.videos[id]
	if !ok || !v.IsActive {
		return nil, repository.ErrNotFound
	}
	v.Views++
	r.videos[id] = v
	video := v
	return &video, nil
}

// NoteRepository is a map-backed repository.NoteRepository.
type NoteRepository struct {
	mu    sync.Mutex
	order []string
	notes map[string]domain.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[string]domain.Note)}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = uuid.NewString()
	note.UploadedAt = time.Now().UTC()
	note.IsActive = true

	r.order = append(r.order, note.ID)
	r.notes[note.ID] = *note
	return nil
}

func (r *NoteRepository) ListActive(ctx context.Context) ([]domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]domain.Note, 0, len(r.order))
	for _, id := range r.order {
		if len(notes) == repository.MaxListResults {
			break
		}
		if n := r.notes[id]; n.IsActive {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// QuizRepository is a map-backed repository.QuizRepository.
type QuizRepository struct {
	mu      sync.Mutex
	order   []string
	quizzes map[string]domain.Quiz
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{quizzes: make(map[string]domain.Quiz)}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz.ID = uuid.NewString()
	quiz.CreatedAt = time.Now().UTC()
	quiz.IsActive = true
	if quiz.Questions == nil {
		quiz.Questions = []domain.Question{}
	}

	r.order = append(r.order, quiz.ID)
	r.quizzes[quiz.ID] = *quiz
	return nil
}

func (r *QuizRepository) ListActive(ctx context.Context) ([]domain.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quizzes := make([]domain.Quiz, 0, len(r.order))
	for _, id := range r.order {
		if len(quizzes) == repository.MaxListResults {
			break
		}
		if q := r.quizzes[id]; q.IsActive {
			quizzes = append(quizzes, q)
		}
	}
	return quizzes, nil
}
