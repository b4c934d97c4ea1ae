package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository/inmem"
	"campuskit/lms-app/internal/storage"
)

type contentFixture struct {
	svc      ContentService
	userRepo *inmem.UserRepository
	faculty  *domain.User
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()

	files, err := storage.NewLocalStorage(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("storage setup failed: %v", err)
	}

	userRepo := inmem.NewUserRepository()
	faculty := &domain.User{
		Email:        "prof@x.com",
		Name:         "Prof. Birch",
		PasswordHash: "irrelevant",
		Role:         domain.RoleFaculty,
		Status:       domain.StatusActive,
	}
	if err := userRepo.Create(context.Background(), faculty); err != nil {
		t.Fatalf("user setup failed: %v", err)
	}

	svc := NewContentService(inmem.NewVideoRepository(), inmem.NewNoteRepository(), userRepo, files)
	return &contentFixture{svc: svc, userRepo: userRepo, faculty: faculty}
}

func TestUploadVideo(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	detail, err := f.svc.UploadVideo(ctx, f.faculty, "Intro", "first lecture", "intro.mp4", "video/mp4", strings.NewReader("payload"))
	assert.NoError(t, err)
	assert.NotEmpty(t, detail.ID)
	assert.NotEqual(t, "intro.mp4", detail.Filename)
	assert.Equal(t, "intro.mp4", detail.OriginalFilename)
	assert.Equal(t, int64(len("payload")), detail.FileSize)
	assert.Equal(t, f.faculty.ID, detail.UploadedBy)
	assert.Equal(t, "Prof. Birch", detail.UploaderName)
	assert.Equal(t, int64(0), detail.Views)
	assert.True(t, detail.IsActive)
}

func TestUploadVideoRejectsNonVideoContentType(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.UploadVideo(context.Background(), f.faculty, "Intro", "", "intro.pdf", "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotAVideo)
}

func TestGetVideoIncrementsViews(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	uploaded, err := f.svc.UploadVideo(ctx, f.faculty, "Intro", "", "intro.mp4", "video/mp4", strings.NewReader("x"))
	assert.NoError(t, err)

	first, err := f.svc.GetVideo(ctx, uploaded.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := f.svc.GetVideo(ctx, uploaded.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)
}

func TestGetVideoConcurrentViews(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	uploaded, err := f.svc.UploadVideo(ctx, f.faculty, "Intro", "", "intro.mp4", "video/mp4", strings.NewReader("x"))
	assert.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := f.svc.GetVideo(ctx, uploaded.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	detail, err := f.svc.GetVideo(ctx, uploaded.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(n+1), detail.Views)
}

func TestGetVideoNotFound(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.GetVideo(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestListVideosDenormalizesUploaderName(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	_, err := f.svc.UploadVideo(ctx, f.faculty, "Intro", "", "intro.mp4", "video/mp4", strings.NewReader("x"))
	assert.NoError(t, err)

	details, err := f.svc.ListVideos(ctx)
	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, "Prof. Birch", details[0].UploaderName)
	assert.Equal(t, int64(0), details[0].Views)
}

func TestListVideosUnknownUploader(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	ghost := &domain.User{ID: "gone", Name: "Ghost", Role: domain.RoleFaculty, Status: domain.StatusActive}
	_, err := f.svc.UploadVideo(ctx, ghost, "Orphaned", "", "o.mp4", "video/mp4", strings.NewReader("x"))
	assert.NoError(t, err)

	details, err := f.svc.ListVideos(ctx)
	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, UnknownUploader, details[0].UploaderName)
}

func TestUploadAndListNotes(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	// Notes carry no content-type restriction.
	detail, err := f.svc.UploadNote(ctx, f.faculty, "Week 1", "handout", "week1.pdf", strings.NewReader("pdf bytes"))
	assert.NoError(t, err)
	assert.NotEqual(t, "week1.pdf", detail.Filename)
	assert.Equal(t, int64(0), detail.Downloads)

	notes, err := f.svc.ListNotes(ctx)
	assert.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Equal(t, "Prof. Birch", notes[0].UploaderName)
}
