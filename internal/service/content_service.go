package service

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository"
	"campuskit/lms-app/internal/storage"
	"context"
	"errors"
	"io"
	"strings"
)

var (
	ErrNotAVideo     = errors.New("file must be a video")
	ErrVideoNotFound = errors.New("video not found")
)

// UnknownUploader is shown when the uploader record no longer resolves.
const UnknownUploader = "Unknown"

// VideoDetail is a video record joined with the uploader's current display
// name. The name is looked up at read time, not stored redundantly.
type VideoDetail struct {
	domain.Video
	UploaderName string
}

// NoteDetail is a note record joined with the uploader's current display name.
type NoteDetail struct {
	domain.Note
	UploaderName string
}

// ContentService handles video and note uploads and retrieval.
type ContentService interface {
	// UploadVideo stores the file bytes first and inserts the record after,
	// so a failure can orphan a file but never produce a record with
	// missing bytes.
	UploadVideo(ctx context.Context, uploader *domain.User, title, description, originalName, contentType string, content io.Reader) (*VideoDetail, error)
	ListVideos(ctx context.Context) ([]VideoDetail, error)
	// GetVideo increments the view counter as a side effect and returns the
	// record with the post-increment count.
	GetVideo(ctx context.Context, id string) (*VideoDetail, error)

	UploadNote(ctx context.Context, uploader *domain.User, title, description, originalName string, content io.Reader) (*NoteDetail, error)
	ListNotes(ctx context.Context) ([]NoteDetail, error)
}

type contentService struct {
	videoRepo repository.VideoRepository
	noteRepo  repository.NoteRepository
	userRepo  repository.UserRepository
	files     storage.FileStorage
}

// NewContentService creates a new instance of contentService.
func NewContentService(
	videoRepo repository.VideoRepository,
	noteRepo repository.NoteRepository,
	userRepo repository.UserRepository,
	files storage.FileStorage,
) ContentService {
	return &contentService{
		videoRepo: videoRepo,
		noteRepo:  noteRepo,
		userRepo:  userRepo,
		files:     files,
	}
}

// UploadVideo validates the declared content type, stores the bytes, and
// inserts the video record owned by the uploader.
func (s *contentService) UploadVideo(ctx context.Context, uploader *domain.User, title, description, originalName, contentType string, content io.Reader) (*VideoDetail, error) {
	if title == "" {
		return nil, errors.New("video title is required")
	}
	// Coarse prefix check on the declared type; there is no content
	// sniffing.
	if !strings.HasPrefix(contentType, "video/") {
		return nil, ErrNotAVideo
	}

	stored, err := s.files.Save(ctx, storage.KindVideo, originalName, content)
	if err != nil {
		return nil, err
	}

	video := &domain.Video{
		Title:            title,
		Description:      description,
		Filename:         stored.Name,
		OriginalFilename: originalName,
		FileSize:         stored.Size,
		UploadedBy:       uploader.ID,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		// The stored file is orphaned here; there is no cleanup pass.
		return nil, err
	}

	return &VideoDetail{Video: *video, UploaderName: uploader.Name}, nil
}

// ListVideos returns all active videos with denormalized uploader names, in
// store-native order.
func (s *contentService) ListVideos(ctx context.Context) ([]VideoDetail, error) {
	videos, err := s.videoRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]VideoDetail, 0, len(videos))
	for _, video := range videos {
		details = append(details, VideoDetail{
			Video:        video,
			UploaderName: s.lookupName(ctx, video.UploadedBy),
		})
	}
	return details, nil
}

// GetVideo fetches an active video by id, bumping its view counter.
func (s *contentService) GetVideo(ctx context.Context, id string) (*VideoDetail, error) {
	video, err := s.videoRepo.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &VideoDetail{Video: *video, UploaderName: s.lookupName(ctx, video.UploadedBy)}, nil
}

// UploadNote mirrors UploadVideo without any content-type restriction.
func (s *contentService) UploadNote(ctx context.Context, uploader *domain.User, title, description, originalName string, content io.Reader) (*NoteDetail, error) {
	if title == "" {
		return nil, errors.New("note title is required")
	}

	stored, err := s.files.Save(ctx, storage.KindNote, originalName, content)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		Title:            title,
		Description:      description,
		Filename:         stored.Name,
		OriginalFilename: originalName,
		FileSize:         stored.Size,
		UploadedBy:       uploader.ID,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return &NoteDetail{Note: *note, UploaderName: uploader.Name}, nil
}

// ListNotes returns all active notes with denormalized uploader names.
func (s *contentService) ListNotes(ctx context.Context) ([]NoteDetail, error) {
	notes, err := s.noteRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]NoteDetail, 0, len(notes))
	for _, note := range notes {
		details = append(details, NoteDetail{
			Note:         note,
			UploaderName: s.lookupName(ctx, note.UploadedBy),
		})
	}
	return details, nil
}

func (s *contentService) lookupName(ctx context.Context, userID string) string {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return UnknownUploader
	}
	return user.Name
}
