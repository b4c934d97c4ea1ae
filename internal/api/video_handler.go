package api

import (
	"campuskit/lms-app/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// VideoHandler holds the content service dependency.
type VideoHandler struct {
	contentService service.ContentService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(contentService service.ContentService) *VideoHandler {
	return &VideoHandler{contentService: contentService}
}

// VideoResponse is the DTO for returning video details, including the
// denormalized uploader name.
type VideoResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	Duration         *int      `json:"duration"`
	ThumbnailPath    *string   `json:"thumbnail_path"`
	UploadedBy       string    `json:"uploaded_by"`
	UploaderName     string    `json:"uploader_name"`
	UploadedAt       time.Time `json:"uploaded_at"`
	Views            int64     `json:"views"`
	IsActive         bool      `json:"is_active"`
}

// MapVideoToResponse converts a service.VideoDetail to a VideoResponse DTO.
func MapVideoToResponse(detail *service.VideoDetail) VideoResponse {
	return VideoResponse{
		ID:               detail.ID,
		Title:            detail.Title,
		Description:      detail.Description,
		Filename:         detail.Filename,
		OriginalFilename: detail.OriginalFilename,
		FileSize:         detail.FileSize,
		Duration:         detail.Duration,
		ThumbnailPath:    detail.ThumbnailPath,
		UploadedBy:       detail.UploadedBy,
		UploaderName:     detail.UploaderName,
		UploadedAt:       detail.UploadedAt,
		Views:            detail.Views,
		IsActive:         detail.IsActive,
	}
}

// Upload handles POST /videos (multipart: title, description, file).
// Permission is enforced by RequireAction before this runs; the declared
// content type must be video-like.
func (h *VideoHandler) Upload(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		abortWithError(c, http.StatusBadRequest, "title is required")
		return
	}
	description := c.PostForm("description")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	uploader, err := getCurrentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	detail, err := h.contentService.UploadVideo(
		c.Request.Context(),
		uploader,
		title,
		description,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrNotAVideo) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to upload video")
		}
		return
	}

	c.JSON(http.StatusOK, MapVideoToResponse(detail))
}

// List handles GET /videos.
func (h *VideoHandler) List(c *gin.Context) {
	details, err := h.contentService.ListVideos(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve videos")
		return
	}

	responses := make([]VideoResponse, len(details))
	for i := range details {
		responses[i] = MapVideoToResponse(&details[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Get handles GET /videos/:id. Fetching a video counts a view.
func (h *VideoHandler) Get(c *gin.Context) {
	detail, err := h.contentService.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve video")
		}
		return
	}
	c.JSON(http.StatusOK, MapVideoToResponse(detail))
}
