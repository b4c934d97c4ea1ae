package api

import (
	"campuskit/lms-app/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NoteHandler holds the content service dependency.
type NoteHandler struct {
	contentService service.ContentService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(contentService service.ContentService) *NoteHandler {
	return &NoteHandler{contentService: contentService}
}

// NoteResponse is the DTO for returning note details. The downloads counter
// is carried for storage compatibility; no route increments it.
type NoteResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileSize         int64     `json:"file_size"`
	UploadedBy       string    `json:"uploaded_by"`
	UploaderName     string    `json:"uploader_name"`
	UploadedAt       time.Time `json:"uploaded_at"`
	Downloads        int64     `json:"downloads"`
	IsActive         bool      `json:"is_active"`
}

// MapNoteToResponse converts a service.NoteDetail to a NoteResponse DTO.
func MapNoteToResponse(detail *service.NoteDetail) NoteResponse {
	return NoteResponse{
		ID:               detail.ID,
		Title:            detail.Title,
		Description:      detail.Description,
		Filename:         detail.Filename,
		OriginalFilename: detail.OriginalFilename,
		FileSize:         detail.FileSize,
		UploadedBy:       detail.UploadedBy,
		UploaderName:     detail.UploaderName,
		UploadedAt:       detail.UploadedAt,
		Downloads:        detail.Downloads,
		IsActive:         detail.IsActive,
	}
}

// Upload handles POST /notes (multipart: title, description, file). Unlike
// videos there is no content-type restriction.
func (h *NoteHandler) Upload(c *gin.Context) {
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

	detail, err := h.contentService.UploadNote(
		c.Request.Context(),
		uploader,
		title,
		description,
		fileHeader.Filename,
		file,
	)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to upload note")
		return
	}

	c.JSON(http.StatusOK, MapNoteToResponse(detail))
}

// List handles GET /notes.
func (h *NoteHandler) List(c *gin.Context) {
	details, err := h.contentService.ListNotes(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve notes")
		return
	}

	responses := make([]NoteResponse, len(details))
	for i := range details {
		responses[i] = MapNoteToResponse(&details[i])
	}
	c.JSON(http.StatusOK, responses)
}
