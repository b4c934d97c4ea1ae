package api

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// QuizHandler holds the quiz service dependency.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CreateQuizRequest defines the expected JSON for creating a quiz. Questions
// are opaque documents stored without schema validation.
type CreateQuizRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Questions   []domain.Question `json:"questions"`
	TimeLimit   *int              `json:"time_limit"`
}

// QuizResponse is the DTO for returning quiz details.
type QuizResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []domain.Question `json:"questions"`
	CreatedBy   string            `json:"created_by"`
	CreatorName string            `json:"creator_name"`
	CreatedAt   time.Time         `json:"created_at"`
	IsActive    bool              `json:"is_active"`
	TimeLimit   *int              `json:"time_limit"`
}

// MapQuizToResponse converts a service.QuizDetail to a QuizResponse DTO.
func MapQuizToResponse(detail *service.QuizDetail) QuizResponse {
	return QuizResponse{
		ID:          detail.ID,
		Title:       detail.Title,
		Description: detail.Description,
		Questions:   detail.Questions,
		CreatedBy:   detail.CreatedBy,
		CreatorName: detail.CreatorName,
		CreatedAt:   detail.CreatedAt,
		IsActive:    detail.IsActive,
		TimeLimit:   detail.TimeLimit,
	}
}

// Create handles POST /quizzes.
func (h *QuizHandler) Create(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	creator, err := getCurrentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	detail, err := h.quizService.CreateQuiz(c.Request.Context(), creator, req.Title, req.Description, req.Questions, req.TimeLimit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create quiz")
		return
	}

	c.JSON(http.StatusOK, MapQuizToResponse(detail))
}

// List handles GET /quizzes.
func (h *QuizHandler) List(c *gin.Context) {
	details, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve quizzes")
		return
	}

	responses := make([]QuizResponse, len(details))
	for i := range details {
		responses[i] = MapQuizToResponse(&details[i])
	}
	c.JSON(http.StatusOK, responses)
}
