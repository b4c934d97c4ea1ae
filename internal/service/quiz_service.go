package service

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository"
	"context"
	"errors"
)

// QuizDetail is a quiz definition joined with the creator's current display
// name.
type QuizDetail struct {
	domain.Quiz
	CreatorName string
}

// QuizService handles quiz definitions. Questions are stored as-is; no
// grading or attempt tracking exists.
type QuizService interface {
	CreateQuiz(ctx context.Context, creator *domain.User, title, description string, questions []domain.Question, timeLimit *int) (*QuizDetail, error)
	ListQuizzes(ctx context.Context) ([]QuizDetail, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
	userRepo repository.UserRepository
}

// NewQuizService creates a new instance of quizService.
func NewQuizService(quizRepo repository.QuizRepository, userRepo repository.UserRepository) QuizService {
	return &quizService{
		quizRepo: quizRepo,
		userRepo: userRepo,
	}
}

// CreateQuiz stores a quiz definition owned by the creator.
func (s *quizService) CreateQuiz(ctx context.Context, creator *domain.User, title, description string, questions []domain.Question, timeLimit *int) (*QuizDetail, error) {
	if title == "" {
		return nil, errors.New("quiz title is required")
	}

	quiz := &domain.Quiz{
		Title:       title,
		Description: description,
		Questions:   questions,
		CreatedBy:   creator.ID,
		TimeLimit:   timeLimit,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	return &QuizDetail{Quiz: *quiz, CreatorName: creator.Name}, nil
}

// ListQuizzes returns all active quizzes with denormalized creator names.
func (s *quizService) ListQuizzes(ctx context.Context) ([]QuizDetail, error) {
	quizzes, err := s.quizRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]QuizDetail, 0, len(quizzes))
	for _, quiz := range quizzes {
		name := UnknownUploader
		if user, err := s.userRepo.GetByID(ctx, quiz.CreatedBy); err == nil {
			name = user.Name
		}
		details = append(details, QuizDetail{Quiz: quiz, CreatorName: name})
	}
	return details, nil
}
