package mongo

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const quizCollectionName = "quizzes"

// mongoQuizRepository implements repository.QuizRepository
type mongoQuizRepository struct {
	collection *mongo.Collection
}

// NewMongoQuizRepository creates a new Quiz repository backed by MongoDB.
func NewMongoQuizRepository(db *mongo.Database) repository.QuizRepository {
	return &mongoQuizRepository{
		collection: db.Collection(quizCollectionName),
	}
}

// Create inserts a new quiz definition. Questions are stored verbatim.
func (r *mongoQuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.Title == "" || quiz.CreatedBy == "" {
		return errors.New("quiz title and creator are required")
	}

	quiz.ID = uuid.NewString()
	quiz.CreatedAt = time.Now().UTC()
	quiz.IsActive = true
	if quiz.Questions == nil {
		quiz.Questions = []domain.Question{}
	}

	_, err := r.collection.InsertOne(ctx, quiz)
	return err
}

// ListActive returns all active quizzes, capped at MaxListResults.
func (r *mongoQuizRepository) ListActive(ctx context.Context) ([]domain.Quiz, error) {
	opts := options.Find().SetLimit(repository.MaxListResults)
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quizzes []domain.Quiz
	if err = cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}
