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

const noteCollectionName = "notes"

// mongoNoteRepository implements repository.NoteRepository
type mongoNoteRepository struct {
	collection *mongo.Collection
}

// NewMongoNoteRepository creates a new Note repository backed by MongoDB.
func NewMongoNoteRepository(db *mongo.Database) repository.NoteRepository {
	return &mongoNoteRepository{
		collection: db.Collection(noteCollectionName),
	}
}

// Create inserts a new note record.
func (r *mongoNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if note.Title == "" || note.Filename == "" || note.UploadedBy == "" {
		return errors.New("note title, filename, and uploader are required")
	}

	note.ID = uuid.NewString()
	note.UploadedAt = time.Now().UTC()
	note.IsActive = true

	_, err := r.collection.InsertOne(ctx, note)
	return err
}

// ListActive returns all active notes, capped at MaxListResults.
func (r *mongoNoteRepository) ListActive(ctx context.Context) ([]domain.Note, error) {
	opts := options.Find().SetLimit(repository.MaxListResults)
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []domain.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
