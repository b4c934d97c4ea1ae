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

const videoCollectionName = "videos"

// mongoVideoRepository implements repository.VideoRepository
type mongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new Video repository backed by MongoDB.
func NewMongoVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &mongoVideoRepository{
		collection: db.Collection(videoCollectionName),
	}
}

// Create inserts a new video record.
func (r *mongoVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if video.Title == "" || video.Filename == "" || video.UploadedBy == "" {
		return errors.New("video title, filename, and uploader are required")
	}

	video.ID = uuid.NewString()
	video.UploadedAt = time.Now().UTC()
	video.IsActive = true

	_, err := r.collection.InsertOne(ctx, video)
	return err
}

// ListActive returns all active videos, capped at MaxListResults.
func (r *mongoVideoRepository) ListActive(ctx context.Context) ([]domain.Video, error) {
	opts := options.Find().SetLimit(repository.MaxListResults)
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var videos []domain.Video
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// IncrementViews bumps the view counter with a store-level $inc so concurrent
// fetches never lose updates, and returns the post-increment record.
func (r *mongoVideoRepository) IncrementViews(ctx context.Context, id string) (*domain.Video, error) {
	filter := bson.M{"_id": id, "is_active": true}
	update := bson.M{"$inc": bson.M{"views": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video domain.Video
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}
