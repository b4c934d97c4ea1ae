package storage

import (
	"bytes"
	"campuskit/lms-app/internal/config"
	"context"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// s3Storage implements the FileStorage interface using an S3-compatible
// backend. Objects are keyed as <kind>/<storedName>.
type s3Storage struct {
	client     *s3.Client
	bucketName string
	log        zerolog.Logger
}

// NewS3Storage creates a new S3 storage service instance.
func NewS3Storage(cfg config.S3Config, log zerolog.Logger) (FileStorage, error) {
	// Custom resolver for S3-compatible endpoints (like MinIO, DigitalOcean Spaces)
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fall back to default AWS endpoint resolution
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, err
	}

	// Path-style addressing is required by most S3-compatible services.
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("S3 file storage initialized")

	return &s3Storage{
		client:     s3Client,
		bucketName: cfg.BucketName,
		log:        log,
	}, nil
}

// Save uploads the full content under a generated object key.
func (s *s3Storage) Save(ctx context.Context, kind Kind, originalName string, content io.Reader) (StoredFile, error) {
	ext := filepath.Ext(originalName)
	storedName := uuid.NewString() + ext
	objectKey := string(kind) + "/" + storedName

	// PutObject needs a known length; buffer the payload first.
	data, err := io.ReadAll(content)
	if err != nil {
		return StoredFile{}, err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object")
		return StoredFile{}, err
	}

	s.log.Info().
		Str("key", objectKey).
		Str("original", originalName).
		Int("size", len(data)).
		Msg("object stored")

	return StoredFile{Name: storedName, Size: int64(len(data))}, nil
}

// Delete removes an object from the bucket.
func (s *s3Storage) Delete(ctx context.Context, kind Kind, storedName string) error {
	objectKey := string(kind) + "/" + filepath.Base(storedName)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", objectKey).Msg("failed to delete object")
		return err
	}
	return nil
}
