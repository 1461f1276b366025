// Package storage provides document stores for generated PDF files.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
)

// Ensure S3DocumentStore implements DocumentStore
var _ billingapp.DocumentStore = (*S3DocumentStore)(nil)

// S3DocumentStore keeps printed documents in an S3 bucket and hands out
// presigned download links. It works against AWS S3 as well as any
// S3-compatible store (MinIO, RustFS, etc.) via a custom endpoint.
type S3DocumentStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	presignExpiry time.Duration
	logger        *zap.Logger
}

// S3Option is a functional option for configuring S3DocumentStore
type S3Option func(*S3DocumentStore)

// WithLogger sets a custom logger for S3DocumentStore
func WithLogger(logger *zap.Logger) S3Option {
	return func(s *S3DocumentStore) {
		s.logger = logger
	}
}

// WithPresignExpiry overrides how long download links stay valid
func WithPresignExpiry(d time.Duration) S3Option {
	return func(s *S3DocumentStore) {
		s.presignExpiry = d
	}
}

// NewS3DocumentStore creates an S3DocumentStore from configuration.
// An empty endpoint means real AWS S3; set one to target a compatible store.
func NewS3DocumentStore(cfg config.StorageConfig, opts ...S3Option) (*S3DocumentStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKeyID == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretAccessKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"", // session token (not used for static credentials)
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	store := &S3DocumentStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		presignExpiry: cfg.PresignExpiry,
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(store)
	}

	if store.presignExpiry == 0 {
		store.presignExpiry = 15 * time.Minute
	}

	return store, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
// Call this during application startup to ensure the bucket is ready.
func (s *S3DocumentStore) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.logger.Info("Creating storage bucket", zap.String("bucket", s.bucket))
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		// Ignore "BucketAlreadyOwnedByYou" error (race condition)
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	s.logger.Info("Storage bucket created", zap.String("bucket", s.bucket))
	return nil
}

// Store uploads a rendered document and returns a presigned download link.
func (s *S3DocumentStore) Store(ctx context.Context, key string, data []byte, contentType string) (*billingapp.StoredDocument, error) {
	if key == "" {
		return nil, errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	presigned, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate download URL: %w", err)
	}

	s.logger.Debug("Document stored",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("size", len(data)),
	)

	return &billingapp.StoredDocument{
		Key:       key,
		URL:       presigned.URL,
		ExpiresAt: time.Now().Add(s.presignExpiry),
		Size:      int64(len(data)),
	}, nil
}

// GetBucket returns the bucket name
func (s *S3DocumentStore) GetBucket() string {
	return s.bucket
}
