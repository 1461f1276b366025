package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
)

func TestNewS3DocumentStore_Validation(t *testing.T) {
	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := config.StorageConfig{
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		}
		_, err := NewS3DocumentStore(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		cfg := config.StorageConfig{
			Bucket:          "test-bucket",
			SecretAccessKey: "test-secret",
		}
		_, err := NewS3DocumentStore(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		cfg := config.StorageConfig{
			Bucket:      "test-bucket",
			AccessKeyID: "test-key",
		}
		_, err := NewS3DocumentStore(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key is required")
	})

	t.Run("valid config creates store", func(t *testing.T) {
		cfg := config.StorageConfig{
			Bucket:          "test-bucket",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
			Region:          "ap-south-1",
			Endpoint:        "http://localhost:9000",
			UsePathStyle:    true,
			PresignExpiry:   30 * time.Minute,
		}
		store, err := NewS3DocumentStore(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.Equal(t, "test-bucket", store.GetBucket())
		assert.Equal(t, 30*time.Minute, store.presignExpiry)
	})

	t.Run("endpoint without scheme gets https prefix", func(t *testing.T) {
		cfg := config.StorageConfig{
			Bucket:          "test-bucket",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
			Endpoint:        "minio.internal:9000",
		}
		store, err := NewS3DocumentStore(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("empty endpoint targets real AWS", func(t *testing.T) {
		cfg := config.StorageConfig{
			Bucket:          "test-bucket",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		}
		store, err := NewS3DocumentStore(cfg)
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("default presign expiry is 15 minutes", func(t *testing.T) {
		cfg := config.StorageConfig{
			Bucket:          "test-bucket",
			AccessKeyID:     "test-key",
			SecretAccessKey: "test-secret",
		}
		store, err := NewS3DocumentStore(cfg)
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, store.presignExpiry)
	})
}

func TestS3DocumentStore_Options(t *testing.T) {
	baseConfig := config.StorageConfig{
		Bucket:          "test-bucket",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
	}

	t.Run("WithLogger sets custom logger", func(t *testing.T) {
		store, err := NewS3DocumentStore(baseConfig, WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)
		assert.NotNil(t, store.logger)
	})

	t.Run("WithPresignExpiry overrides duration", func(t *testing.T) {
		store, err := NewS3DocumentStore(baseConfig, WithPresignExpiry(1*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1*time.Hour, store.presignExpiry)
	})
}

func TestS3DocumentStore_Store_ValidationOnly(t *testing.T) {
	cfg := config.StorageConfig{
		Bucket:          "test-bucket",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		Endpoint:        "http://localhost:9000",
	}
	store, err := NewS3DocumentStore(cfg)
	require.NoError(t, err)

	t.Run("empty storage key returns error", func(t *testing.T) {
		doc, err := store.Store(context.Background(), "", []byte("data"), "application/pdf")
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Contains(t, err.Error(), "storage key is required")
	})
}
