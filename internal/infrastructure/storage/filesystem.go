package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
)

// Ensure FilesystemStore implements DocumentStore
var _ billingapp.DocumentStore = (*FilesystemStore)(nil)

// FilesystemStore writes documents to a local directory. It backs the
// "stub" storage driver so development setups work without an S3 bucket.
// Links are plain file:// URLs and never expire.
type FilesystemStore struct {
	baseDir string
	logger  *zap.Logger
}

// NewFilesystemStore creates a FilesystemStore rooted at baseDir,
// creating the directory if needed.
func NewFilesystemStore(baseDir string, logger *zap.Logger) (*FilesystemStore, error) {
	if baseDir == "" {
		baseDir = "./data/documents"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FilesystemStore{baseDir: abs, logger: logger}, nil
}

// Store writes the document under the base directory, mirroring the key's
// path segments as subdirectories.
func (s *FilesystemStore) Store(ctx context.Context, key string, data []byte, contentType string) (*billingapp.StoredDocument, error) {
	if key == "" {
		return nil, errors.New("storage key is required")
	}

	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("storage key escapes base directory: %s", key)
	}

	path := filepath.Join(s.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	s.logger.Debug("Document written",
		zap.String("path", path),
		zap.Int("size", len(data)),
	)

	return &billingapp.StoredDocument{
		Key:  key,
		URL:  "file://" + filepath.ToSlash(path),
		Size: int64(len(data)),
	}, nil
}

// BaseDir returns the resolved storage root
func (s *FilesystemStore) BaseDir() string {
	return s.baseDir
}
