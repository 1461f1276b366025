package storage

import (
	"fmt"

	"go.uber.org/zap"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
)

// NewDocumentStore builds the document store selected by storage.driver.
func NewDocumentStore(cfg config.StorageConfig, logger *zap.Logger) (billingapp.DocumentStore, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3DocumentStore(cfg, WithLogger(logger))
	case "stub", "":
		return NewFilesystemStore(cfg.StubDir, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
