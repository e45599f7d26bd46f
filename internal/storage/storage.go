package storage

import (
	"context"

	"companyexport/internal/domain/models"
)

// StorageService is the document-store surface the service depends on.
type StorageService interface {
	// FindByNameExact returns up to limit companies whose name equals the
	// target in full, ignoring case, optionally constrained to a country.
	FindByNameExact(ctx context.Context, target, country string, limit int64) ([]models.Company, error)
	// FindByNameContains is the fallback substring lookup, same bounds.
	FindByNameContains(ctx context.Context, target, country string, limit int64) ([]models.Company, error)
	// InsertIngest appends one ingest log record and returns its ID.
	InsertIngest(ctx context.Context, payload any) (string, error)
	// EstimatedCount reports the estimated company document count.
	EstimatedCount(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
}
