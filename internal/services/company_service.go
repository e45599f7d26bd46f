// Package services contains the implementation of CompanyServ.
package services

import (
	"context"
	"fmt"

	"companyexport/internal/config"
	"companyexport/internal/domain/models"
	"companyexport/internal/exporter"
	"companyexport/internal/shortcuts"
	"companyexport/internal/storage"
)

// Limit bounds for a single lookup.
const (
	MinLimit = 1
	MaxLimit = 50

	// DefaultLookupLimit applies to GET /company.
	DefaultLookupLimit = 5
	// DefaultExportLimit applies to the export endpoints.
	DefaultExportLimit = 10
)

// NotFoundError reports that both filter stages returned zero documents.
// It carries the resolved query (and country, if given) so the caller can
// name it in the response.
type NotFoundError struct {
	Query   string
	Country string
}

func (e *NotFoundError) Error() string {
	if e.Country != "" {
		return fmt.Sprintf("No company found for '%s' in '%s'", e.Query, e.Country)
	}
	return fmt.Sprintf("No company found for '%s'", e.Query)
}

// CompanyService resolves aliases, looks up company records, and writes
// export artifacts.
type CompanyService interface {
	// Lookup resolves the raw query through the alias table and runs the
	// two-stage name match. It returns the resolved target with the
	// matching documents, or a *NotFoundError after both stages miss.
	Lookup(ctx context.Context, rawQuery, country string, limit int64) (string, []models.Company, error)
	// Export performs a Lookup and writes the result to a JSON file,
	// returning the resolved target, the filename, and the documents.
	Export(ctx context.Context, rawQuery string, limit int64) (string, string, []models.Company, error)
	// Ingest appends an arbitrary payload to the ingest log.
	Ingest(ctx context.Context, payload any) (string, error)
	EstimatedCount(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type CompanyServ struct {
	config         *config.Config
	storageService storage.StorageService
	exp            *exporter.Exporter
}

func NewCompanyService(conf *config.Config, storageService storage.StorageService, exp *exporter.Exporter) CompanyService {
	return &CompanyServ{
		config:         conf,
		storageService: storageService,
		exp:            exp,
	}
}

// clampLimit bounds the page limit to [MinLimit, MaxLimit].
func clampLimit(limit int64) int64 {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func (s *CompanyServ) Lookup(ctx context.Context, rawQuery, country string, limit int64) (string, []models.Company, error) {
	target := shortcuts.Resolve(rawQuery)
	limit = clampLimit(limit)

	docs, err := s.storageService.FindByNameExact(ctx, target, country, limit)
	if err != nil {
		return target, nil, err
	}

	// substring fallback only when the exact stage yields nothing
	if len(docs) == 0 {
		docs, err = s.storageService.FindByNameContains(ctx, target, country, limit)
		if err != nil {
			return target, nil, err
		}
	}

	if len(docs) == 0 {
		return target, nil, &NotFoundError{Query: target, Country: country}
	}

	return target, docs, nil
}

func (s *CompanyServ) Export(ctx context.Context, rawQuery string, limit int64) (string, string, []models.Company, error) {
	target, docs, err := s.Lookup(ctx, rawQuery, "", limit)
	if err != nil {
		return target, "", nil, err
	}

	filename, err := s.exp.Write(docs, target)
	if err != nil {
		return target, "", nil, err
	}

	return target, filename, docs, nil
}

func (s *CompanyServ) Ingest(ctx context.Context, payload any) (string, error) {
	return s.storageService.InsertIngest(ctx, payload)
}

func (s *CompanyServ) EstimatedCount(ctx context.Context) (int64, error) {
	return s.storageService.EstimatedCount(ctx)
}

func (s *CompanyServ) Ping(ctx context.Context) error {
	return s.storageService.Ping(ctx)
}
