package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"companyexport/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StorageMemory keeps company records in memory. It mirrors the matching
// semantics of StorageDB and backs the handler and service tests.
type StorageMemory struct {
	companies []models.Company
	ingest    []models.IngestRecord
	mu        sync.Mutex
}

func NewStorageMemory() *StorageMemory {
	return &StorageMemory{}
}

// AddCompany seeds a record.
func (s *StorageMemory) AddCompany(c models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.companies = append(s.companies, c)
}

func (s *StorageMemory) FindByNameExact(_ context.Context, target, country string, limit int64) ([]models.Company, error) {
	trimmed := strings.TrimSpace(target)
	return s.collect(limit, func(c models.Company) bool {
		return strings.EqualFold(c.Name, trimmed) && matchCountry(c, country)
	}), nil
}

func (s *StorageMemory) FindByNameContains(_ context.Context, target, country string, limit int64) ([]models.Company, error) {
	needle := strings.ToLower(strings.TrimSpace(target))
	return s.collect(limit, func(c models.Company) bool {
		return strings.Contains(strings.ToLower(c.Name), needle) && matchCountry(c, country)
	}), nil
}

func matchCountry(c models.Company, country string) bool {
	return country == "" || c.Country == country
}

func (s *StorageMemory) collect(limit int64, match func(models.Company) bool) []models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []models.Company
	for _, c := range s.companies {
		if int64(len(docs)) >= limit {
			break
		}
		if match(c) {
			docs = append(docs, c)
		}
	}
	return docs
}

func (s *StorageMemory) InsertIngest(_ context.Context, payload any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.IngestRecord{
		ID:         primitive.NewObjectID(),
		ReceivedAt: time.Now().UTC(),
		Payload:    payload,
	}
	s.ingest = append(s.ingest, rec)
	return rec.ID.Hex(), nil
}

func (s *StorageMemory) EstimatedCount(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.companies)), nil
}

func (s *StorageMemory) Ping(_ context.Context) error {
	return nil
}
