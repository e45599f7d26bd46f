package storage

import (
	"context"
	"testing"

	"companyexport/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func seededStorage() *StorageMemory {
	s := NewStorageMemory()
	s.AddCompany(models.Company{Name: "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)", Country: "Germany"})
	s.AddCompany(models.Company{Name: "Continental Resources Inc (NYS: CLR)", Country: "United States"})
	s.AddCompany(models.Company{Name: "Boeing Co. (The) (NYS: BA)", Country: "United States"})
	s.AddCompany(models.Company{Name: "Denso Corp (NBB: DNZO Y)", Country: "Japan"})
	return s
}

func TestStorageMemory_FindByNameExact(t *testing.T) {
	s := seededStorage()

	docs, err := s.FindByNameExact(context.Background(), "continental ag (germany, fed. rep.) (nbb: ctta y)", "", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)", docs[0].Name)

	// a substring of a stored name is not an exact match
	docs, err = s.FindByNameExact(context.Background(), "Continental", "", 10)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestStorageMemory_FindByNameContains(t *testing.T) {
	s := seededStorage()

	docs, err := s.FindByNameContains(context.Background(), "continental", "", 10)
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestStorageMemory_CountryConstraint(t *testing.T) {
	s := seededStorage()

	docs, err := s.FindByNameContains(context.Background(), "continental", "Germany", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Germany", docs[0].Country)

	// country is matched exactly, as stored
	docs, err = s.FindByNameContains(context.Background(), "continental", "germany", 10)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestStorageMemory_Limit(t *testing.T) {
	s := seededStorage()

	docs, err := s.FindByNameContains(context.Background(), "continental", "", 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestStorageMemory_InsertIngest(t *testing.T) {
	s := NewStorageMemory()

	id1, err := s.InsertIngest(context.Background(), map[string]any{"probe": true})
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := s.InsertIngest(context.Background(), map[string]any{"probe": true})
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
}

func TestStorageMemory_EstimatedCount(t *testing.T) {
	s := seededStorage()

	n, err := s.EstimatedCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
}

func TestStorageMemory_Ping(t *testing.T) {
	require.NoError(t, NewStorageMemory().Ping(context.Background()))
}
