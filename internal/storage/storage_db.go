package storage

import (
	"context"
	"fmt"
	"time"

	"companyexport/internal/config"
	"companyexport/internal/domain/models"
	"companyexport/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ingestCollection is the append-only collection for POST /ingest payloads.
const ingestCollection = "ingest_logs"

// StorageDB - MongoDB-backed storage.
type StorageDB struct {
	client    *mongo.Client
	companies *mongo.Collection
	ingest    *mongo.Collection
}

// NewStorageDB connects to MongoDB using the configured URI and returns a
// storage over the companies collection.
func NewStorageDB(ctx context.Context, c *config.Config) (*StorageDB, error) {
	opts := options.Client().
		ApplyURI(c.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to MongoDB: %w", err)
	}

	db := client.Database(c.DBName)

	return &StorageDB{
		client:    client,
		companies: db.Collection(c.CompaniesColl),
		ingest:    db.Collection(ingestCollection),
	}, nil
}

// FindByNameExact returns companies matching the anchored case-insensitive
// name filter.
func (s *StorageDB) FindByNameExact(ctx context.Context, target, country string, limit int64) ([]models.Company, error) {
	filter := repository.WithCountry(repository.NameExact(target), country)
	return s.find(ctx, filter, limit)
}

// FindByNameContains returns companies matching the case-insensitive
// substring name filter.
func (s *StorageDB) FindByNameContains(ctx context.Context, target, country string, limit int64) ([]models.Company, error) {
	filter := repository.WithCountry(repository.NameContains(target), country)
	return s.find(ctx, filter, limit)
}

func (s *StorageDB) find(ctx context.Context, filter bson.M, limit int64) ([]models.Company, error) {
	opts := options.Find().
		SetProjection(repository.Projection()).
		SetLimit(limit)

	cursor, err := s.companies.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("company find: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []models.Company
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("company decode: %w", err)
	}
	return docs, nil
}

// InsertIngest appends the payload with a received timestamp and returns the
// inserted document ID.
func (s *StorageDB) InsertIngest(ctx context.Context, payload any) (string, error) {
	doc := models.IngestRecord{
		ReceivedAt: time.Now().UTC(),
		Payload:    payload,
	}

	res, err := s.ingest.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("ingest insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// EstimatedCount reports the estimated number of company documents.
func (s *StorageDB) EstimatedCount(ctx context.Context) (int64, error) {
	return s.companies.EstimatedDocumentCount(ctx)
}

// Ping checks the connection to the database.
func (s *StorageDB) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (s *StorageDB) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
