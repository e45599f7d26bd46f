// Package models holds the document shapes read from and written to MongoDB.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company - a company record as stored in the companies collection.
// The service never mutates these documents; only the projected fields
// below are ever read.
type Company struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	Name              string             `bson:"name" json:"name"`
	Country           string             `bson:"country,omitempty" json:"country,omitempty"`
	Industry          string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Website           string             `bson:"website,omitempty" json:"website,omitempty"`
	TradedAs          string             `bson:"traded_as,omitempty" json:"traded_as,omitempty"`
	NumberOfEmployees int64              `bson:"number_of_employees,omitempty" json:"number_of_employees,omitempty"`
	Revenue           any                `bson:"revenue,omitempty" json:"revenue,omitempty"`
}

// IngestRecord - an append-only ingest log entry: one per POST /ingest,
// never processed further.
type IngestRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceivedAt time.Time          `bson:"received_at" json:"received_at"`
	Payload    any                `bson:"payload" json:"payload"`
}

// ShortcutEntry - one alias table row as returned by GET /shortcuts.
type ShortcutEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
