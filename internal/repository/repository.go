// Package repository builds the MongoDB filters and projections used for
// company lookups.
package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NameExact returns a filter matching documents whose name equals the
// trimmed target in full, ignoring case. The target is escaped, so regex
// metacharacters in company names (parentheses, dots) match literally.
func NameExact(target string) bson.M {
	return bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(target)) + "$",
		Options: "i",
	}}
}

// NameContains returns the fallback filter matching documents whose name
// contains the trimmed target anywhere, ignoring case.
func NameContains(target string) bson.M {
	return bson.M{"name": primitive.Regex{
		Pattern: regexp.QuoteMeta(strings.TrimSpace(target)),
		Options: "i",
	}}
}

// WithCountry adds an exact country constraint (case-sensitive, as stored)
// to an existing filter. An empty country leaves the filter unchanged.
func WithCountry(filter bson.M, country string) bson.M {
	if country != "" {
		filter["country"] = country
	}
	return filter
}

// Projection limits lookup results to the fields the service exposes.
func Projection() bson.M {
	return bson.M{
		"_id":                 1,
		"name":                1,
		"country":             1,
		"industry":            1,
		"website":             1,
		"traded_as":           1,
		"number_of_employees": 1,
		"revenue":             1,
	}
}
