// Package storage provides interfaces and implementations for reading company records.
//
// The package supports two types of storage:
// 1. StorageDB - for working with a MongoDB collection.
// 2. StorageMemory - for storing records in memory (used in tests).
package storage
