// Package store exposes typed accessors over the schema: entity creation,
// relationship traversal, and maintenance of the Game–User association.
package store

import "gorm.io/gorm"

// Store wraps a database handle. All relationship traversal goes through
// its methods rather than ad-hoc queries on the handle.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
