// Package service defines the interfaces the reconciliation engine consumes.
package service

import (
	"context"

	"github.com/arjunks/khata/internal/model"
)

// Storage is the persistence contract for the category catalog and the
// mapping store.
type Storage interface {
	// Category catalog
	GetCategories(ctx context.Context) ([]model.Category, error)
	AddCategory(ctx context.Context, name string) (*model.Category, error)
	CategoryIDByName(ctx context.Context, name string) (int64, error)

	// Mapping store
	RebuildMappings(ctx context.Context, userID int64, entries []model.MappingEntry) error
	ListMappings(ctx context.Context, userID int64) ([]model.MappingEntry, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
