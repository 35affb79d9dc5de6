// Package store provides the search-run history interface and SQLite
// implementation.
package store

import (
	"context"

	"github.com/robocook/foon/internal/model"
)

// RecordParams holds parameters for recording a search run.
type RecordParams struct {
	Strategy string
	Object   string
	State    string
	Found    bool
	Unit     *model.FunctionalUnit
	Elapsed  float64 // milliseconds
}

// ListParams holds parameters for listing recorded runs.
type ListParams struct {
	Strategy string
	Object   string
	Limit    int
}

// Store defines the run history interface.
type Store interface {
	// Record persists one search run. Returns the created run.
	Record(ctx context.Context, p RecordParams) (*model.Run, error)

	// List lists runs matching the given filters, newest first.
	List(ctx context.Context, p ListParams) ([]model.Run, error)

	// Close closes the store.
	Close() error
}
