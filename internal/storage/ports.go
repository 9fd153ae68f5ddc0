package storage

import (
	"context"

	"paisa/internal/core"
)

// Store is the row-store contract the expense service depends on.
// Implementations must assign ID and CreatedAt on insert and serialize
// access so each call is atomic.
type Store interface {
	// Insert persists a validated expense and returns it with ID and
	// CreatedAt assigned.
	Insert(ctx context.Context, e core.Expense) (core.Expense, error)

	// ListAll returns records ordered by date descending. An empty
	// filter or "All" returns every record.
	ListAll(ctx context.Context, month string) ([]core.Expense, error)

	// GetByID reports whether a record exists and returns it.
	GetByID(ctx context.Context, id int64) (core.Expense, bool, error)

	// DeleteByID removes a record, reporting whether it existed.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// Aggregate computes the summary over the full record set.
	Aggregate(ctx context.Context) (core.Summary, error)

	Close() error
}
