// Package services mediates between the HTTP layer and the row store:
// input contracts are enforced here and storage results are translated
// into the API-agnostic error taxonomy.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"paisa/internal/core"
	"paisa/internal/storage"
)

// EventPublisher receives notifications about completed mutations.
// Publishing is best-effort; a broker failure never fails the request.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, id int64) error
	PublishExpenseDeleted(ctx context.Context, id int64) error
	Close() error
}

// ExpenseService validates input and mediates all reads and writes
// against the store.
type ExpenseService struct {
	store     storage.Store
	publisher EventPublisher
}

// NewExpenseService wires the service to a store and an optional event
// publisher (nil disables events).
func NewExpenseService(store storage.Store, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
	}
}

// CreateExpense persists a validated expense and returns the stored
// record with its assigned id and timestamp.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, &ValidationError{Err: err}
	}

	created, err := s.store.Insert(ctx, e)
	if err != nil {
		return core.Expense{}, &StorageError{Op: "create expense", Err: err}
	}

	if err := s.publishCreated(ctx, created.ID); err != nil {
		// Expense is saved; the event is advisory
		slog.ErrorContext(ctx, "Failed to publish created event",
			"id", created.ID, "error", err)
	}

	return created, nil
}

// ListExpenses returns records for the given month filter. An empty
// filter or "All" means every record.
func (s *ExpenseService) ListExpenses(ctx context.Context, month string) ([]core.Expense, error) {
	expenses, err := s.store.ListAll(ctx, month)
	if err != nil {
		return nil, &StorageError{Op: "list expenses", Err: err}
	}
	return expenses, nil
}

// GetSummary returns the three derived collections over the full set.
func (s *ExpenseService) GetSummary(ctx context.Context) (core.Summary, error) {
	summary, err := s.store.Aggregate(ctx)
	if err != nil {
		return core.Summary{}, &StorageError{Op: "aggregate expenses", Err: err}
	}
	return summary, nil
}

// DeleteExpense removes the record with the given id.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete expense", Err: err}
	}
	if !removed {
		return &NotFoundError{ID: id}
	}

	if err := s.publishDeleted(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish deleted event",
			"id", id, "error", err)
	}

	return nil
}

func (s *ExpenseService) publishCreated(ctx context.Context, id int64) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.PublishExpenseCreated(ctx, id)
}

func (s *ExpenseService) publishDeleted(ctx context.Context, id int64) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.PublishExpenseDeleted(ctx, id)
}

// Close releases the store and the publisher.
func (s *ExpenseService) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}
	return nil
}
