package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"paisa/internal/core"
)

// MemoryStore is an in-process Store used by the memory backend and as
// a test double. Semantics mirror SQLiteStore: assigned IDs, date-desc
// listing, aggregation via core.Summarize.
type MemoryStore struct {
	mu     sync.Mutex
	items  []core.Expense
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Insert(_ context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	e.CreatedAt = time.Now().UTC()
	s.items = append(s.items, e)
	return e, nil
}

func (s *MemoryStore) ListAll(_ context.Context, month string) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, 0, len(s.items))
	for _, e := range s.items {
		if month != "" && month != "All" && e.Month != month {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (core.Expense, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.items {
		if e.ID == id {
			return e, true, nil
		}
	}
	return core.Expense{}, false, nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Aggregate(ctx context.Context) (core.Summary, error) {
	expenses, err := s.ListAll(ctx, "")
	if err != nil {
		return core.Summary{}, err
	}
	return core.Summarize(expenses), nil
}
