package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCreateBackendInvalidType(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.CreateBackend(context.Background(), Config{Type: "mongodb"}); err == nil {
		t.Fatalf("expected error for invalid backend type")
	}
}

func TestCreateMemoryBackendSeeded(t *testing.T) {
	f := NewFactory(nil)
	res, err := f.CreateBackend(context.Background(), Config{
		Type:           MemoryBackend,
		SeedSampleData: true,
	})
	if err != nil {
		t.Fatalf("create backend: %v", err)
	}
	defer res.Cleanup()

	sum, err := res.Service.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Overall.Count != 12 || sum.Overall.Total.Cents != 65500 {
		t.Fatalf("expected seeded store (12 records, 655.00), got %+v", sum.Overall)
	}
}

func TestCreateMemoryBackendUnseeded(t *testing.T) {
	f := NewFactory(nil)
	res, err := f.CreateBackend(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("create backend: %v", err)
	}
	defer res.Cleanup()

	list, err := res.Service.ListExpenses(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %d records", len(list))
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	f := NewFactory(nil)
	res, err := f.CreateBackend(context.Background(), Config{
		Type:           SQLiteBackend,
		SQLiteDBPath:   filepath.Join(t.TempDir(), "paisa.db"),
		SeedSampleData: true,
	})
	if err != nil {
		t.Fatalf("create backend: %v", err)
	}
	defer res.Cleanup()

	sum, err := res.Service.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Overall.Count != 12 {
		t.Fatalf("expected 12 seeded records, got %d", sum.Overall.Count)
	}
}
