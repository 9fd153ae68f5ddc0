package storage

import (
	"context"
	"fmt"
	"log/slog"

	"paisa/internal/core"
)

// sampleExpenses is the fixed starter set inserted into an empty store:
// two months of transactions, 655.00 in total.
var sampleExpenses = []core.Expense{
	{Description: "Jio", Amount: core.Money{Cents: 19500}, Category: "Bills", Month: "January", Date: "2026-01-05"},
	{Description: "Masala Pesarattu", Amount: core.Money{Cents: 3000}, Category: "Food", Month: "January", Date: "2026-01-08"},
	{Description: "Samosa", Amount: core.Money{Cents: 3000}, Category: "Food", Month: "January", Date: "2026-01-10"},
	{Description: "Jilebi", Amount: core.Money{Cents: 5000}, Category: "Food", Month: "January", Date: "2026-01-12"},
	{Description: "Moondal", Amount: core.Money{Cents: 2000}, Category: "Food", Month: "January", Date: "2026-01-14"},
	{Description: "Panipuri", Amount: core.Money{Cents: 2000}, Category: "Food", Month: "January", Date: "2026-01-16"},
	{Description: "Vada", Amount: core.Money{Cents: 3000}, Category: "Food", Month: "January", Date: "2026-01-18"},
	{Description: "Masala Dosa", Amount: core.Money{Cents: 3000}, Category: "Food", Month: "January", Date: "2026-01-20"},
	{Description: "Samosa", Amount: core.Money{Cents: 4000}, Category: "Food", Month: "January", Date: "2026-01-25"},
	{Description: "Puri", Amount: core.Money{Cents: 3000}, Category: "Food", Month: "January", Date: "2026-01-28"},
	{Description: "Kurkure & Ice Cream", Amount: core.Money{Cents: 9000}, Category: "Snacks", Month: "February", Date: "2026-02-05"},
	{Description: "Samosa & Dil Kusheh", Amount: core.Money{Cents: 9000}, Category: "Food", Month: "February", Date: "2026-02-15"},
}

// SeedIfEmpty inserts the sample set when the store holds no records.
// It never re-seeds once any record exists, so repeated startups are
// safe.
func SeedIfEmpty(ctx context.Context, s Store) error {
	existing, err := s.ListAll(ctx, "")
	if err != nil {
		return fmt.Errorf("check existing records: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, e := range sampleExpenses {
		if _, err := s.Insert(ctx, e); err != nil {
			return fmt.Errorf("seed expense %q: %w", e.Description, err)
		}
	}

	slog.InfoContext(ctx, "Seeded empty store with sample expenses",
		"count", len(sampleExpenses))
	return nil
}
