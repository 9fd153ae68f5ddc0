package core

import "testing"

func sample() []Expense {
	return []Expense{
		{Description: "Jio", Amount: Money{Cents: 19500}, Category: "Bills", Month: "January", Date: "2026-01-05"},
		{Description: "Samosa", Amount: Money{Cents: 3000}, Category: "Food", Month: "January", Date: "2026-01-10"},
		{Description: "Kurkure", Amount: Money{Cents: 9000}, Category: "Snacks", Month: "February", Date: "2026-02-05"},
		{Description: "Dil Kusheh", Amount: Money{Cents: 9000}, Category: "Food", Month: "February", Date: "2026-02-15"},
	}
}

func TestByMonthCalendarOrder(t *testing.T) {
	// Records deliberately out of calendar order
	expenses := []Expense{
		{Amount: Money{Cents: 100}, Category: "Food", Month: "March"},
		{Amount: Money{Cents: 200}, Category: "Food", Month: "January"},
		{Amount: Money{Cents: 300}, Category: "Food", Month: "March"},
	}
	got := ByMonth(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 months, got %d", len(got))
	}
	if got[0].Month != "January" || got[1].Month != "March" {
		t.Fatalf("expected calendar order, got %s, %s", got[0].Month, got[1].Month)
	}
	if got[1].Total.Cents != 400 || got[1].Count != 2 {
		t.Fatalf("March aggregate wrong: %+v", got[1])
	}
}

func TestByCategoryOrderingAndTies(t *testing.T) {
	got := ByCategory(sample())
	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got))
	}
	if got[0].Category != "Bills" || got[0].Total.Cents != 19500 {
		t.Fatalf("expected Bills first, got %+v", got[0])
	}
	// Food (12000) beats Snacks (9000); equal sums would break
	// alphabetically
	if got[1].Category != "Food" || got[2].Category != "Snacks" {
		t.Fatalf("expected Food then Snacks, got %s, %s", got[1].Category, got[2].Category)
	}

	tie := []Expense{
		{Amount: Money{Cents: 500}, Category: "Zeta"},
		{Amount: Money{Cents: 500}, Category: "Alpha"},
	}
	tied := ByCategory(tie)
	if tied[0].Category != "Alpha" {
		t.Fatalf("expected alphabetical tie-break, got %s", tied[0].Category)
	}
}

func TestSummarizeTotalsAgree(t *testing.T) {
	s := Summarize(sample())

	if s.Overall.Count != 4 {
		t.Fatalf("overall count: expected 4, got %d", s.Overall.Count)
	}
	var monthSum, catSum int64
	for _, m := range s.ByMonth {
		monthSum += m.Total.Cents
	}
	for _, c := range s.ByCategory {
		catSum += c.Total.Cents
	}
	if monthSum != s.Overall.Total.Cents || catSum != s.Overall.Total.Cents {
		t.Fatalf("totals disagree: months=%d categories=%d overall=%d",
			monthSum, catSum, s.Overall.Total.Cents)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if len(s.ByMonth) != 0 || len(s.ByCategory) != 0 || s.Overall.Count != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
	if _, ok := TopCategory(s.ByCategory); ok {
		t.Fatalf("expected no top category for empty set")
	}
}

func TestTopCategory(t *testing.T) {
	top, ok := TopCategory(ByCategory(sample()))
	if !ok || top.Category != "Bills" {
		t.Fatalf("expected Bills, got %+v (ok=%v)", top, ok)
	}
}
