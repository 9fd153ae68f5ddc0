package core

import (
	"strings"
	"testing"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -100}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Description: "Masala Dosa",
		Amount:      Money{Cents: 3000},
		Category:    "Food",
		Month:       "January",
		Date:        "2026-01-20",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Expense)
		want   error
	}{
		{"empty description", func(e *Expense) { e.Description = "  " }, ErrEmptyDescription},
		{"zero amount", func(e *Expense) { e.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = Money{Cents: -1} }, ErrInvalidAmount},
		{"empty category", func(e *Expense) { e.Category = "" }, ErrEmptyCategory},
		{"empty month", func(e *Expense) { e.Month = "" }, ErrEmptyMonth},
		{"empty date", func(e *Expense) { e.Date = "" }, ErrEmptyDate},
	}
	for _, tc := range cases {
		e := good
		tc.mutate(&e)
		if err := e.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	long := good
	long.Description = strings.Repeat("x", 201)
	if err := long.Validate(); err == nil {
		t.Fatalf("expected error for long description")
	}
}

func TestMonthIndex(t *testing.T) {
	if MonthIndex("January") != 0 || MonthIndex("December") != 11 {
		t.Fatalf("calendar months out of order")
	}
	if MonthIndex("Frimaire") != len(Months) {
		t.Fatalf("unknown month should sort last")
	}
}
