package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Money is a monetary amount in cents. Arithmetic happens on cents;
	// JSON marshalling converts to and from a plain decimal number.
	Money struct {
		Cents int64
	}

	// Expense is the single persisted entity. ID and CreatedAt are
	// assigned by the store on insert and are immutable afterwards.
	Expense struct {
		ID          int64     `json:"id"`
		Description string    `json:"description"`
		Amount      Money     `json:"amount"`
		Category    string    `json:"category"`
		Month       string    `json:"month"`
		Date        string    `json:"date"`
		CreatedAt   time.Time `json:"created_at"`
	}
)

var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyCategory    = errors.New("category is required")
	ErrEmptyMonth       = errors.New("month is required")
	ErrEmptyDate        = errors.New("date is required")
)

// Months lists calendar-month names in canonical order. Monthly
// aggregation output follows this order regardless of record dates.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Categories lists the labels the dashboard offers for new expenses.
// The store does not enforce membership; free-form categories arriving
// through the API are accepted and grouped as-is.
var Categories = []string{"Food", "Bills", "Snacks", "Transport", "Shopping", "Other"}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Month) == "" {
		return ErrEmptyMonth
	}
	if strings.TrimSpace(e.Date) == "" {
		return ErrEmptyDate
	}
	return nil
}

// MonthIndex returns the position of a calendar-month name in Months,
// or len(Months) for unknown names so they sort after known ones.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return len(Months)
}
