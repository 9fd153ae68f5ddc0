package core

import "sort"

type (
	// MonthlyTotal is the aggregate for one calendar month.
	MonthlyTotal struct {
		Month string `json:"month"`
		Total Money  `json:"total"`
		Count int    `json:"count"`
	}

	// CategoryTotal is the aggregate for one category.
	CategoryTotal struct {
		Category string `json:"category"`
		Total    Money  `json:"total"`
		Count    int    `json:"count"`
	}

	// OverallTotal is the aggregate over the whole record set.
	OverallTotal struct {
		Total Money `json:"total"`
		Count int   `json:"count"`
	}

	// Summary bundles the three derived collections served by the
	// summary endpoint and recomputed by the dashboard.
	Summary struct {
		ByMonth    []MonthlyTotal  `json:"byMonth"`
		ByCategory []CategoryTotal `json:"byCategory"`
		Overall    OverallTotal    `json:"overall"`
	}
)

// ByMonth groups expenses by month, summing amounts and counting
// records. Output follows calendar-month order (see Months); months
// with no records are omitted, unknown month names sort last in their
// first-seen order.
func ByMonth(expenses []Expense) []MonthlyTotal {
	totals := make(map[string]*MonthlyTotal)
	var order []string
	for _, e := range expenses {
		t, ok := totals[e.Month]
		if !ok {
			t = &MonthlyTotal{Month: e.Month}
			totals[e.Month] = t
			order = append(order, e.Month)
		}
		t.Total.Cents += e.Amount.Cents
		t.Count++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return MonthIndex(order[i]) < MonthIndex(order[j])
	})
	out := make([]MonthlyTotal, 0, len(order))
	for _, m := range order {
		out = append(out, *totals[m])
	}
	return out
}

// ByCategory groups expenses by category, ordered descending by sum.
// Ties break alphabetically by category name so output is stable.
func ByCategory(expenses []Expense) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var names []string
	for _, e := range expenses {
		t, ok := totals[e.Category]
		if !ok {
			t = &CategoryTotal{Category: e.Category}
			totals[e.Category] = t
			names = append(names, e.Category)
		}
		t.Total.Cents += e.Amount.Cents
		t.Count++
	}
	out := make([]CategoryTotal, 0, len(names))
	for _, c := range names {
		out = append(out, *totals[c])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total.Cents != out[j].Total.Cents {
			return out[i].Total.Cents > out[j].Total.Cents
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Overall sums the full record set.
func Overall(expenses []Expense) OverallTotal {
	var t OverallTotal
	for _, e := range expenses {
		t.Total.Cents += e.Amount.Cents
		t.Count++
	}
	return t
}

// Summarize computes all three aggregates in one pass over the set.
func Summarize(expenses []Expense) Summary {
	return Summary{
		ByMonth:    ByMonth(expenses),
		ByCategory: ByCategory(expenses),
		Overall:    Overall(expenses),
	}
}

// TopCategory returns the highest-sum entry of a category grouping, or
// false when the grouping is empty. The dashboard applies this to the
// month-filtered subset.
func TopCategory(byCategory []CategoryTotal) (CategoryTotal, bool) {
	if len(byCategory) == 0 {
		return CategoryTotal{}, false
	}
	return byCategory[0], true
}
