package models

import "github.com/shopspring/decimal"

// CategorySummary maps category name to accumulated value, remembering the
// order in which categories were first seen.
type CategorySummary struct {
	order  []string
	totals map[string]decimal.Decimal
}

// NewCategorySummary returns an empty summary.
func NewCategorySummary() *CategorySummary {
	return &CategorySummary{totals: make(map[string]decimal.Decimal)}
}

// Add inserts category with a zero total if it is new, then adds amount.
func (s *CategorySummary) Add(category string, amount decimal.Decimal) {
	current, ok := s.totals[category]
	if !ok {
		s.order = append(s.order, category)
		current = decimal.Zero
	}
	s.totals[category] = current.Add(amount)
}

// Get returns the total for category and whether it is present.
func (s *CategorySummary) Get(category string) (decimal.Decimal, bool) {
	v, ok := s.totals[category]
	return v, ok
}

// Categories returns category names in first-seen order.
func (s *CategorySummary) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *CategorySummary) Len() int {
	return len(s.order)
}

// Total sums every category total.
func (s *CategorySummary) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range s.order {
		sum = sum.Add(s.totals[c])
	}
	return sum
}

// InventoryReport holds the computed analytics over the parsed records.
type InventoryReport struct {
	TotalRecords int
	Skipped      int
	Threshold    int
	LowStock     []*Record
	TotalValue   decimal.Decimal
	Categories   *CategorySummary
}
