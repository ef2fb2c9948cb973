package models

import "github.com/shopspring/decimal"

// RawItem holds the unprocessed text of one <item> element exactly as it
// appeared in the source document. A nil field means the child element was
// absent.
type RawItem struct {
	Position  int
	ID        *string
	Name      *string
	Category  *string
	Quantity  *string
	UnitPrice *string
}

// Record is a validated inventory entry.
type Record struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Value returns Quantity × UnitPrice. It is never cached so it cannot drift
// from the fields it is derived from.
func (r *Record) Value() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// Rejection describes an item that was skipped during cleaning.
type Rejection struct {
	Position int
	ID       string
	Err      error
}

// ParseResult is the outcome of parsing one inventory document.
type ParseResult struct {
	Records  []*Record
	Rejected []Rejection
}
