package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"inventory-report/models"
	"inventory-report/utils"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidQuantity  = errors.New("quantity is not an integer")
	ErrQuantityRange    = errors.New("quantity is out of range")
	ErrInvalidPrice     = errors.New("unit_price is not a decimal number")
	ErrNegativeQuantity = errors.New("quantity is negative")
	ErrNegativePrice    = errors.New("unit_price is negative")
)

// Cleaner transforms RawItems into validated Records. An invalid item is
// dropped and reported; it never stops the batch.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean validates raw items in order and splits them into records and
// rejections.
func (c *Cleaner) Clean(raw []*models.RawItem) *models.ParseResult {
	seen := utils.NewIDSet()
	result := &models.ParseResult{
		Records: make([]*models.Record, 0, len(raw)),
	}

	for _, r := range raw {
		rec, err := buildRecord(r)
		if err != nil {
			rej := models.Rejection{Position: r.Position, ID: text(r.ID), Err: err}
			c.logger.Warn("[cleaner] Skipping item #%d (id=%q): %v", rej.Position, rej.ID, err)
			result.Rejected = append(result.Rejected, rej)
			continue
		}

		if !seen.Add(rec.ID) {
			c.logger.Warn("[cleaner] Duplicate id %q at item #%d kept", rec.ID, r.Position)
		}
		result.Records = append(result.Records, rec)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d records (skipped %d, unique ids %d)",
		len(raw), len(result.Records), len(result.Rejected), seen.Size())
	return result
}

func buildRecord(r *models.RawItem) (*models.Record, error) {
	id, err := required("id", r.ID)
	if err != nil {
		return nil, err
	}
	name, err := required("name", r.Name)
	if err != nil {
		return nil, err
	}
	category, err := required("category", r.Category)
	if err != nil {
		return nil, err
	}
	qtyText, err := required("quantity", r.Quantity)
	if err != nil {
		return nil, err
	}
	priceText, err := required("unit_price", r.UnitPrice)
	if err != nil {
		return nil, err
	}

	qty, err := parseQuantity(qtyText)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(priceText)
	if err != nil {
		return nil, err
	}

	return &models.Record{
		ID:        id,
		Name:      name,
		Category:  category,
		Quantity:  qty,
		UnitPrice: price,
	}, nil
}

// required returns the trimmed text of a child element, failing when the
// element is absent or blank.
func required(field string, raw *string) (string, error) {
	s := text(raw)
	if s == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return s, nil
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrQuantityRange, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeQuantity, n)
	}
	return n, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativePrice, s)
	}
	return d, nil
}

func text(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}
