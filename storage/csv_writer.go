package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"inventory-report/models"
)

// ErrNoRecords is returned when an export is requested for an empty slice.
var ErrNoRecords = errors.New("csv: no records to export")

// Header is the fixed column schema of exported files.
var Header = []string{"id", "name", "category", "quantity", "unit_price", "value"}

// CSVWriter writes records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRecords appends one row per record, in order.
func (c *CSVWriter) WriteRecords(records []*models.Record) error {
	for _, r := range records {
		row := []string{
			r.ID,
			r.Name,
			r.Category,
			strconv.Itoa(r.Quantity),
			plain(r.UnitPrice),
			plain(r.Value()),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.file.Close()
		return fmt.Errorf("csv: flush: %w", err)
	}
	return c.file.Close()
}

// ExportLowStock writes records to a new CSV file at path, replacing any
// existing file.
func ExportLowStock(path string, records []*models.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	w, err := NewCSVWriter(path)
	if err != nil {
		return err
	}
	return Export(w, records)
}

// Export writes records through w and always closes it.
func Export(w RecordWriter, records []*models.Record) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return w.WriteRecords(records)
}

// plain formats d in plain notation, keeping its scale so "2.50" stays
// "2.50" rather than "2.5".
func plain(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
