package storage

import "inventory-report/models"

// RecordWriter is the interface any export backend must satisfy.
type RecordWriter interface {
	WriteRecords(records []*models.Record) error
	Close() error
}
