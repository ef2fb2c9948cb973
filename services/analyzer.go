package services

import (
	"github.com/shopspring/decimal"

	"inventory-report/models"
	"inventory-report/utils"
)

type Analyzer struct {
	logger *utils.Logger
}

func NewAnalyzer(logger *utils.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze computes low-stock items, total value and per-category totals in
// one pass. Items with quantity equal to threshold are not low stock.
func (a *Analyzer) Analyze(records []*models.Record, threshold int) *models.InventoryReport {
	report := &models.InventoryReport{
		TotalRecords: len(records),
		Threshold:    threshold,
		LowStock:     make([]*models.Record, 0),
		TotalValue:   decimal.Zero,
		Categories:   models.NewCategorySummary(),
	}

	for _, r := range records {
		value := r.Value()
		report.TotalValue = report.TotalValue.Add(value)
		report.Categories.Add(r.Category, value)

		if r.Quantity < threshold {
			report.LowStock = append(report.LowStock, r)
		}
	}

	a.logger.Debug("[analyzer] %d records, %d below %d, %d categories",
		report.TotalRecords, len(report.LowStock), threshold, report.Categories.Len())
	return report
}
