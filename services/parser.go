package services

import (
	"inventory-report/models"
	"inventory-report/source"
	"inventory-report/utils"
)

// Parser reads an inventory document and returns its valid records.
type Parser struct {
	logger  *utils.Logger
	cleaner *Cleaner
}

func NewParser(logger *utils.Logger) *Parser {
	return &Parser{logger: logger, cleaner: NewCleaner(logger)}
}

// Parse returns records in document order. A document-level failure yields
// an empty result together with the error, which the caller reports; bad
// items are only skipped.
func (p *Parser) Parse(path string) (*models.ParseResult, error) {
	p.logger.Debug("[parser] Reading %s", path)

	raw, err := source.ReadFile(path)
	if err != nil {
		return &models.ParseResult{}, err
	}

	p.logger.Info("[parser] Found %d items in %s", len(raw), path)
	return p.cleaner.Clean(raw), nil
}
