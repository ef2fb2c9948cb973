package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "")
	t.Setenv("LOW_STOCK_THRESHOLD", "")
	t.Setenv("LOW_STOCK_OUTPUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "inventory.xml", cfg.SourcePath)
	assert.Equal(t, 10, cfg.Threshold)
	assert.Equal(t, "low_stock.csv", cfg.OutputPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "stock/warehouse.xml")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("LOW_STOCK_OUTPUT", "out/low.csv")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "stock/warehouse.xml", cfg.SourcePath)
	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, "out/low.csv", cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresBadThreshold(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "ten")

	assert.Equal(t, 10, Load().Threshold)
}
