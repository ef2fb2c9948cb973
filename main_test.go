package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-report/config"
	"inventory-report/utils"
)

const twoItems = `<inventory>
  <item><id>1</id><name>Widget</name><category>A</category><quantity>5</quantity><unit_price>2.50</unit_price></item>
  <item><id>2</id><name>Gadget</name><category>A</category><quantity>20</quantity><unit_price>1.00</unit_price></item>
</inventory>`

func setup(t *testing.T, doc string) (*config.Config, *utils.Logger) {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "inventory.xml")
	require.NoError(t, os.WriteFile(src, []byte(doc), 0o644))

	base, _ := test.NewNullLogger()
	return &config.Config{
		SourcePath: src,
		Threshold:  10,
		OutputPath: filepath.Join(dir, "low_stock.csv"),
		LogLevel:   "info",
	}, utils.FromLogrus(base)
}

func TestRunExportsLowStock(t *testing.T) {
	cfg, logger := setup(t, twoItems)
	var out bytes.Buffer

	require.NoError(t, run(cfg, logger, &out))

	assert.Contains(t, out.String(), "Total records          : 2")
	assert.Contains(t, out.String(), "Below threshold (10)   : 1")
	assert.Contains(t, out.String(), "32.50")
	assert.Contains(t, out.String(), "Exported CSV")

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "id,name,category,quantity,unit_price,value\n1,Widget,A,5,2.50,12.50\n", string(data))
}

func TestRunNoLowStockSkipsExport(t *testing.T) {
	cfg, logger := setup(t, twoItems)
	cfg.Threshold = 5
	var out bytes.Buffer

	require.NoError(t, run(cfg, logger, &out))

	assert.Contains(t, out.String(), "No low-stock items.")
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRunNoValidRecords(t *testing.T) {
	cfg, logger := setup(t, `<inventory><item><id>1</id><quantity>x</quantity></item></inventory>`)
	var out bytes.Buffer

	require.NoError(t, run(cfg, logger, &out))

	assert.Equal(t, "No valid inventory data, stopping.\n", out.String())
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRunMalformedDocumentIsFatal(t *testing.T) {
	cfg, logger := setup(t, `<inventory><item>`)
	var out bytes.Buffer

	err := run(cfg, logger, &out)

	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRunExportFailureIsFatal(t *testing.T) {
	cfg, logger := setup(t, twoItems)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg.OutputPath = filepath.Join(blocker, "low_stock.csv")
	var out bytes.Buffer

	err := run(cfg, logger, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "export low-stock items")
	assert.Contains(t, out.String(), "Low-Stock Items")
	assert.NotContains(t, out.String(), "Exported CSV")
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRootCmdFlagsOverrideConfig(t *testing.T) {
	cfg, logger := setup(t, twoItems)
	customOut := filepath.Join(t.TempDir(), "custom.csv")
	var out bytes.Buffer

	cmd := newRootCmd(cfg, logger)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--threshold", "21", "--output", customOut})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 21, cfg.Threshold)
	assert.Contains(t, out.String(), "Below threshold (21)   : 2")
	assert.FileExists(t, customOut)
	assert.Equal(t, customOut, cfg.OutputPath)
}

func TestRootCmdRejectsBadLogLevel(t *testing.T) {
	cfg, logger := setup(t, twoItems)

	cmd := newRootCmd(cfg, logger)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "chatty"})

	assert.Error(t, cmd.Execute())
}
