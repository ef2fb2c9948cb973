package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"inventory-report/config"
	"inventory-report/services"
	"inventory-report/storage"
	"inventory-report/utils"
)

func main() {
	logger := utils.NewLogger().With("run", uuid.NewString())
	cfg := config.Load()

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, logger *utils.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inventory-report",
		Short:         "Analyze an XML inventory file and export low-stock items to CSV",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			return run(cfg, logger, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.SourcePath, "file", cfg.SourcePath, "XML inventory file path")
	flags.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "low-stock threshold; items with a smaller quantity are reported")
	flags.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "CSV file for low-stock items")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug, info, warn, error)")

	return cmd
}

func run(cfg *config.Config, logger *utils.Logger, out io.Writer) error {
	logger.Info("=== Inventory report starting ===")
	logger.Info("Config — file: %s | threshold: %d | output: %s",
		cfg.SourcePath, cfg.Threshold, cfg.OutputPath)

	result, err := services.NewParser(logger).Parse(cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("inventory unusable: %w", err)
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(out, "No valid inventory data, stopping.")
		return nil
	}

	report := services.NewAnalyzer(logger).Analyze(result.Records, cfg.Threshold)
	report.Skipped = len(result.Rejected)
	services.NewReporter(out).Print(report)

	if len(report.LowStock) == 0 {
		return nil
	}

	if err := storage.ExportLowStock(cfg.OutputPath, report.LowStock); err != nil {
		return fmt.Errorf("export low-stock items: %w", err)
	}
	fmt.Fprintf(out, "  Exported CSV → %s\n\n", cfg.OutputPath)
	return nil
}
