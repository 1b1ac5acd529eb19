package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vivianokoye/nutristat/internal/dataset"
)

// readInput loads the raw survey export. Excel workbooks and CSV exports are
// both accepted; anything else is rejected up front.
func readInput(path, sheet string) (*dataset.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return dataset.ReadXLSX(path, sheet)
	case ".csv":
		return dataset.ReadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

// loadSnapshot reads the prepared snapshot every analysis section consumes.
func loadSnapshot() (*dataset.Table, error) {
	if _, err := os.Stat(cfg.SnapshotPath); err != nil {
		return nil, fmt.Errorf("snapshot %s not found; run `nutristat prepare` first", cfg.SnapshotPath)
	}
	t, err := dataset.ReadCSV(cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return t, nil
}

func ensureResultsDir() error {
	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	return nil
}
