package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/vivianokoye/nutristat/internal/config"
)

var (
	// Global flags (wired to config in loadConfig)
	cfgFile        string
	flagInput      string
	flagSheet      string
	flagSnapshot   string
	flagResultsDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "nutristat",
	Short: "nutristat: batch statistical analysis of an adolescent nutrition survey",
	Long: `nutristat prepares a raw nutrition survey export and runs the study's
analysis sections over it: socio-demographics, anthropometry, dietary
patterns, diet factors, dietary habits, and the model-based analyses.
Each stage writes its results workbook and charts under the results
directory; the report stage compiles them into a single document.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nutristat.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "raw survey workbook or CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "workbook sheet name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSnapshot, "snapshot", "", "prepared snapshot CSV path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagResultsDir, "results-dir", "", "results output directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still allow most commands to run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("input") && flagInput != "" {
		cfg.InputPath = flagInput
	}
	if f.Changed("sheet") {
		cfg.Sheet = flagSheet
	}
	if f.Changed("snapshot") && flagSnapshot != "" {
		cfg.SnapshotPath = flagSnapshot
	}
	if f.Changed("results-dir") && flagResultsDir != "" {
		cfg.ResultsDir = flagResultsDir
	}
}
