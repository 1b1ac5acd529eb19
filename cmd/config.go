package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/vivianokoye/nutristat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nutristat configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		path := cfgFile
		if path == "" {
			path = cfgpkg.DefaultFile
		}
		fmt.Printf("✓ Config written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("input_path:    %s\n", cfg.InputPath)
		fmt.Printf("sheet:         %s\n", cfg.Sheet)
		fmt.Printf("snapshot_path: %s\n", cfg.SnapshotPath)
		fmt.Printf("results_dir:   %s\n", cfg.ResultsDir)
		fmt.Printf("summary_path:  %s\n", cfg.SummaryPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
