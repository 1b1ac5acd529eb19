package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every stage in sequence: prepare, all sections, report",
	RunE: func(cmd *cobra.Command, args []string) error {
		stages := []struct {
			name string
			cmd  *cobra.Command
		}{
			{"prepare", prepareCmd},
			{"sociodemo", sociodemoCmd},
			{"anthro", anthroCmd},
			{"dietary", dietaryCmd},
			{"factors", factorsCmd},
			{"habits", habitsCmd},
			{"advanced", advancedCmd},
			{"report", reportCmd},
		}
		start := time.Now()
		for i, stage := range stages {
			fmt.Printf("\n[%d/%d] %s\n", i+1, len(stages), stage.name)
			stageStart := time.Now()
			if err := stage.cmd.RunE(stage.cmd, nil); err != nil {
				return fmt.Errorf("stage %s: %w", stage.name, err)
			}
			fmt.Printf("   ✓ %s finished in %s\n", stage.name, time.Since(stageStart).Round(time.Millisecond))
		}
		fmt.Printf("\n✓ Full analysis finished in %s\n", time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
