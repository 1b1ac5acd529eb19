package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
	"github.com/vivianokoye/nutristat/internal/sections"
)

// runSection loads the snapshot, runs one analysis section against the
// results directory, and reports the workbook it produced.
func runSection(title, workbook string, fn func(*dataset.Table, string) error) error {
	t, err := loadSnapshot()
	if err != nil {
		return err
	}
	if err := ensureResultsDir(); err != nil {
		return err
	}
	fmt.Printf("Running %s (%d participants)...\n", title, t.Len())
	if err := fn(t, cfg.ResultsDir); err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}
	fmt.Printf("   ✓ Results saved to %s/%s\n", cfg.ResultsDir, workbook)
	return nil
}

var sociodemoCmd = &cobra.Command{
	Use:   "sociodemo",
	Short: "Section A: socio-demographic characteristics by residence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSection("socio-demographic analysis", "section_a_sociodemographic.xlsx", sections.Sociodemographic)
	},
}

var anthroCmd = &cobra.Command{
	Use:   "anthro",
	Short: "Section B: anthropometry and BMI comparisons",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSection("anthropometric analysis", "section_b_anthropometry.xlsx", sections.Anthropometry)
	},
}

var dietaryCmd = &cobra.Command{
	Use:   "dietary",
	Short: "Section C: food frequency patterns and dietary diversity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSection("dietary pattern analysis", "section_c_dietary_patterns.xlsx",
			func(t *dataset.Table, dir string) error {
				return sections.Dietary(t, prep.DefaultCatalog(), dir)
			})
	},
}

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Section D: factors affecting dietary habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSection("diet factor analysis", "section_d_diet_factors.xlsx", sections.Factors)
	},
}

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Section E: dietary habits by residence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSection("dietary habit analysis", "section_e_dietary_habits.xlsx", sections.Habits)
	},
}

var advancedCmd = &cobra.Command{
	Use:   "advanced",
	Short: "Logistic regression for undernutrition and dietary pattern clustering",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSection("advanced analysis", "advanced_analysis.xlsx",
			func(t *dataset.Table, dir string) error {
				return sections.Advanced(t, prep.DefaultCatalog(), dir)
			})
	},
}

func init() {
	rootCmd.AddCommand(sociodemoCmd, anthroCmd, dietaryCmd, factorsCmd, habitsCmd, advancedCmd)
}
