package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// artifact names one section's results workbook and the sheets the compiled
// report pulls from it. Sheet names are the contract between the section
// writers and this reader.
type artifact struct {
	Title  string
	File   string
	Sheets []string
}

var artifacts = []artifact{
	{"Section A: Socio-Demographic Analysis", "section_a_sociodemographic.xlsx", []string{"Chi-Square Tests"}},
	{"Section B: Anthropometric Analysis", "section_b_anthropometry.xlsx", []string{"T-Tests", "BMI Chi-Square Test"}},
	{"Section C: Dietary Assessment", "section_c_dietary_patterns.xlsx", []string{"Chi-Square Tests", "DDS T-Test"}},
	{"Section D: Factors Affecting Diet", "section_d_diet_factors.xlsx", []string{"Chi-Square Tests", "Correlations"}},
	{"Section E: Dietary Habits", "section_e_dietary_habits.xlsx", []string{"Chi-Square Tests"}},
	{"Advanced Analysis", "advanced_analysis.xlsx", []string{"Logistic Regression", "Model Performance", "Cluster Profiles"}},
}

// Compiled is the assembled cross-section report.
type Compiled struct {
	Markdown string
	Key      []Table
	Warnings []string
}

// Compile gathers every section workbook under resultsDir into one markdown
// report plus the key significant-findings tables for the console. Sections
// that have not been run yet produce a warning, not a failure.
func Compile(resultsDir, runID string) (*Compiled, error) {
	c := &Compiled{}
	var b strings.Builder

	b.WriteString("# Nutritional Status and Dietary Patterns of Adolescent Girls\n\n")
	b.WriteString("Comparison of Rural vs Urban Areas\n\n")
	fmt.Fprintf(&b, "Date: %s\n\n", time.Now().Format("2006-01-02"))
	if runID != "" {
		fmt.Fprintf(&b, "Run: %s\n\n", runID)
	}

	found := 0
	for _, a := range artifacts {
		path := filepath.Join(resultsDir, a.File)
		if _, err := os.Stat(path); err != nil {
			c.Warnings = append(c.Warnings, fmt.Sprintf("%s not found; run its section first", a.File))
			continue
		}
		found++
		fmt.Fprintf(&b, "## %s\n\n", a.Title)
		for _, sheet := range a.Sheets {
			tbl, err := ReadSheet(path, sheet)
			if err != nil {
				c.Warnings = append(c.Warnings, fmt.Sprintf("%s: %v", a.File, err))
				continue
			}
			fmt.Fprintf(&b, "### %s\n\n", sheet)
			writeMarkdownTable(&b, tbl)

			if key := significantOnly(tbl); len(key.Rows) > 0 {
				key.Name = a.Title + ": " + sheet
				c.Key = append(c.Key, key)
			}
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("no section results found under %s", resultsDir)
	}
	c.Markdown = b.String()
	return c, nil
}

// significantOnly keeps the rows a reader cares most about: those whose
// Significance column is anything but "ns". Tables without that column are
// passed through untouched.
func significantOnly(tbl Table) Table {
	sig := -1
	for j, h := range tbl.Header {
		if strings.EqualFold(strings.TrimSpace(h), "Significance") {
			sig = j
			break
		}
	}
	if sig < 0 {
		return tbl
	}
	out := Table{Header: tbl.Header}
	for _, row := range tbl.Rows {
		if sig < len(row) && row[sig] != "ns" && row[sig] != "" {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func writeMarkdownTable(b *strings.Builder, tbl Table) {
	if len(tbl.Header) == 0 {
		return
	}
	b.WriteString("| " + strings.Join(escapeCells(tbl.Header), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(tbl.Header)) + "\n")
	for _, row := range tbl.Rows {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
	b.WriteString("\n")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(strings.ReplaceAll(c, "\n", " "), "|", "/")
	}
	return out
}
