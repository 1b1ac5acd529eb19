package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one bar group in a grouped bar chart.
type Series struct {
	Name   string
	Values []float64
}

// GroupedBar renders a grouped bar chart (one bar per series per category)
// to a PNG file.
func GroupedBar(path, title, yLabel string, categories []string, series []Series) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	w := vg.Points(18)
	for i, s := range series {
		if len(s.Values) != len(categories) {
			return fmt.Errorf("chart %s: series %q has %d values for %d categories", path, s.Name, len(s.Values), len(categories))
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), w)
		if err != nil {
			return fmt.Errorf("chart %s: %w", path, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(series)-1)/2) * w
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	p.NominalX(categories...)
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// Histogram renders a value distribution to a PNG file.
func Histogram(path, title, xLabel string, values []float64, bins int) error {
	if len(values) == 0 {
		return fmt.Errorf("chart %s: no values", path)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("chart %s: %w", path, err)
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// BoxPlots renders side-by-side box plots, one per labeled group.
func BoxPlots(path, title, yLabel string, labels []string, groups [][]float64) error {
	if len(labels) != len(groups) {
		return fmt.Errorf("chart %s: %d labels for %d groups", path, len(labels), len(groups))
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(g))
		if err != nil {
			return fmt.Errorf("chart %s: %w", path, err)
		}
		p.Add(b)
	}
	p.NominalX(labels...)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
