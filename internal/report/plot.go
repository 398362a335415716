package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/rover-onboard/filtertune/internal/scoring"
	"github.com/rover-onboard/filtertune/internal/track"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 5 * vg.Inch
)

func series(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}

// WritePlot saves the weighted score and each channel's scaled error over time.
// The image format follows the file extension (.png, .svg, .pdf, ...).
func WritePlot(filename string, eval *scoring.Evaluation, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "fraction of tolerance"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Legend.Top = true

	lines := []any{"weighted", series(eval.SampleScores)}
	for _, c := range track.Channels {
		lines = append(lines, c.String(), series(eval.ScaledErrors[c]))
	}

	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("failed to add plot lines: %w", err)
	}

	if err := p.Save(plotWidth, plotHeight, filename); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
