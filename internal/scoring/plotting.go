package scoring

import (
	"fmt"
	"io"
	"strings"
)

// PlotSampleScoresTerminal draws one horizontal bar per time sample. Bars are
// scaled against the full [0,1] score range, not the observed range.
func PlotSampleScoresTerminal(w io.Writer, scores []float64, title string) {
	fmt.Fprintf(w, "\n%s (Terminal Plot - Time Order):\n", title)
	fmt.Fprintln(w, "  Sample | Score    | Bar Chart")
	fmt.Fprintln(w, "---------|----------|"+strings.Repeat("-", 50))

	if len(scores) == 0 {
		fmt.Fprintln(w, "(no samples)")
		return
	}

	maxBarWidth := 50
	minScore, maxScore := scores[0], scores[0]
	for i, score := range scores {
		barWidth := int(score * float64(maxBarWidth))
		barWidth = max(0, min(barWidth, maxBarWidth))

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Fprintf(w, "%8d | %.6f | %s\n", i, score, bar)

		minScore = min(minScore, score)
		maxScore = max(maxScore, score)
	}

	fmt.Fprintf(w, "\nScale: Min=%.6f, Max=%.6f\n", minScore, maxScore)
	fmt.Fprintf(w, "Bar width represents score (0 to %d chars)\n", maxBarWidth)
}
