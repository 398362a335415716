package scoring

import (
	"github.com/rs/zerolog/log"

	"github.com/rover-onboard/filtertune/internal/geo"
	"github.com/rover-onboard/filtertune/internal/track"
)

// MetricStep is a shift of the given ground distance in both longitude and
// latitude, with bearing and speed untouched.
func MetricStep(meters, refLatitude float64) [track.NumChannels]float64 {
	return [track.NumChannels]float64{
		track.Longitude: geo.MetersToLong(meters, refLatitude),
		track.Latitude:  geo.MetersToLat(meters),
	}
}

// Sweep scores filtered shifted by k*step for k = 1..n and returns the n
// fitness values. It shows how the metric responds to a growing constant bias.
func Sweep(truth, filtered *track.Path, step [track.NumChannels]float64, n int, params Params) ([]float64, error) {
	results := make([]float64, 0, n)

	for k := 1; k <= n; k++ {
		var offsets [track.NumChannels]float64
		for c := range offsets {
			offsets[c] = float64(k) * step[c]
		}

		fitness, err := EvaluateFit(truth, filtered.Shift(offsets), params)
		if err != nil {
			return nil, err
		}
		log.Trace().Int("step", k).Float64("fitness", fitness).Msg("sweep step")

		results = append(results, fitness)
	}

	return results, nil
}
