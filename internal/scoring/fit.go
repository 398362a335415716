// Package scoring rates how closely a filtered path tracks the true path.
package scoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/rover-onboard/filtertune/internal/track"
)

var (
	ErrEmptyPath      = errors.New("path has no samples")
	ErrLengthMismatch = errors.New("true and filtered paths have different sample counts")
	ErrInvalidParams  = errors.New("invalid scoring params")
)

// EvaluateFit returns the fitness of filtered against truth: 0 is a perfect
// match, 1 means every channel is at or beyond its tolerance on every sample.
func EvaluateFit(truth, filtered *track.Path, params Params) (float64, error) {
	eval, err := Evaluate(truth, filtered, params)
	if err != nil {
		return 0, err
	}
	return eval.Fitness, nil
}

// Evaluate computes the fitness along with its per-sample and per-channel
// breakdown. Longitude tolerance is derived from the latitude of the first
// true sample only.
func Evaluate(truth, filtered *track.Path, params Params) (*Evaluation, error) {
	startTime := time.Now()

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := truth.Validate(); err != nil {
		return nil, fmt.Errorf("true path: %w", err)
	}
	if err := filtered.Validate(); err != nil {
		return nil, fmt.Errorf("filtered path: %w", err)
	}

	samples := truth.Len()
	if samples == 0 {
		return nil, ErrEmptyPath
	}
	if filtered.Len() != samples {
		return nil, fmt.Errorf("%w: %d true samples, %d filtered samples", ErrLengthMismatch, samples, filtered.Len())
	}

	tolerance := params.Tolerance(truth.Latitude[0])
	log.Debug().Floats64("tolerance", tolerance[:]).Float64("refLatitude", truth.Latitude[0]).Msg("derived channel tolerances")

	diffs := AbsDiffOnMatrix(truth.Matrix(), filtered.Matrix())
	scaled := ClampOnMatrix(ScaleByToleranceOnMatrix(diffs, tolerance), MaxScaledError)

	weights := Weights()
	weighted := mat.NewVecDense(samples, nil)
	weighted.MulVec(scaled.T(), mat.NewVecDense(track.NumChannels, weights[:]))
	sampleScores := mat.Col(nil, 0, weighted)

	eval := &Evaluation{
		Fitness:      stat.Mean(sampleScores, nil),
		Samples:      samples,
		Tolerance:    tolerance,
		SampleScores: sampleScores,
	}
	for _, c := range track.Channels {
		eval.ScaledErrors[c] = mat.Row(nil, int(c), scaled)
		eval.ChannelScores[c] = stat.Mean(eval.ScaledErrors[c], nil)
	}

	log.Debug().
		Int("samples", samples).
		Floats64("channelScores", eval.ChannelScores[:]).
		Float64("fitness", eval.Fitness).
		Msgf("evaluated fit in %v", time.Since(startTime))

	return eval, nil
}
