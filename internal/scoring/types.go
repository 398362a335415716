package scoring

import (
	"fmt"

	"github.com/rover-onboard/filtertune/internal/geo"
	"github.com/rover-onboard/filtertune/internal/track"
)

// Params are the error budgets the scorer saturates at.
type Params struct {
	PositionBudgetMeters float64 // ground distance budget for longitude and latitude
	BearingTolerance     float64 // degrees
	SpeedTolerance       float64 // units/sec
}

func (p Params) Validate() error {
	switch {
	case !(p.PositionBudgetMeters > 0):
		return fmt.Errorf("%w: position budget must be positive, got %v", ErrInvalidParams, p.PositionBudgetMeters)
	case !(p.BearingTolerance > 0):
		return fmt.Errorf("%w: bearing tolerance must be positive, got %v", ErrInvalidParams, p.BearingTolerance)
	case !(p.SpeedTolerance > 0):
		return fmt.Errorf("%w: speed tolerance must be positive, got %v", ErrInvalidParams, p.SpeedTolerance)
	}
	return nil
}

// Tolerance converts the position budget to degrees at refLatitude.
func (p Params) Tolerance(refLatitude float64) Tolerance {
	return Tolerance{
		track.Longitude: geo.MetersToLong(p.PositionBudgetMeters, refLatitude),
		track.Latitude:  geo.MetersToLat(p.PositionBudgetMeters),
		track.Bearing:   p.BearingTolerance,
		track.Speed:     p.SpeedTolerance,
	}
}

// Tolerance is the per-channel error at which a channel takes full penalty,
// indexed by track.Channel.
type Tolerance [track.NumChannels]float64

type Evaluation struct {
	Fitness       float64                    // mean of SampleScores, in [0,1]
	Samples       int                        // number of time samples compared
	Tolerance     Tolerance                  // tolerances the errors were scaled by
	ChannelScores [track.NumChannels]float64 // mean clamped scaled error per channel
	SampleScores  []float64                  // weighted score per time sample

	// ScaledErrors[c][i] is the clamped scaled error of channel c at sample i.
	ScaledErrors [track.NumChannels][]float64
}
