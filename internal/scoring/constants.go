package scoring

import "github.com/rover-onboard/filtertune/internal/track"

// Per-channel weights of the per-sample score. They sum to 1 so a sample with
// every channel at or beyond tolerance scores exactly 1.
const (
	LongitudeWeight = 0.4
	LatitudeWeight  = 0.4
	BearingWeight   = 0.1
	SpeedWeight     = 0.1
)

const (
	DefaultPositionBudgetMeters = 5.0
	DefaultBearingTolerance     = 30.0 // degrees
	DefaultSpeedTolerance       = 1.6  // units/sec

	// MaxScaledError is the saturation point of a scaled channel error.
	MaxScaledError = 1.0
)

func Weights() [track.NumChannels]float64 {
	return [track.NumChannels]float64{
		track.Longitude: LongitudeWeight,
		track.Latitude:  LatitudeWeight,
		track.Bearing:   BearingWeight,
		track.Speed:     SpeedWeight,
	}
}

func DefaultParams() Params {
	return Params{
		PositionBudgetMeters: DefaultPositionBudgetMeters,
		BearingTolerance:     DefaultBearingTolerance,
		SpeedTolerance:       DefaultSpeedTolerance,
	}
}
