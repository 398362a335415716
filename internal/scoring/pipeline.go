package scoring

import (
	"github.com/rover-onboard/filtertune/internal/track"
	"github.com/rover-onboard/filtertune/internal/utils/logger"
)

type Scorer struct {
	Params Params
}

type ScorerOption func(*Scorer)

func WithPositionBudget(meters float64) ScorerOption {
	return func(s *Scorer) {
		s.Params.PositionBudgetMeters = meters
	}
}

func WithBearingTolerance(degrees float64) ScorerOption {
	return func(s *Scorer) {
		s.Params.BearingTolerance = degrees
	}
}

func WithSpeedTolerance(tolerance float64) ScorerOption {
	return func(s *Scorer) {
		s.Params.SpeedTolerance = tolerance
	}
}

func WithParams(params Params) ScorerOption {
	return func(s *Scorer) {
		s.Params = params
	}
}

func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{
		Params: DefaultParams(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Scorer) Evaluate(truth, filtered *track.Path) (*Evaluation, error) {
	logger.Sugar().Debugw("Evaluating fit with params", "params", s.Params)
	return Evaluate(truth, filtered, s.Params)
}

func (s *Scorer) EvaluateFit(truth, filtered *track.Path) (float64, error) {
	return EvaluateFit(truth, filtered, s.Params)
}

func (s *Scorer) Sweep(truth, filtered *track.Path, step [track.NumChannels]float64, n int) ([]float64, error) {
	logger.Sugar().Debugw("Sweeping filtered path offset", "step", step, "n", n)
	return Sweep(truth, filtered, step, n, s.Params)
}
