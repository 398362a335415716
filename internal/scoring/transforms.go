package scoring

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AbsDiffOnMatrix returns |a - b| elementwise.
func AbsDiffOnMatrix(a, b mat.Matrix) *mat.Dense {
	var diff mat.Dense
	diff.Sub(a, b)
	diff.Apply(func(_, _ int, v float64) float64 {
		return math.Abs(v)
	}, &diff)

	return &diff
}

// ClampOnMatrix caps every element of scores at limit.
func ClampOnMatrix(scores mat.Matrix, limit float64) *mat.Dense {
	var clamped mat.Dense
	clamped.Apply(func(_, _ int, v float64) float64 {
		return math.Min(v, limit)
	}, scores)

	return &clamped
}
