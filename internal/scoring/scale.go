package scoring

import "gonum.org/v1/gonum/mat"

// ScaleByTolerance divides every diff by tolerance.
func ScaleByTolerance(diffs []float64, tolerance float64) []float64 {
	result := make([]float64, len(diffs))
	for i, d := range diffs {
		result[i] = d / tolerance
	}

	return result
}

// ScaleByToleranceOnMatrix divides row i of diffs by tolerance[i].
func ScaleByToleranceOnMatrix(diffs *mat.Dense, tolerance Tolerance) *mat.Dense {
	rows, cols := diffs.Dims()

	scaledDiffs := mat.NewDense(rows, cols, nil)

	for rowIdx := range rows {
		rowDiffs := mat.Row(nil, rowIdx, diffs)
		scaledDiffs.SetRow(rowIdx, ScaleByTolerance(rowDiffs, tolerance[rowIdx]))
	}

	return scaledDiffs
}
