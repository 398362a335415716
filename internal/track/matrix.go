package track

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix returns the path as a NumChannels×Len dense matrix with rows in
// Channel order. It returns nil for an empty path.
func (p *Path) Matrix() *mat.Dense {
	n := p.Len()
	if n == 0 {
		return nil
	}

	data := make([]float64, 0, NumChannels*n)
	for _, c := range Channels {
		data = append(data, p.Channel(c)[:n]...)
	}

	return mat.NewDense(NumChannels, n, data)
}

// FromMatrix builds a path from a matrix laid out like Matrix.
func FromMatrix(m mat.Matrix) (*Path, error) {
	rows, cols := m.Dims()
	if rows != NumChannels {
		return nil, fmt.Errorf("expected %d rows, got %d", NumChannels, rows)
	}

	p := NewPath(cols)
	for col := range cols {
		p.Add(m.At(int(Longitude), col), m.At(int(Latitude), col), m.At(int(Bearing), col), m.At(int(Speed), col))
	}

	return p, nil
}
