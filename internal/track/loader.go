package track

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/rover-onboard/filtertune/internal/geo"
)

// ParseError reports a CSV row that could not be turned into a sample.
type ParseError struct {
	Line   int    // 1-based line in the input
	Column string // empty when the whole row is malformed
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a path from a CSV file. Files ending in .gz or .zst are
// decompressed on the fly.
func Load(filename string) (*Path, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open path file: %w", err)
	}
	defer f.Close()

	r, err := decompress(filename, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", filename, err)
	}
	defer r.Close()

	p, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	log.Debug().Str("file", filename).Int("samples", p.Len()).Msg("loaded path")
	return p, nil
}

func decompress(filename string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	return io.NopCloser(r), nil
}

// Parse reads a header line followed by rows laid out as Columns.
func Parse(r io.Reader) (*Path, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return NewPath(0), nil
		}
		return nil, rowError(err)
	}
	cr.FieldsPerRecord = len(Columns)

	p := NewPath(256)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rowError(err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(row, line)
		if err != nil {
			return nil, err
		}
		p.Add(
			geo.MinToDecimal(rec.LongitudeDeg, rec.LongitudeMin),
			geo.MinToDecimal(rec.LatitudeDeg, rec.LatitudeMin),
			rec.BearingDeg,
			rec.Speed,
		)
	}

	return p, nil
}

func rowError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return err
}

func parseRecord(row []string, line int) (Record, error) {
	var values [6]float64
	for i, field := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Record{}, &ParseError{Line: line, Column: Columns[i], Err: err}
		}
		values[i] = v
	}

	return Record{
		LongitudeDeg: values[0],
		LongitudeMin: values[1],
		LatitudeDeg:  values[2],
		LatitudeMin:  values[3],
		BearingDeg:   values[4],
		Speed:        values[5],
	}, nil
}
