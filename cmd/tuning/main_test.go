package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rover-onboard/filtertune/internal/config"
	"github.com/rover-onboard/filtertune/internal/report"
	"github.com/rover-onboard/filtertune/internal/track"
)

const header = "longitude_deg,longitude_min,latitude_deg,latitude_min,bearing_deg,speed\n"

func writeCSV(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(header+strings.Join(rows, "\n")+"\n"), 0o600))
	return path
}

func defaultConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "test",
		ScoringEnvConfig: config.ScoringEnvConfig{
			PositionBudgetMeters: 5,
			BearingTolerance:     30,
			SpeedTolerance:       1.6,
		},
	}
}

func TestRun_PrintsFitness(t *testing.T) {
	dir := t.TempDir()
	truePath := writeCSV(t, dir, "true.csv", "-110,47.4,38,22.5,90,2", "-110,47.4,38,22.5,90,2")
	filteredPath := writeCSV(t, dir, "filtered.csv", "-110,47.4,38,22.5,90,3.6", "-110,47.4,38,22.5,90,2")

	var stdout, stderr bytes.Buffer
	err := run(defaultConfig(), options{TruePath: truePath, FilteredPath: filteredPath}, &stdout, &stderr)
	require.NoError(t, err)

	got, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, got, 1e-9)
	assert.Empty(t, stderr.String())
}

func TestRun_IdenticalFilesScoreZero(t *testing.T) {
	dir := t.TempDir()
	truePath := writeCSV(t, dir, "true.csv", "10,30,-10,30,0,1", "10,31,-10,31,5,1.5")

	var stdout bytes.Buffer
	require.NoError(t, run(defaultConfig(), options{TruePath: truePath, FilteredPath: truePath}, &stdout, &bytes.Buffer{}))
	assert.Equal(t, "0\n", stdout.String())
}

func TestRun_Sweep(t *testing.T) {
	dir := t.TempDir()
	truePath := writeCSV(t, dir, "true.csv", "10,30,-10,30,0,1", "10,31,-10,31,5,1.5")

	var stdout bytes.Buffer
	require.NoError(t, run(defaultConfig(), options{TruePath: truePath, FilteredPath: truePath, SweepSteps: 4}, &stdout, &bytes.Buffer{}))

	lines := strings.Fields(stdout.String())
	assert.Len(t, lines, 4)
}

func TestRun_PlotAndReports(t *testing.T) {
	dir := t.TempDir()
	truePath := writeCSV(t, dir, "true.csv", "10,30,-10,30,0,1")
	filteredPath := writeCSV(t, dir, "filtered.csv", "10,30,-10,30,15,1")

	cfg := defaultConfig()
	cfg.ReportPath = filepath.Join(dir, "report.json")
	cfg.PlotPath = filepath.Join(dir, "fit.png")

	var stdout, stderr bytes.Buffer
	opts := options{TruePath: truePath, FilteredPath: filteredPath, PlotTerminal: true}
	require.NoError(t, run(cfg, opts, &stdout, &stderr))

	assert.Contains(t, stderr.String(), "Per-sample fitness")

	r, err := report.ReadJSON(cfg.ReportPath)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, r.Fitness, 1e-12)
	assert.Equal(t, truePath, r.TruePath)

	_, err = os.Stat(cfg.PlotPath)
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	one := writeCSV(t, dir, "one.csv", "10,30,-10,30,0,1")
	two := writeCSV(t, dir, "two.csv", "10,30,-10,30,0,1", "10,30,-10,30,0,1")
	bad := writeCSV(t, dir, "bad.csv", "10,30,-10,thirty,0,1")

	tests := []struct {
		name     string
		truth    string
		filtered string
	}{
		{"missing true file", filepath.Join(dir, "missing.csv"), one},
		{"missing filtered file", one, filepath.Join(dir, "missing.csv")},
		{"malformed row", bad, one},
		{"length mismatch", one, two},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(defaultConfig(), options{TruePath: tt.truth, FilteredPath: tt.filtered}, &stdout, &bytes.Buffer{})
			assert.Error(t, err)
			assert.Empty(t, stdout.String())
		})
	}

	var perr *track.ParseError
	err := run(defaultConfig(), options{TruePath: bad, FilteredPath: one}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorAs(t, err, &perr)
}
