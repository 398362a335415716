// Package report writes evaluation results to files for later inspection.
package report

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/rover-onboard/filtertune/internal/scoring"
	"github.com/rover-onboard/filtertune/internal/track"
)

type ChannelValues struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Bearing   float64 `json:"bearing"`
	Speed     float64 `json:"speed"`
}

func channelValues(v [track.NumChannels]float64) ChannelValues {
	return ChannelValues{
		Longitude: v[track.Longitude],
		Latitude:  v[track.Latitude],
		Bearing:   v[track.Bearing],
		Speed:     v[track.Speed],
	}
}

type Report struct {
	TruePath      string        `json:"true_path,omitempty"`
	FilteredPath  string        `json:"filtered_path,omitempty"`
	Fitness       float64       `json:"fitness"`
	Samples       int           `json:"samples"`
	Tolerance     ChannelValues `json:"tolerance"`
	ChannelScores ChannelValues `json:"channel_scores"`
	SampleScores  []float64     `json:"sample_scores"`
}

func NewReport(eval *scoring.Evaluation, truePath, filteredPath string) *Report {
	return &Report{
		TruePath:      truePath,
		FilteredPath:  filteredPath,
		Fitness:       eval.Fitness,
		Samples:       eval.Samples,
		Tolerance:     channelValues(eval.Tolerance),
		ChannelScores: channelValues(eval.ChannelScores),
		SampleScores:  eval.SampleScores,
	}
}

func WriteJSON(filename string, r *Report) error {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func ReadJSON(filename string) (*Report, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var r Report
	if err := sonic.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &r, nil
}
