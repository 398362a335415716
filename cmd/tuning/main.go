package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/rover-onboard/filtertune/internal/config"
	"github.com/rover-onboard/filtertune/internal/report"
	"github.com/rover-onboard/filtertune/internal/scoring"
	"github.com/rover-onboard/filtertune/internal/track"
	"github.com/rover-onboard/filtertune/internal/utils/logger"
)

const usage = "Usage: tuning [--debug|--trace|--info] [--sweep N] [--plot] <true_path_csv> <filtered_path_csv>"

var (
	sweepSteps   = flag.Int("sweep", 0, "print the score for N successive one-meter position offsets of the filtered path")
	plotTerminal = flag.Bool("plot", false, "draw per-sample scores on stderr")
)

type options struct {
	TruePath     string
	FilteredPath string
	SweepSteps   int
	PlotTerminal bool
}

func main() {
	logger.Init()
	defer logger.Logger.Sync() //nolint:errcheck

	args := flag.Args()
	if len(args) != 2 {
		fmt.Println(usage)
		return
	}

	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	opts := options{
		TruePath:     args[0],
		FilteredPath: args[1],
		SweepSteps:   *sweepSteps,
		PlotTerminal: *plotTerminal,
	}
	if err := run(cfg, opts, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("Failed to evaluate filter fit")
	}
}

func run(cfg *config.AppConfig, opts options, stdout, stderr io.Writer) error {
	truePath, err := track.Load(opts.TruePath)
	if err != nil {
		return fmt.Errorf("true path: %w", err)
	}

	filteredPath, err := track.Load(opts.FilteredPath)
	if err != nil {
		return fmt.Errorf("filtered path: %w", err)
	}

	scorer := scoring.NewScorer(
		scoring.WithPositionBudget(cfg.PositionBudgetMeters),
		scoring.WithBearingTolerance(cfg.BearingTolerance),
		scoring.WithSpeedTolerance(cfg.SpeedTolerance),
	)

	if opts.SweepSteps > 0 {
		return runSweep(scorer, truePath, filteredPath, opts.SweepSteps, stdout)
	}

	eval, err := scorer.Evaluate(truePath, filteredPath)
	if err != nil {
		return err
	}

	log.Info().
		Str("truePath", opts.TruePath).
		Str("filteredPath", opts.FilteredPath).
		Int("samples", eval.Samples).
		Float64("fitness", eval.Fitness).
		Msg("Evaluated filter fit")

	if opts.PlotTerminal {
		scoring.PlotSampleScoresTerminal(stderr, eval.SampleScores, "Per-sample fitness")
	}

	if err := writeReports(cfg.ReportEnvConfig, eval, opts); err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, eval.Fitness)
	return err
}

func runSweep(scorer *scoring.Scorer, truePath, filteredPath *track.Path, steps int, stdout io.Writer) error {
	if truePath.Len() == 0 {
		return scoring.ErrEmptyPath
	}

	results, err := scorer.Sweep(truePath, filteredPath, scoring.MetricStep(1, truePath.Latitude[0]), steps)
	if err != nil {
		return err
	}

	for _, fitness := range results {
		if _, err := fmt.Fprintln(stdout, fitness); err != nil {
			return err
		}
	}
	return nil
}

func writeReports(cfg config.ReportEnvConfig, eval *scoring.Evaluation, opts options) error {
	if cfg.ReportPath != "" {
		if err := report.WriteJSON(cfg.ReportPath, report.NewReport(eval, opts.TruePath, opts.FilteredPath)); err != nil {
			return err
		}
		log.Info().Str("path", cfg.ReportPath).Msg("Wrote fitness report")
	}

	if cfg.PlotPath != "" {
		if err := report.WritePlot(cfg.PlotPath, eval, "Filter fit"); err != nil {
			return err
		}
		log.Info().Str("path", cfg.PlotPath).Msg("Wrote fitness plot")
	}

	return nil
}
