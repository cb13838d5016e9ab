// perft counts the move paths from a chess position to a given depth.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "perft: %v\n", err)
		stop()
		closeOutput()
		closeLog()
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on cfg.LogFilename.
func setupLogFile(cfg *config.Config) func() {
	if cfg.LogFilename == "" {
		return func() {}
	}
	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() }
}

// setupOutputFile configures the output file based on cfg.OutputFilename.
func setupOutputFile(cfg *config.Config) func() {
	if cfg.OutputFilename == "" {
		return func() {}
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return func() { file.Close() }
}

// run performs the perft run described by cfg. An interrupt cancels ctx,
// which stops the run between root moves.
func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	state, err := loadPosition(cfg.Perft.FEN)
	if err != nil {
		return err
	}
	logf(cfg, 2, "position: %s\n", state.FEN())

	start := time.Now()
	report := &output.Report{FEN: state.FEN(), Depth: cfg.Perft.Depth}
	if err := runDivide(ctx, cfg, state, report); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if cfg.JSONFormat {
		err = output.WriteJSON(cfg.OutputFile, report)
	} else {
		err = output.WriteText(cfg.OutputFile, report)
	}
	if err != nil {
		return errors.Wrap(err, "writing report")
	}

	logf(cfg, 1, "depth %d: %d nodes in %v\n", cfg.Perft.Depth, report.Total, elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		logf(cfg, 2, "%.0f nodes/s\n", float64(report.Total)/secs)
	}
	return nil
}

// loadPosition returns the initial state or the state described by fen.
func loadPosition(fen string) (*engine.GameState, error) {
	if fen == "" {
		return engine.InitialState(), nil
	}
	state, err := engine.NewStateFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "loading position")
	}
	return state, nil
}

// runDivide counts the tree below each root move in parallel and fills
// report. Per-move entries are kept only when cfg asks for them.
func runDivide(ctx context.Context, cfg *config.Config, state *engine.GameState, report *output.Report) error {
	var opts []worker.PoolOption
	if cfg.Perft.Workers > 0 {
		opts = append(opts, worker.WithWorkers(cfg.Perft.Workers))
	}

	result, err := perft.DivideContext(ctx, state, cfg.Perft.Depth, opts...)
	if err != nil {
		return err
	}
	if cfg.Perft.Divide {
		report.Entries = result.Entries
	}
	report.Total = result.Total
	logf(cfg, 2, "%d root moves on %d workers\n", len(result.Entries), result.Workers)
	return nil
}

// logf writes a diagnostic line when cfg.Verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move paths from a position to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nWith -divide, each root move is printed as <from>-<to>[=promo]: N,\n")
	fmt.Fprintf(os.Stderr, "squares written as x,y with 0,0 the top-left (a8) cell.\n")
}
