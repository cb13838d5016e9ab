// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Search options
	depth   = flag.Int("depth", 1, "Number of plies to enumerate")
	fen     = flag.String("fen", "", "Starting position as FEN (default: initial position)")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	workers = flag.Int("workers", 0, "Divide workers (0 = one per CPU)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbose    = flag.Bool("v", false, "Report timing and position details")
	quiet      = flag.Bool("s", false, "Silent mode: no diagnostics")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds the configuration from the parsed flag values.
func buildConfig() *config.Config {
	b := config.NewConfigBuilder().
		WithDepth(*depth).
		WithFEN(*fen).
		WithDivide(*divide).
		WithWorkers(*workers).
		WithJSONOutput(*jsonOutput).
		WithOutputFilename(*outputFile).
		WithLogFilename(*logFile)

	switch {
	case *quiet:
		b.WithVerbosity(0)
	case *verbose:
		b.WithVerbosity(2)
	}
	return b.Build()
}
