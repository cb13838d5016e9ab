// Package config provides configuration for the perft tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxDepth is the deepest perft run the tool accepts.
const MaxDepth = 10

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Perft holds the search settings.
	Perft *PerftConfig

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// PerftConfig holds settings for a perft run.
type PerftConfig struct {
	// Depth is the number of plies to enumerate.
	Depth int

	// FEN is the starting position. Empty means the standard initial position.
	FEN string

	// Divide reports the node count below each root move.
	Divide bool

	// Workers is the number of goroutines used by divide. 0 means one per CPU.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Depth: 1}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("negative verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}
