package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/fastaslice/internal/domain"
	"github.com/bft-labs/fastaslice/pkg/fasta"
)

// Defaults shared by the commands.
const (
	DefaultOutputDir = "out"
	DefaultPieces    = 100
	DefaultDebounce  = 500 * time.Millisecond
)

// Config holds CLI configuration for fastaslice.
type Config struct {
	// Input is the FASTA file to split or filter.
	Input string

	// OutputDir receives split pieces (split) or per-file piece directories (watch).
	OutputDir string

	// Pieces is the maximum number of files a split produces.
	Pieces int

	Verbose bool
	Verify  bool

	// Predictions is the accepted-identifier list of the filter command.
	Predictions string

	// Output is the filtered FASTA destination; "-" is stdout.
	Output string

	// InboxDir is watched for new FASTA files.
	InboxDir string

	// LedgerDir holds the watcher ledger. Derived from InboxDir when empty.
	LedgerDir string

	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Pieces:    DefaultPieces,
		Output:    fasta.Stdin,
		Debounce:  DefaultDebounce,
	}
}

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, a...))
}

// ValidateSplit checks the configuration of the split command.
func (c *Config) ValidateSplit() error {
	if c.Input == "" {
		return invalid("input is required")
	}
	if c.Input == fasta.Stdin {
		return invalid("split reads its input twice and cannot use stdin")
	}
	if c.OutputDir == "" {
		return invalid("out is required")
	}
	if c.Pieces <= 0 {
		return invalid("size must be positive, got %d", c.Pieces)
	}
	return nil
}

// ValidateFilter checks the configuration of the filter command.
func (c *Config) ValidateFilter() error {
	if c.Input == "" {
		return invalid("input is required")
	}
	if c.Predictions == "" {
		return invalid("predictions is required")
	}
	if c.Output == "" {
		c.Output = fasta.Stdin
	}
	return nil
}

// ValidateWatch checks the configuration of the watch command and sets
// derived defaults.
func (c *Config) ValidateWatch() error {
	if c.InboxDir == "" {
		return invalid("inbox is required")
	}
	if c.OutputDir == "" {
		return invalid("out is required")
	}
	if c.Pieces <= 0 {
		return invalid("size must be positive, got %d", c.Pieces)
	}
	if c.Debounce <= 0 {
		return invalid("debounce must be positive")
	}
	if c.LedgerDir == "" {
		c.LedgerDir = c.InboxDir
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Zero and negative values are kept so that validation can reject them.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
