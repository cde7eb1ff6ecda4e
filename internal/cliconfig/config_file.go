package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input       string `toml:"input"`
	OutputDir   string `toml:"output_dir"`
	Pieces      *int   `toml:"pieces"`
	Verbose     *bool  `toml:"verbose"`
	Verify      *bool  `toml:"verify"`
	Predictions string `toml:"predictions"`
	Output      string `toml:"output"`
	Inbox       string `toml:"inbox"`
	LedgerDir   string `toml:"ledger_dir"`
	Debounce    string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.fastaslice/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fastaslice", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("out", fc.OutputDir, &cfg.OutputDir)
	s.setString("predictions", fc.Predictions, &cfg.Predictions)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("inbox", fc.Inbox, &cfg.InboxDir)
	s.setString("ledger-dir", fc.LedgerDir, &cfg.LedgerDir)

	s.setInt("size", fc.Pieces, &cfg.Pieces)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	s.setBool("verify", fc.Verify, &cfg.Verify)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
