package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FASTASLICE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("FASTASLICE_INPUT"), &cfg.Input)
	s.setString("out", os.Getenv("FASTASLICE_OUT"), &cfg.OutputDir)
	s.setString("predictions", os.Getenv("FASTASLICE_PREDICTIONS"), &cfg.Predictions)
	s.setString("output", os.Getenv("FASTASLICE_OUTPUT"), &cfg.Output)
	s.setString("inbox", os.Getenv("FASTASLICE_INBOX"), &cfg.InboxDir)
	s.setString("ledger-dir", os.Getenv("FASTASLICE_LEDGER_DIR"), &cfg.LedgerDir)

	if err := s.setIntFromString("size", os.Getenv("FASTASLICE_SIZE"), &cfg.Pieces); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("FASTASLICE_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("FASTASLICE_VERBOSE"), &cfg.Verbose)
	s.setBoolFromString("verify", os.Getenv("FASTASLICE_VERIFY"), &cfg.Verify)

	return nil
}
