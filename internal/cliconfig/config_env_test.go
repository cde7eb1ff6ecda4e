package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"FASTASLICE_INPUT":    "/env/in.fasta",
				"FASTASLICE_OUT":      "/env/out",
				"FASTASLICE_SIZE":     "7",
				"FASTASLICE_DEBOUNCE": "250ms",
				"FASTASLICE_VERBOSE":  "1",
				"FASTASLICE_VERIFY":   "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Input:     "/env/in.fasta",
				OutputDir: "/env/out",
				Pieces:    7,
				Debounce:  250 * time.Millisecond,
				Verbose:   true,
				Verify:    true,
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"FASTASLICE_OUT":  "/env/out",
				"FASTASLICE_SIZE": "7",
			},
			changed: map[string]bool{"out": true},
			initial: Config{
				OutputDir: "/flag/out",
			},
			expected: Config{
				OutputDir: "/flag/out",
				Pieces:    7,
			},
			wantErr: false,
		},
		{
			name: "filter and watch settings",
			envVars: map[string]string{
				"FASTASLICE_PREDICTIONS": "/env/pred.txt",
				"FASTASLICE_OUTPUT":      "/env/filtered.fasta",
				"FASTASLICE_INBOX":       "/env/inbox",
				"FASTASLICE_LEDGER_DIR":  "/env/state",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Predictions: "/env/pred.txt",
				Output:      "/env/filtered.fasta",
				InboxDir:    "/env/inbox",
				LedgerDir:   "/env/state",
			},
			wantErr: false,
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"FASTASLICE_DEBOUNCE": "not-a-duration",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"FASTASLICE_SIZE": "lots",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestApplyEnvConfig_BoolFalse(t *testing.T) {
	t.Setenv("FASTASLICE_VERBOSE", "no")
	cfg := Config{Verbose: true}
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}
