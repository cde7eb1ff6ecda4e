package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/fastaslice/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Input:     "/data/proteome.fasta",
				OutputDir: "/data/pieces",
				Pieces:    intPtr(12),
				Debounce:  "2s",
				Verify:    &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Input:     "/data/proteome.fasta",
				OutputDir: "/data/pieces",
				Pieces:    12,
				Debounce:  2 * time.Second,
				Verify:    true,
			},
			wantErr: false,
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				OutputDir: "/config/out",
				Pieces:    intPtr(12),
			},
			changed: map[string]bool{"size": true},
			initial: Config{
				OutputDir: "out",
				Pieces:    3,
			},
			expected: Config{
				OutputDir: "/config/out",
				Pieces:    3, // unchanged because flag was set
			},
			wantErr: false,
		},
		{
			name: "keeps negative size for validation",
			fileConfig: FileConfig{
				Pieces: intPtr(-1),
			},
			changed:  map[string]bool{},
			initial:  Config{Pieces: 100},
			expected: Config{Pieces: -1},
			wantErr:  false,
		},
		{
			name: "keeps zero size for validation",
			fileConfig: FileConfig{
				Pieces: intPtr(0),
			},
			changed:  map[string]bool{},
			initial:  Config{Pieces: 100},
			expected: Config{Pieces: 0},
			wantErr:  false,
		},
		{
			name: "leaves size alone when unset",
			fileConfig: FileConfig{
				OutputDir: "pieces",
			},
			changed:  map[string]bool{},
			initial:  Config{Pieces: 100},
			expected: Config{OutputDir: "pieces", Pieces: 100},
			wantErr:  false,
		},
		{
			name: "returns error for invalid duration",
			fileConfig: FileConfig{
				Debounce: "soon",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.TrimSpace(`
input = "proteome.fasta"
output_dir = "pieces"
pieces = 25
verbose = true
predictions = "predictions_out.txt"
inbox = "/srv/inbox"
debounce = "1s"
`)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.Input != "proteome.fasta" || fc.OutputDir != "pieces" || fc.Pieces == nil || *fc.Pieces != 25 {
		t.Errorf("FileConfig = %+v", fc)
	}
	if fc.Verbose == nil || !*fc.Verbose {
		t.Errorf("Verbose = %v, want true", fc.Verbose)
	}
	if fc.Verify != nil {
		t.Errorf("Verify = %v, want nil", *fc.Verify)
	}
	if fc.Inbox != "/srv/inbox" || fc.Debounce != "1s" || fc.Predictions != "predictions_out.txt" {
		t.Errorf("FileConfig = %+v", fc)
	}

	if !FileExists(path) {
		t.Error("FileExists = false for existing config")
	}
	if FileExists(filepath.Join(dir, "missing.toml")) {
		t.Error("FileExists = true for missing config")
	}
}

func TestFileConfigZeroSizeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("input = \"in.fasta\"\npieces = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if err := cfg.ValidateSplit(); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("ValidateSplit() = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadFileConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("pieces = \"many\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected error for mistyped pieces")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := DefaultConfigPath(); got != filepath.Join("/home/tester", ".fastaslice", "config.toml") {
		t.Errorf("DefaultConfigPath() = %v", got)
	}
}
