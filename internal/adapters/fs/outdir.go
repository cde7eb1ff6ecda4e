package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/fastaslice/internal/domain"
)

// PrepareOutputDir creates dir if it does not exist and checks that it is an
// empty directory.
func PrepareOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrInvalidConfig)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		// MkdirAll fails with ENOTDIR when a path component is a file.
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			return fmt.Errorf("%w: %s must reference a directory", domain.ErrInvalidConfig, dir)
		}
		return fmt.Errorf("create output directory: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s must reference a directory", domain.ErrInvalidConfig, dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open output directory: %w", err)
	}
	defer f.Close()
	names, err := f.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(names) > 0 {
		return fmt.Errorf("%w: %w: %s", domain.ErrInvalidConfig, domain.ErrOutputNotEmpty, dir)
	}
	return nil
}
