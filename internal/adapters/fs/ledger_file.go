package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bft-labs/fastaslice/internal/domain"
)

// LedgerFileName is the name of the watcher ledger inside its directory.
const LedgerFileName = ".fastaslice-ledger.json"

// LedgerFileRepository implements ports.LedgerRepository using a JSON file.
type LedgerFileRepository struct {
	dir string
}

// NewLedgerFileRepository creates a LedgerFileRepository for the given directory.
func NewLedgerFileRepository(dir string) *LedgerFileRepository {
	return &LedgerFileRepository{dir: dir}
}

// Load retrieves the last saved ledger from disk.
// Returns an empty ledger and nil error if no ledger file exists.
func (r *LedgerFileRepository) Load(ctx context.Context) (domain.Ledger, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewLedger(), nil
		}
		return domain.NewLedger(), err
	}

	ledger := domain.NewLedger()
	if err := json.Unmarshal(data, &ledger); err != nil {
		return domain.NewLedger(), err
	}
	if ledger.Entries == nil {
		ledger.Entries = make(map[string]domain.LedgerEntry)
	}
	return ledger, nil
}

// Save persists the ledger atomically (write to temp file, then rename).
func (r *LedgerFileRepository) Save(ctx context.Context, ledger domain.Ledger) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the ledger file.
func (r *LedgerFileRepository) Path() string {
	return filepath.Join(r.dir, LedgerFileName)
}
