package domain

import "time"

// LedgerEntry records one inbox file the watcher has split.
type LedgerEntry struct {
	// Name is the file name inside the inbox directory.
	Name string `json:"name"`

	// Size and ModTime identify the version of the file that was split.
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`

	// OutDir is where the pieces were written.
	OutDir string `json:"out_dir"`

	Records int `json:"records"`
	Pieces  int `json:"pieces"`

	ProcessedAt time.Time `json:"processed_at"`
}

// Matches reports whether the entry describes a file of the given size and mtime.
func (e LedgerEntry) Matches(size int64, modTime time.Time) bool {
	return e.Size == size && e.ModTime.Equal(modTime)
}

// Ledger maps inbox file names to their last processing.
type Ledger struct {
	Entries map[string]LedgerEntry `json:"entries"`
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{Entries: make(map[string]LedgerEntry)}
}

// Lookup returns the entry for name.
func (l Ledger) Lookup(name string) (LedgerEntry, bool) {
	e, ok := l.Entries[name]
	return e, ok
}

// Record stores e, replacing any previous entry with the same name.
func (l *Ledger) Record(e LedgerEntry) {
	if l.Entries == nil {
		l.Entries = make(map[string]LedgerEntry)
	}
	l.Entries[e.Name] = e
}
