package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/fastaslice/internal/domain"
	"github.com/bft-labs/fastaslice/internal/ports"
	"github.com/bft-labs/fastaslice/pkg/log"
)

const stagingSuffix = ".partial"

// fastaExts are the inbox file extensions the watcher splits, before any ".gz".
var fastaExts = map[string]bool{
	".fasta": true,
	".fa":    true,
	".faa":   true,
	".fas":   true,
	".fna":   true,
}

// IsFastaName reports whether name looks like a FASTA file the watcher should
// pick up. Hidden files are ignored.
func IsFastaName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return fastaExts[filepath.Ext(strings.TrimSuffix(strings.ToLower(name), ".gz"))]
}

// Stem returns name without its FASTA and compression extensions.
func Stem(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.EqualFold(filepath.Ext(name), ".gz") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

// WatcherConfig holds configuration for the inbox watcher.
type WatcherConfig struct {
	// InboxDir is the directory watched for new FASTA files.
	InboxDir string

	// OutDir receives one sub-directory of pieces per input file.
	OutDir string

	// Pieces is the requested piece count for every file.
	Pieces int

	// DebounceDelay is how long a file must stay quiet before it is split.
	// Default: 500 milliseconds
	DebounceDelay time.Duration
}

// Watcher splits every FASTA file written into an inbox directory.
type Watcher struct {
	cfg      WatcherConfig
	splitter *Splitter
	sinks    ports.PieceSinkFactory
	repo     ports.LedgerRepository
	logger   ports.Logger

	// mu serialises splits and ledger updates.
	mu     sync.Mutex
	ledger domain.Ledger
	loaded bool

	timersMu sync.Mutex
	timers   map[string]*time.Timer
	ready    chan string
}

// NewWatcher creates a Watcher. A nil logger discards output.
func NewWatcher(cfg WatcherConfig, splitter *Splitter, sinks ports.PieceSinkFactory, repo ports.LedgerRepository, logger ports.Logger) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 500 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:      cfg,
		splitter: splitter,
		sinks:    sinks,
		repo:     repo,
		logger:   logger,
		timers:   make(map[string]*time.Timer),
		ready:    make(chan string, 16),
	}
}

// Run splits the files already in the inbox, then watches it until ctx is
// canceled. A file that fails to split is logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.cfg.InboxDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.InboxDir, err)
	}
	w.logger.Info("watching inbox",
		ports.String("inbox", w.cfg.InboxDir),
		ports.String("out", w.cfg.OutDir),
		ports.Int("pieces", w.cfg.Pieces),
	)

	w.processExisting(ctx)

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-w.ready:
			w.processLogged(ctx, path)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !IsFastaName(filepath.Base(event.Name)) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounce(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

// ProcessFile splits the inbox file at path unless the ledger shows this
// version of it was already split.
func (w *Watcher) ProcessFile(ctx context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.loadLedger(ctx)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}

	name := filepath.Base(path)
	logger := log.With(w.logger, ports.String("file", name))
	prev, seen := w.ledger.Lookup(name)
	if seen && prev.Matches(info.Size(), info.ModTime()) {
		logger.Debug("already split, skipping")
		return nil
	}

	stem := Stem(name)
	if seen {
		stem += "-" + info.ModTime().UTC().Format("20060102T150405")
	}
	outDir, err := w.freeDir(stem)
	if err != nil {
		return err
	}

	// Pieces are written to a staging directory that only becomes outDir once
	// the split succeeded, so a failed attempt never blocks a retry.
	staging := filepath.Join(w.cfg.OutDir, "."+name+stagingSuffix)
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("clear staging directory: %w", err)
	}
	sink, err := w.sinks.Open(staging)
	if err != nil {
		return err
	}

	res, err := w.splitter.Split(ctx, path, w.cfg.Pieces, sink)
	if err != nil {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			logger.Warn("failed to remove staging directory", ports.String("dir", staging), ports.Err(rmErr))
		}
		return err
	}
	if err := os.Rename(staging, outDir); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("publish pieces: %w", err)
	}

	w.ledger.Record(domain.LedgerEntry{
		Name:        name,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		OutDir:      outDir,
		Records:     res.Counts.Records,
		Pieces:      res.Plan.Pieces(),
		ProcessedAt: time.Now().UTC(),
	})
	if err := w.repo.Save(ctx, w.ledger); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	logger.Info("inbox file split",
		ports.String("out", outDir),
		ports.Int("pieces", res.Plan.Pieces()),
	)
	return nil
}

// freeDir returns the first of <OutDir>/<stem>, <OutDir>/<stem>-2, ... that
// does not exist yet. Inputs sharing a stem, such as a.fasta and a.fa, get
// separate directories.
func (w *Watcher) freeDir(stem string) (string, error) {
	for i := 1; ; i++ {
		dir := filepath.Join(w.cfg.OutDir, stem)
		if i > 1 {
			dir = fmt.Sprintf("%s-%d", dir, i)
		}
		_, err := os.Lstat(dir)
		if os.IsNotExist(err) {
			return dir, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat output directory: %w", err)
		}
	}
}

func (w *Watcher) loadLedger(ctx context.Context) {
	if w.loaded {
		return
	}
	w.loaded = true
	ledger, err := w.repo.Load(ctx)
	if err != nil {
		w.logger.Error("failed to load ledger, starting empty", ports.Err(err))
	}
	w.ledger = ledger
	if w.ledger.Entries == nil {
		w.ledger = domain.NewLedger()
	}
}

func (w *Watcher) processExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.cfg.InboxDir)
	if err != nil {
		w.logger.Error("failed to list inbox", ports.Err(err))
		return
	}
	for _, e := range entries {
		if e.IsDir() || !IsFastaName(e.Name()) {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		w.processLogged(ctx, filepath.Join(w.cfg.InboxDir, e.Name()))
	}
}

func (w *Watcher) processLogged(ctx context.Context, path string) {
	if err := w.ProcessFile(ctx, path); err != nil {
		w.logger.Error("failed to split inbox file", ports.String("file", path), ports.Err(err))
	}
}

// debounce schedules path once it has been quiet for DebounceDelay.
func (w *Watcher) debounce(ctx context.Context, path string) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.cfg.DebounceDelay, func() {
		w.timersMu.Lock()
		if w.timers[path] == t {
			delete(w.timers, path)
		}
		w.timersMu.Unlock()

		select {
		case w.ready <- path:
		case <-ctx.Done():
		}
	})
	w.timers[path] = t
}

func (w *Watcher) stopTimers() {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
