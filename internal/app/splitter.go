package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/fastaslice/internal/domain"
	"github.com/bft-labs/fastaslice/internal/ports"
	"github.com/bft-labs/fastaslice/pkg/fasta"
	"github.com/bft-labs/fastaslice/pkg/log"
)

// SplitResult summarises a split run.
type SplitResult struct {
	Counts fasta.Counts
	Plan   domain.SplitPlan
	Files  []string
}

// Splitter writes balanced pieces of whole records.
type Splitter struct {
	logger   ports.Logger
	verifier ports.PieceVerifier
}

// SplitterOption configures optional behavior of a Splitter.
type SplitterOption func(*Splitter)

// WithVerifier checks every piece after it is written.
func WithVerifier(v ports.PieceVerifier) SplitterOption {
	return func(s *Splitter) {
		s.verifier = v
	}
}

// NewSplitter creates a Splitter. A nil logger discards output.
func NewSplitter(logger ports.Logger, opts ...SplitterOption) *Splitter {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	s := &Splitter{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split counts the records of the file at path, plans at most requested
// pieces and writes them through sink. Zero records write nothing.
func (s *Splitter) Split(ctx context.Context, path string, requested int, sink ports.PieceSink) (SplitResult, error) {
	var res SplitResult
	if path == "" || path == fasta.Stdin {
		return res, fmt.Errorf("%w: split needs a re-readable input file", domain.ErrInvalidConfig)
	}
	if requested <= 0 {
		return res, fmt.Errorf("%w: piece count must be positive, got %d", domain.ErrInvalidConfig, requested)
	}

	counts, err := fasta.CountFile(path)
	if err != nil {
		return res, fmt.Errorf("count records: %w", err)
	}
	res.Counts = counts
	s.logger.Debug("detected input layout",
		ports.String("input", path),
		ports.Int("lines", counts.Lines),
		ports.Int("records", counts.Records),
		ports.Int("tr", counts.TrEMBL),
		ports.Int("sp", counts.SwissProt),
		ports.Int("other", counts.Other()),
	)

	if counts.Records > 0 && counts.Records < requested {
		s.logger.Warn("fewer records than requested pieces, shrinking piece count",
			ports.Int("requested", requested),
			ports.Int("pieces", counts.Records),
		)
	}
	plan, err := Plan(counts.Records, requested)
	if err != nil {
		return res, err
	}
	res.Plan = plan
	if plan.Empty() {
		s.logger.Debug("no records found, nothing to write", ports.String("input", path))
		return res, nil
	}

	rc, err := fasta.Open(path)
	if err != nil {
		return res, fmt.Errorf("reopen input: %w", err)
	}
	defer rc.Close()

	res.Files, err = s.Apply(ctx, rc, plan, sink)
	if err != nil {
		return res, err
	}

	if s.verifier != nil {
		for i, file := range res.Files {
			if err := s.verifier.Verify(file, plan[i]); err != nil {
				return res, err
			}
		}
		s.logger.Debug("pieces verified", ports.Int("pieces", len(res.Files)))
	}

	s.logger.Debug("split complete",
		ports.Int("records", counts.Records),
		ports.Int("pieces", plan.Pieces()),
		ports.Int("largest", plan[0]),
		ports.Int("smallest", plan[len(plan)-1]),
		ports.Strings("files", res.Files),
	)
	return res, nil
}

// Apply reads r from the start and writes plan[i] whole records to piece i+1.
// Lines before the first header go at the top of the first piece. Each piece
// is closed before the next one is created. It returns the paths written so far.
func (s *Splitter) Apply(ctx context.Context, r io.Reader, plan domain.SplitPlan, sink ports.PieceSink) ([]string, error) {
	sc := fasta.NewScanner(r)
	files := make([]string, 0, plan.Pieces())
	for i, size := range plan {
		path, err := s.writePiece(ctx, sc, i+1, size, sink)
		if path != "" {
			files = append(files, path)
		}
		if err != nil {
			return files, err
		}
		s.logger.Debug("piece written", ports.String("path", path), ports.Int("records", size))
	}
	return files, nil
}

func (s *Splitter) writePiece(ctx context.Context, sc *fasta.Scanner, index, size int, sink ports.PieceSink) (path string, err error) {
	w, path, err := sink.Create(index)
	if err != nil {
		return "", fmt.Errorf("create piece %d: %w", index, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close piece %s: %w", path, cerr)
		}
	}()

	for n := 0; n < size; n++ {
		if err := ctx.Err(); err != nil {
			return path, err
		}
		rec, err := sc.Next()
		if err == io.EOF {
			return path, fmt.Errorf("%w: piece %d got %d of %d records", domain.ErrInputExhausted, index, n, size)
		}
		if err != nil {
			return path, fmt.Errorf("read input: %w", err)
		}
		if index == 1 && n == 0 {
			for _, line := range sc.Preamble() {
				if _, err := io.WriteString(w, line); err != nil {
					return path, fmt.Errorf("write piece %s: %w", path, err)
				}
			}
		}
		if _, err := rec.WriteTo(w); err != nil {
			return path, fmt.Errorf("write piece %s: %w", path, err)
		}
	}
	return path, nil
}
