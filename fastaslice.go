// Package fastaslice filters and splits FASTA files on whole-record boundaries.
//
// Example usage:
//
//	res, err := fastaslice.Split(ctx, "uniprot_sprot.fasta", "pieces", 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Files))
//
//	ids, _ := os.ReadFile("predictions_out.txt")
//	_, err = fastaslice.Filter(ctx, in, os.Stdout, strings.Fields(string(ids)))
package fastaslice

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/fastaslice/internal/adapters/fs"
	"github.com/bft-labs/fastaslice/internal/adapters/verify"
	"github.com/bft-labs/fastaslice/internal/app"
	"github.com/bft-labs/fastaslice/internal/domain"
	"github.com/bft-labs/fastaslice/pkg/fasta"
	"github.com/bft-labs/fastaslice/pkg/ident"
	"github.com/bft-labs/fastaslice/pkg/log"
)

// Re-export result types so callers need not import internal packages.
type (
	// FilterResult summarises a Filter call.
	FilterResult = app.FilterResult

	// SplitResult summarises a Split call.
	SplitResult = app.SplitResult
)

// Errors returned by Filter and Split, for use with errors.Is.
var (
	ErrMalformedHeader = domain.ErrMalformedHeader
	ErrInvalidConfig   = domain.ErrInvalidConfig
	ErrOutputNotEmpty  = domain.ErrOutputNotEmpty
	ErrInputExhausted  = domain.ErrInputExhausted
	ErrVerifyFailed    = domain.ErrVerifyFailed
)

// Option configures optional behavior of Filter and Split.
type Option func(*options)

type options struct {
	logger    log.Logger
	extractor *ident.Extractor
	verify    bool
}

// WithLogger sets the logger. Default: discard.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithExtractor replaces the default identifier patterns used by Filter.
func WithExtractor(e *ident.Extractor) Option {
	return func(o *options) { o.extractor = e }
}

// WithVerify makes Split re-read every piece and check its record count.
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Filter copies to w the records of r whose dot-stripped identifier is one of
// accepted, verbatim and in input order.
func Filter(ctx context.Context, r io.Reader, w io.Writer, accepted []string, opts ...Option) (FilterResult, error) {
	o := buildOptions(opts)
	return app.NewFilter(o.extractor, o.logger).Run(ctx, r, w, domain.NewPredictionSet(accepted...))
}

// Split writes the records of the FASTA file at path into at most pieces files
// named 1.fasta, 2.fasta, ... in outDir, which is created when missing and
// must be empty. Arguments are checked before anything is created.
func Split(ctx context.Context, path, outDir string, pieces int, opts ...Option) (SplitResult, error) {
	if path == "" || path == fasta.Stdin {
		return SplitResult{}, fmt.Errorf("%w: split needs a re-readable input file", ErrInvalidConfig)
	}
	if pieces <= 0 {
		return SplitResult{}, fmt.Errorf("%w: piece count must be positive, got %d", ErrInvalidConfig, pieces)
	}
	o := buildOptions(opts)
	sink, err := fs.PieceDirFactory{}.Open(outDir)
	if err != nil {
		return SplitResult{}, err
	}
	var sopts []app.SplitterOption
	if o.verify {
		sopts = append(sopts, app.WithVerifier(verify.NewBiogoVerifier()))
	}
	return app.NewSplitter(o.logger, sopts...).Split(ctx, path, pieces, sink)
}

// Plan returns the piece sizes Split uses for total records and the requested
// piece count: min(pieces, total) sizes differing by at most one, larger first.
func Plan(total, pieces int) ([]int, error) {
	plan, err := app.Plan(total, pieces)
	return []int(plan), err
}
