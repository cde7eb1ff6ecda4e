package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/fastaslice/internal/domain"
	"github.com/bft-labs/fastaslice/internal/ports"
	"github.com/bft-labs/fastaslice/pkg/fasta"
	"github.com/bft-labs/fastaslice/pkg/ident"
	"github.com/bft-labs/fastaslice/pkg/log"
)

// FilterResult summarises a filter run.
type FilterResult struct {
	// Records is the number of records scanned.
	Records int

	// Matched is the number of records copied to the output.
	Matched int

	// Identifiers lists the extracted identifier of every copied record, in order.
	Identifiers []string
}

// Filter copies the records whose identifier is accepted.
type Filter struct {
	extractor *ident.Extractor
	logger    ports.Logger
}

// NewFilter creates a Filter. A nil extractor uses ident.Default and a nil
// logger discards output.
func NewFilter(extractor *ident.Extractor, logger ports.Logger) *Filter {
	if extractor == nil {
		extractor = ident.Default()
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Filter{extractor: extractor, logger: logger}
}

// Run scans r and writes every record whose dot-stripped identifier is in
// accepted to w, verbatim and in input order. Lines before the first header are
// dropped. A header no pattern understands aborts the run; output already
// written to w must then be discarded.
func (f *Filter) Run(ctx context.Context, r io.Reader, w io.Writer, accepted domain.PredictionSet) (FilterResult, error) {
	var res FilterResult
	sc := fasta.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rec, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read input: %w", err)
		}
		res.Records++

		id, err := f.extractor.Extract(rec.Header)
		if err != nil {
			return res, fmt.Errorf("record %d: %w", res.Records, err)
		}
		if !accepted.Contains(ident.Normalize(id)) {
			continue
		}
		if _, err := rec.WriteTo(w); err != nil {
			return res, fmt.Errorf("write output: %w", err)
		}
		res.Matched++
		res.Identifiers = append(res.Identifiers, id)
		f.logger.Debug("record matched", ports.String("id", id))
	}

	if n := len(sc.Preamble()); n > 0 {
		f.logger.Warn("skipped lines before first header", ports.Int("lines", n))
	}
	f.logger.Debug("filter complete",
		ports.Int("records", res.Records),
		ports.Int("matched", res.Matched),
		ports.Int("accepted", accepted.Len()),
	)
	return res, nil
}
