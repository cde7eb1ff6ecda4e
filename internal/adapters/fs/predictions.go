package fs

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bft-labs/fastaslice/internal/domain"
	"github.com/bft-labs/fastaslice/pkg/fasta"
)

// LoadPredictionSet reads one accepted identifier per line from path.
// Only the line terminator is removed; lines are otherwise taken as-is.
func LoadPredictionSet(path string) (domain.PredictionSet, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open predictions: %w", err)
	}
	defer rc.Close()

	set := domain.NewPredictionSet()
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		set.Add(strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read predictions %s: %w", path, err)
	}
	return set, nil
}
