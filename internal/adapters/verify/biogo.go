// Package verify re-reads written pieces with an independent FASTA parser.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/bft-labs/fastaslice/internal/domain"
	pfasta "github.com/bft-labs/fastaslice/pkg/fasta"
)

// BiogoVerifier implements ports.PieceVerifier with the biogo FASTA reader.
type BiogoVerifier struct {
	alpha alphabet.Alphabet
}

// NewBiogoVerifier returns a verifier parsing pieces as protein sequences.
// Letters are not checked against the alphabet.
func NewBiogoVerifier() *BiogoVerifier {
	return &BiogoVerifier{alpha: alphabet.Protein}
}

// Verify counts the records in path and compares them to want.
func (v *BiogoVerifier) Verify(path string, want int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open piece: %w", err)
	}
	defer f.Close()

	body, err := skipPreamble(f)
	if err != nil {
		return fmt.Errorf("read piece: %w", err)
	}
	r := fasta.NewReader(body, linear.NewSeq("", nil, v.alpha))
	sc := seqio.NewScanner(r)
	got := 0
	for sc.Next() {
		got++
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrVerifyFailed, path, err)
	}
	if got != want {
		return fmt.Errorf("%w: %s holds %d records, want %d", domain.ErrVerifyFailed, path, got, want)
	}
	return nil
}

// skipPreamble drops the lines before the first header, which the first piece
// of a split carries over from its input.
func skipPreamble(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if pfasta.IsHeader(line) {
			return io.MultiReader(strings.NewReader(line), br), nil
		}
		if err == io.EOF {
			return strings.NewReader(""), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
