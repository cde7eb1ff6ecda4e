package verify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/fastaslice/internal/domain"
)

func writePiece(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "1.fasta")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write piece: %v", err)
	}
	return path
}

func TestBiogoVerifier(t *testing.T) {
	path := writePiece(t, ">sp|P1|A desc\nMKV\nLL\n>tr|Q2|B\nMA\n>bare\n")
	v := NewBiogoVerifier()

	if err := v.Verify(path, 3); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if err := v.Verify(path, 2); !errors.Is(err, domain.ErrVerifyFailed) {
		t.Errorf("Verify count mismatch err = %v, want ErrVerifyFailed", err)
	}
}

func TestBiogoVerifierSkipsPreamble(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "comment lines", content: "; comment\n; another\n>sp|P1|A desc\nMKV\n>tr|Q2|B\nMA\n", want: 2},
		{name: "blank line", content: "\n>sp|P1|A desc\nMKV\n", want: 1},
		{name: "preamble only", content: "; nothing here\n", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewBiogoVerifier().Verify(writePiece(t, tt.content), tt.want); err != nil {
				t.Errorf("Verify: %v", err)
			}
		})
	}
}

func TestBiogoVerifierMissingFile(t *testing.T) {
	err := NewBiogoVerifier().Verify(filepath.Join(t.TempDir(), "9.fasta"), 1)
	if err == nil || errors.Is(err, domain.ErrVerifyFailed) {
		t.Errorf("err = %v, want plain open error", err)
	}
}
