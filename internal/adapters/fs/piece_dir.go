package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bft-labs/fastaslice/internal/ports"
)

// PieceSuffix is the extension of every split piece.
const PieceSuffix = ".fasta"

// PieceName returns the file name of piece index (1-based).
func PieceName(index int) string {
	return fmt.Sprintf("%d%s", index, PieceSuffix)
}

// PieceDir implements ports.PieceSink by creating numbered files in a directory.
type PieceDir struct {
	dir string
}

// NewPieceDir creates a PieceDir writing into dir. The directory must exist.
func NewPieceDir(dir string) *PieceDir {
	return &PieceDir{dir: dir}
}

// Create opens a new piece file. It refuses to overwrite an existing file.
func (d *PieceDir) Create(index int) (io.WriteCloser, string, error) {
	path := filepath.Join(d.dir, PieceName(index))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, path, err
	}
	return &pieceFile{Writer: bufio.NewWriterSize(f, 64*1024), file: f}, path, nil
}

// pieceFile flushes its buffer before closing the file. The file is closed
// even when the flush fails.
type pieceFile struct {
	*bufio.Writer
	file *os.File
}

func (p *pieceFile) Close() error {
	flushErr := p.Writer.Flush()
	closeErr := p.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// PieceDirFactory implements ports.PieceSinkFactory with PrepareOutputDir and PieceDir.
type PieceDirFactory struct{}

// Open prepares dir and returns a PieceDir for it.
func (PieceDirFactory) Open(dir string) (ports.PieceSink, error) {
	if err := PrepareOutputDir(dir); err != nil {
		return nil, err
	}
	return NewPieceDir(dir), nil
}
