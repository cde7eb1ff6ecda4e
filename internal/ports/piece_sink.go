package ports

import "io"

// PieceSink creates the output files of a split.
type PieceSink interface {
	// Create opens piece index (1-based) for writing and returns it with its path.
	// The caller closes the writer before creating the next piece.
	Create(index int) (io.WriteCloser, string, error)
}

// PieceVerifier checks a finished piece file.
type PieceVerifier interface {
	// Verify returns an error if the piece at path does not hold exactly want records.
	Verify(path string, want int) error
}

// PieceSinkFactory prepares an output directory and returns a sink writing into it.
type PieceSinkFactory interface {
	// Open fails if dir cannot be used for a fresh split.
	Open(dir string) (PieceSink, error)
}
