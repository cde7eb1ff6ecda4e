package fasta

import (
	"bufio"
	"io"
)

// lineReader yields raw lines, terminators included.
type lineReader struct {
	r     *bufio.Reader
	err   error
	lines int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the next line or the first error seen. Errors are sticky.
func (lr *lineReader) next() (string, error) {
	if lr.err != nil {
		return "", lr.err
	}
	line, err := lr.r.ReadString('\n')
	if err != nil {
		lr.err = err
		if len(line) == 0 {
			return "", err
		}
	}
	lr.lines++
	return line, nil
}

// Scanner pulls whole records from a line source.
type Scanner struct {
	lr        *lineReader
	started   bool
	header    string
	hasHeader bool
	preamble  []string
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lr: newLineReader(r)}
}

// Next returns the next record. It returns io.EOF once the input holds no more
// records, and any read error as-is.
func (s *Scanner) Next() (Record, error) {
	if !s.started {
		s.started = true
		if err := s.skipPreamble(); err != nil {
			return Record{}, err
		}
	}
	if !s.hasHeader {
		if s.lr.err != nil {
			return Record{}, s.lr.err
		}
		return Record{}, io.EOF
	}

	rec := Record{Header: s.header}
	s.hasHeader = false
	for {
		line, err := s.lr.next()
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return Record{}, err
		}
		if IsHeader(line) {
			s.header = line
			s.hasHeader = true
			return rec, nil
		}
		rec.Body = append(rec.Body, line)
	}
}

// skipPreamble consumes lines up to the first header.
func (s *Scanner) skipPreamble() error {
	for {
		line, err := s.lr.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if IsHeader(line) {
			s.header = line
			s.hasHeader = true
			return nil
		}
		s.preamble = append(s.preamble, line)
	}
}

// Preamble returns the lines found before the first header.
// It is only meaningful after the first call to Next.
func (s *Scanner) Preamble() []string {
	return s.preamble
}

// LinesRead returns the number of lines consumed so far.
func (s *Scanner) LinesRead() int {
	return s.lr.lines
}
