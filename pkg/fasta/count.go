package fasta

import (
	"io"
	"strings"
)

// Counts summarises one pass over a FASTA input.
// TrEMBL and SwissProt are informational only.
type Counts struct {
	Lines     int `json:"lines"`
	Records   int `json:"records"`
	TrEMBL    int `json:"tr"`
	SwissProt int `json:"sp"`
}

// Other returns the number of records that are neither >tr nor >sp.
func (c Counts) Other() int {
	return c.Records - c.TrEMBL - c.SwissProt
}

// Count reads r to the end and tallies lines and record headers.
func Count(r io.Reader) (Counts, error) {
	var c Counts
	lr := newLineReader(r)
	for {
		line, err := lr.next()
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return c, err
		}
		c.Lines++
		if !IsHeader(line) {
			continue
		}
		c.Records++
		switch {
		case strings.HasPrefix(line, ">tr"):
			c.TrEMBL++
		case strings.HasPrefix(line, ">sp"):
			c.SwissProt++
		}
	}
}
