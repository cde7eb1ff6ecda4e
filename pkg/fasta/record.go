package fasta

import (
	"io"
	"strings"
)

// HeaderPrefix marks the first line of a record.
const HeaderPrefix = ">"

// IsHeader reports whether line starts a new record.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, HeaderPrefix)
}

// Record is one header line and the body lines that follow it.
// Lines keep their terminators; the last line of a file may have none.
type Record struct {
	// Header is the raw header line, starting with '>'.
	Header string

	// Body holds the raw lines up to the next header. None of them starts with '>'.
	Body []string
}

// Title returns the header without its line terminator.
func (r Record) Title() string {
	return strings.TrimRight(r.Header, "\r\n")
}

// Lines returns the number of lines the record spans.
func (r Record) Lines() int {
	return 1 + len(r.Body)
}

// WriteTo writes the record verbatim.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := io.WriteString(w, r.Header)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, line := range r.Body {
		n, err = io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
