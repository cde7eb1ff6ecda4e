// Package ident extracts record identifiers from FASTA header lines.
//
// An Extractor holds an ordered chain of Matchers; the first one that matches a
// header wins. The default chain understands UniProt headers
// (">sp|P12345|...", ">tr|Q9XYZ1|...", ">|ID|...") and falls back to the first
// whitespace-delimited token after '>'.
package ident

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedHeader is matched by errors.Is for every MalformedHeaderError.
var ErrMalformedHeader = errors.New("malformed header")

// MalformedHeaderError reports a header that no matcher understood.
type MalformedHeaderError struct {
	Header string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("no identifier pattern matches header %q", e.Header)
}

// Is makes errors.Is(err, ErrMalformedHeader) true.
func (e *MalformedHeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}

// Matcher pulls an identifier out of a trimmed header line.
type Matcher interface {
	Match(header string) (string, bool)
}

// RegexpMatcher returns the first capture group of its expression.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// NewRegexpMatcher compiles expr, which must have at least one capture group.
func NewRegexpMatcher(expr string) (*RegexpMatcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group", expr)
	}
	return &RegexpMatcher{re: re}, nil
}

// MustRegexpMatcher is NewRegexpMatcher that panics on a bad expression.
func MustRegexpMatcher(expr string) *RegexpMatcher {
	m, err := NewRegexpMatcher(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// Match implements Matcher.
func (m *RegexpMatcher) Match(header string) (string, bool) {
	sub := m.re.FindStringSubmatch(header)
	if sub == nil {
		return "", false
	}
	return sub[1], true
}

func (m *RegexpMatcher) String() string { return m.re.String() }

// Header patterns in priority order.
const (
	UniProtPattern    = `^>(?:sp|tr|)\|([^|]*)\|`
	FirstTokenPattern = `>(.*?)\s`
)

var (
	uniProt    = MustRegexpMatcher(UniProtPattern)
	firstToken = MustRegexpMatcher(FirstTokenPattern)
)

// Extractor tries its matchers in order.
type Extractor struct {
	matchers []Matcher
}

// New returns an Extractor over matchers, tried in the given order.
func New(matchers ...Matcher) *Extractor {
	return &Extractor{matchers: matchers}
}

// Default returns the UniProt-then-first-token extractor.
func Default() *Extractor {
	return New(uniProt, firstToken)
}

// Extract returns the identifier of header. Surrounding whitespace, including
// the line terminator, is ignored.
func (e *Extractor) Extract(header string) (string, error) {
	trimmed := strings.TrimSpace(header)
	for _, m := range e.matchers {
		if id, ok := m.Match(trimmed); ok {
			return id, nil
		}
	}
	return "", &MalformedHeaderError{Header: trimmed}
}

// Normalize strips every '.' so that "ABC.1" and "ABC1" compare equal.
func Normalize(id string) string {
	return strings.ReplaceAll(id, ".", "")
}
