package domain

import (
	"errors"

	"github.com/bft-labs/fastaslice/pkg/ident"
)

// Domain errors. Callers check them with errors.Is.
var (
	// ErrMalformedHeader is returned when no identifier pattern matches a header.
	ErrMalformedHeader = ident.ErrMalformedHeader

	// ErrInvalidConfig is returned for configuration rejected before any processing.
	ErrInvalidConfig = errors.New("fastaslice: invalid configuration")

	// ErrOutputNotEmpty is returned when the split output directory has content.
	ErrOutputNotEmpty = errors.New("fastaslice: output directory is not empty")

	// ErrInputExhausted is returned when the input holds fewer records than planned.
	ErrInputExhausted = errors.New("fastaslice: input exhausted before plan was filled")

	// ErrVerifyFailed is returned when a written piece does not hold the planned records.
	ErrVerifyFailed = errors.New("fastaslice: piece verification failed")
)
