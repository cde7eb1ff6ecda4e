package ports

import "github.com/bft-labs/fastaslice/pkg/log"

// Logger is the structured logger used throughout the application layer.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported for the application layer.
var (
	String  = log.String
	Strings = log.Strings
	Int     = log.Int
	Err     = log.Err
)
