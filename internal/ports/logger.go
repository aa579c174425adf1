package ports

import "github.com/prt-labs/prtdecode/pkg/log"

// Logger is the structured logging port. It aliases the embeddable
// definition in pkg/log so internal layers and library consumers share one
// interface.
type Logger = log.Logger

// Field is a key-value pair attached to a log message.
type Field = log.Field

// Field constructors, re-exported so the internal layers build fields
// without importing pkg/log directly.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
