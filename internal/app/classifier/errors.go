package classifier

import "errors"

// User-facing outcomes; they end the run without failing the process.
var (
	ErrEmptyName     = errors.New("empty name")
	ErrInvalidOption = errors.New("invalid option")
)

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrUnknownTable = errors.New("unknown tier table")
	ErrNoOptions    = errors.New("mode has no menu options")
	ErrInvalidScore = errors.New("invalid score kind")
)
