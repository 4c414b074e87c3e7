package parser

import (
	"errors"
	"fmt"
)

const invalidFormat = "Invalid command format!"

var (
	// ErrUnknownCommand is returned for an unrecognised command word.
	ErrUnknownCommand = errors.New("Unknown command")
	// ErrInvalidFormat is returned when the arguments do not match the verb's usage.
	ErrInvalidFormat = errors.New(invalidFormat)
	// ErrDuplicatePrefix is returned when a single-valued prefix is repeated.
	ErrDuplicatePrefix = errors.New("Multiple values specified for the following single-valued field(s)")
	// ErrInvalidIndex is returned for a non-positive or non-numeric index.
	ErrInvalidIndex = errors.New("Index is not a non-zero unsigned integer.")
	// ErrUnknownTheme is returned for a theme name with no stylesheet.
	ErrUnknownTheme = errors.New("Unknown theme")
)

// ParseError is a parse failure. Usage, when set, is the syntax hint of the
// verb being parsed.
type ParseError struct {
	Err    error
	Detail string
	Usage  string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Usage != "" {
		msg += "\n" + e.Usage
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// withUsage attaches usage to err unless it already carries one.
func withUsage(err error, usage string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		if pe.Usage == "" {
			cp := *pe
			cp.Usage = usage
			return &cp
		}
		return pe
	}
	return &ParseError{Err: err, Usage: usage}
}

func formatError(usage string) error {
	return &ParseError{Err: ErrInvalidFormat, Usage: usage}
}
