// Package logic holds the executable commands and the Result they produce.
package logic

import (
	"errors"
	"fmt"

	"tableflip.dev/medbook/pkg/model"
)

// Command is a parsed, validated user intent.
type Command interface {
	// Execute applies the command to m. On error m is left untouched.
	Execute(m *model.Model) (Result, error)
	// Mutates reports whether a successful Execute changed the master
	// collections and so needs persisting.
	Mutates() bool
}

// Result is the outcome of a successful command, consumed by the shell.
type Result struct {
	Feedback  string `json:"feedback"`
	Help      bool   `json:"help,omitempty"`
	Exit      bool   `json:"exit,omitempty"`
	View      bool   `json:"view,omitempty"`
	ThemePath string `json:"themePath,omitempty"`
}

// HasTheme reports whether the result asks for a theme switch.
func (r Result) HasTheme() bool { return r.ThemePath != "" }

// Feedback builds a plain Result.
func Feedback(format string, args ...any) Result {
	return Result{Feedback: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidPersonIndex      = errors.New("The person index provided is invalid")
	ErrInvalidAppointmentIndex = errors.New("The appointment index provided is invalid")
	ErrDuplicatePerson         = errors.New("This person already exists in the record book")
	ErrNotEdited               = errors.New("At least one field to edit must be provided.")
	ErrStorage                 = errors.New("Could not save data to file. The change is applied in this session but not saved")
)

// CommandError is an execution failure: the command was well formed but
// invalid against the current state.
type CommandError struct {
	Err    error
	Detail string
}

func (e *CommandError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *CommandError) Unwrap() error { return e.Err }

func fail(err error) error { return &CommandError{Err: err} }

// Index is a zero-based position in a displayed list.
type Index int

// FromOneBased converts a user-facing position.
func FromOneBased(i int) Index { return Index(i - 1) }

// OneBased returns the user-facing position.
func (i Index) OneBased() int { return int(i) + 1 }
