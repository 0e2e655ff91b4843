package menu

import (
	"errors"
	"fmt"
)

// ErrInputClosed reports that the input stream ended before a line was read.
var ErrInputClosed = errors.New("input closed")

// InputError wraps a failure to read operator input.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return fmt.Sprintf("read input: %v", e.Err) }

func (e *InputError) Unwrap() error { return e.Err }

// ActionError wraps the failure of a dispatched action.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string { return fmt.Sprintf("action %s: %v", e.Action, e.Err) }

func (e *ActionError) Unwrap() error { return e.Err }
