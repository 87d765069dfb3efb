package model

import "fmt"

// NotFoundError reports a referenced sale or attempt that does not exist.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// StateTransitionError reports an operation attempted on a sale in the wrong
// lifecycle state. The current state is included so callers can report it.
type StateTransitionError struct {
	SaleID string
	From   SaleStatus
	To     SaleStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("sale %s: illegal transition %s -> %s", e.SaleID, e.From, e.To)
}

// ValidationError reports malformed input to a pure function. It is never
// retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
