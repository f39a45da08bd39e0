package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an action was refused.
type ErrorKind string

const (
	KindInvalidAction        ErrorKind = "invalid action"
	KindPreconditionNotMet   ErrorKind = "precondition not met"
	KindInsufficientResource ErrorKind = "insufficient resource"
)

var (
	ErrInvalidAction = errors.New(string(KindInvalidAction))
	ErrPrecondition  = errors.New(string(KindPreconditionNotMet))
	ErrInsufficient  = errors.New(string(KindInsufficientResource))
	ErrUnknownQuest  = errors.New("unknown quest")
)

// ActionError is returned when an action handler refuses to run.
// The character is left untouched apart from the event log entry.
type ActionError struct {
	Action string
	Kind   ErrorKind
	Reason string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Action, e.Kind, e.Reason)
}

// Is lets callers match on the kind sentinels with errors.Is.
func (e *ActionError) Is(target error) bool {
	switch target {
	case ErrInvalidAction:
		return e.Kind == KindInvalidAction
	case ErrPrecondition:
		return e.Kind == KindPreconditionNotMet
	case ErrInsufficient:
		return e.Kind == KindInsufficientResource
	default:
		return false
	}
}

func invalidAction(action, reason string) *ActionError {
	return &ActionError{Action: action, Kind: KindInvalidAction, Reason: reason}
}

func preconditionNotMet(action, reason string) *ActionError {
	return &ActionError{Action: action, Kind: KindPreconditionNotMet, Reason: reason}
}

func insufficient(action, reason string) *ActionError {
	return &ActionError{Action: action, Kind: KindInsufficientResource, Reason: reason}
}

// refuse records the refusal in the event log and returns it.
func (c *Character) refuse(err *ActionError) error {
	c.logEvent("[Warning] " + err.Reason)
	c.logger().Debug("action refused", "action", err.Action, "kind", string(err.Kind), "reason", err.Reason)
	return err
}
