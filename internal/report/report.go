// Package report maps the result of resolving one utterance onto exactly
// one of three outcomes: success, not understood, or internal exception.
package report

import (
	"errors"
	"fmt"

	"github.com/appengine-ltd/tvremote/internal/command"
)

type Status int

const (
	Success Status = iota
	NotUnderstood
	InternalException
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NotUnderstood:
		return "not_understood"
	case InternalException:
		return "internal_exception"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Error codes surfaced to the dispatcher.
const (
	CodeNotUnderstood = "E_QUERY_NOT_UNDERSTOOD"
	CodeException     = "E_EXCEPTION"
)

// ErrNotUnderstood marks failures that mean the utterance had no usable
// reading. Every other error is an internal exception.
var ErrNotUnderstood = errors.New("query not understood")

// Error is a not-understood failure with an optional hint for the user.
type Error struct {
	Reason string
	Hint   string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrNotUnderstood, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotUnderstood, e.Reason)
}

func (e *Error) Is(target error) bool { return target == ErrNotUnderstood }

func (e *Error) Unwrap() error { return e.Cause }

// NotUnderstoodf builds an *Error with a formatted reason.
func NotUnderstoodf(format string, args ...any) *Error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

type Outcome struct {
	Status  Status
	Command string
	Payload *command.Payload
	// Detail describes the failure; empty on success.
	Detail string
	// Hint is an example phrasing or a channel suggestion for the user.
	Hint string
}

// Code returns the dispatcher error code, or "" on success.
func (o Outcome) Code() string {
	switch o.Status {
	case Success:
		return ""
	case NotUnderstood:
		return CodeNotUnderstood
	default:
		return CodeException + ": " + o.Detail
	}
}

func (o Outcome) OK() bool { return o.Status == Success }

// Succeeded encodes c into a success outcome.
func Succeeded(c command.Command) Outcome {
	p := c.Payload()
	return Outcome{
		Status:  Success,
		Command: command.Encode(c),
		Payload: &p,
	}
}

// FromError classifies err. A nil error is not a valid input.
func FromError(err error) Outcome {
	if err == nil {
		return Outcome{Status: InternalException, Detail: "no command and no error"}
	}
	if errors.Is(err, ErrNotUnderstood) {
		out := Outcome{Status: NotUnderstood, Detail: err.Error()}
		var re *Error
		if errors.As(err, &re) {
			out.Hint = re.Hint
		}
		return out
	}
	return Outcome{Status: InternalException, Detail: err.Error()}
}

// Guard runs fn and turns whatever it produces, including a panic, into an
// outcome. Nothing escapes.
func Guard(fn func() (command.Command, error)) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Status: InternalException, Detail: fmt.Sprint(r)}
		}
	}()
	c, err := fn()
	if err != nil {
		return FromError(err)
	}
	return Succeeded(c)
}
