// Package apperror classifies request failures so the router can pick an
// HTTP status and a client-safe message without inspecting causes.
package apperror

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure classifications.
type Kind int

const (
	Internal Kind = iota
	Validation
	Forbidden
	NotFound
	UpstreamFailure
	NoAnswer
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case UpstreamFailure:
		return "upstream_failure"
	case NoAnswer:
		return "no_answer"
	default:
		return "internal"
	}
}

// DefaultMessage is the client-facing text used when an Error carries none.
func (k Kind) DefaultMessage() string {
	switch k {
	case Validation:
		return "Invalid request."
	case Forbidden:
		return "Forbidden."
	case NotFound:
		return "Not found."
	case UpstreamFailure:
		return "Tutor is temporarily unavailable. Please try again."
	case NoAnswer:
		return "No response from tutor model."
	default:
		return "Internal server error."
	}
}

// Error is a classified failure. Message is safe to return to clients;
// Err holds the underlying cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.DefaultMessage()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without an underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err. The cause stays reachable through errors.Is/As.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the classification of err, Internal when unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// PublicMessage returns the client-safe message for err.
// Unclassified errors never expose their text.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		return e.Kind.DefaultMessage()
	}
	return Internal.DefaultMessage()
}
