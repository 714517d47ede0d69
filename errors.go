package main

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an evaluation failure. Each kind is itself an error,
// so callers may match with errors.Is(err, ErrStackUnderflow) regardless of
// the detail carried by an *Error.
type ErrorKind int

// Evaluation error kinds.
const (
	ErrStackUnderflow ErrorKind = iota + 1
	ErrTypeMismatch
	ErrUndefinedVariable
	ErrUnknownToken
	ErrDefinition
	ErrDepthExceeded
)

var strErrorKind = [...]string{
	"<no error>",
	"stack underflow",
	"type mismatch",
	"undefined variable",
	"unknown token",
	"definition error",
	"call depth exceeded",
}

func (k ErrorKind) Error() string {
	if k > 0 && int(k) < len(strErrorKind) {
		return strErrorKind[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes an evaluation failure along with the context it happened in.
type Error struct {
	Kind ErrorKind

	Word  string // innermost word being executed, if any
	Token string // offending token (UnknownToken), or variable name (UndefinedVariable)

	Expected Type // TypeMismatch only
	Found    Type // TypeMismatch only

	Reason string // DefinitionError and DepthExceeded detail
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	switch e.Kind {
	case ErrStackUnderflow:
		if e.Word != "" {
			fmt.Fprintf(&sb, " in %v", e.Word)
		}
	case ErrTypeMismatch:
		if e.Word != "" {
			fmt.Fprintf(&sb, " in %v", e.Word)
		}
		fmt.Fprintf(&sb, ": expected %v, found %v", e.Expected, e.Found)
	case ErrUndefinedVariable, ErrUnknownToken:
		fmt.Fprintf(&sb, ": %v", e.Token)
	case ErrDefinition, ErrDepthExceeded:
		if e.Reason != "" {
			fmt.Fprintf(&sb, ": %v", e.Reason)
		}
	}
	return sb.String()
}

// Unwrap returns the error's kind.
func (e *Error) Unwrap() error { return e.Kind }

func (in *Interp) underflow() error {
	return &Error{Kind: ErrStackUnderflow, Word: in.word}
}

func (in *Interp) mismatch(expected Type, found Value) error {
	return &Error{Kind: ErrTypeMismatch, Word: in.word, Expected: expected, Found: found.Type()}
}

func definitionError(reason string, args ...interface{}) error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &Error{Kind: ErrDefinition, Reason: reason}
}
