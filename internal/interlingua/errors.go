package interlingua

import (
	"errors"
	"fmt"
)

// ErrorKind classifies translation failures so callers can branch on the
// failure class instead of matching message strings.
type ErrorKind int

const (
	ParseFailed ErrorKind = iota + 1
	LinearizationFailed
	TypeMismatch
	UnresolvedEntity
	UnknownGrammar
	InvalidCustomGrammar
	VsaError
	Ambiguous
	Incomplete
	GroundingIncomplete
	UnsupportedLanguage
)

var kindNames = map[ErrorKind]string{
	ParseFailed:          "parse failed",
	LinearizationFailed:  "linearization failed",
	TypeMismatch:         "type mismatch",
	UnresolvedEntity:     "unresolved entity",
	UnknownGrammar:       "unknown grammar",
	InvalidCustomGrammar: "invalid custom grammar",
	VsaError:             "vsa error",
	Ambiguous:            "ambiguous",
	Incomplete:           "incomplete",
	GroundingIncomplete:  "grounding incomplete",
	UnsupportedLanguage:  "unsupported language",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// Error is the typed failure reported by translation operations. Op names
// the failing operation, Detail carries the human-readable specifics, and
// Expected/Actual are set when a category constraint was violated.
type Error struct {
	Kind     ErrorKind
	Op       string
	Detail   string
	Expected Category
	Actual   Category
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Kind == TypeMismatch {
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a typed error with a fixed detail string.
func NewError(kind ErrorKind, op, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

// Errorf builds a typed error with a formatted detail string.
func Errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a typed error so errors.Is/As still reach it.
func Wrap(kind ErrorKind, op, detail string, err error) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail, Err: err}
}

// NewTypeMismatch reports a category violation at the given tree path.
func NewTypeMismatch(op, path string, expected, actual Category) *Error {
	return &Error{
		Kind:     TypeMismatch,
		Op:       op,
		Detail:   "at " + path,
		Expected: expected,
		Actual:   actual,
	}
}

// IsKind reports whether err is (or wraps) an interlingua error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf extracts the error kind when err carries one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
