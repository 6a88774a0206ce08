package collection

import (
	"fmt"
)

// ErrorKind classifies precondition violations.
type ErrorKind int

const (
	NoError          ErrorKind = iota
	TypeMismatch               // element is not of the requested type
	EmptyGroupSource           // grouping requires at least one element
	NoMatch                    // no element satisfies a predicate
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case EmptyGroupSource:
		return "empty group source"
	case NoMatch:
		return "no element matching predicate"
	}
	return "no error"
}

// Error is returned for misuse of operations which require a result to exist.
type Error struct {
	Kind   ErrorKind
	Op     string // operation which failed
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("collection.%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("collection.%s: %s: %s", e.Op, e.Kind, e.Detail)
}

// Is matches errors by kind, making the Err… variables usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrTypeMismatch     = &Error{Kind: TypeMismatch}
	ErrEmptyGroupSource = &Error{Kind: EmptyGroupSource}
	ErrNoMatch          = &Error{Kind: NoMatch}
)

func fail(kind ErrorKind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}
