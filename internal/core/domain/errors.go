package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures for the outermost boundary.
type ErrorKind int

const (
	// KindProcessing is any fault raised while analyzing a loaded document.
	KindProcessing ErrorKind = iota
	// KindUsage is a malformed invocation.
	KindUsage
	// KindInput is a document that cannot be located or read.
	KindInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindInput:
		return "input"
	default:
		return "processing"
	}
}

// Error carries a kind, the failing operation and the cause.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UsageError wraps err as a usage error.
func UsageError(op string, err error) error {
	return &Error{Kind: KindUsage, Op: op, Err: err}
}

// InputError wraps err as an input error.
func InputError(op string, err error) error {
	return &Error{Kind: KindInput, Op: op, Err: err}
}

// ProcessingError wraps err as a processing error.
func ProcessingError(op string, err error) error {
	return &Error{Kind: KindProcessing, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindProcessing when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProcessing
}
