package ir

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an [ErrorType] node.
type ErrorKind int

const (
	InvalidValue ErrorKind = iota
	MissingColon
	MissingComma
	TypeMismatch
	ArrayOutOfBounds
	PropertyNotFound
	NestingTooDeep
	UnexpectedEnd
	TrailingData
	InvalidPath
)

var (
	ErrInvalidValue     = errors.New("invalid value")
	ErrMissingColon     = errors.New("missing colon")
	ErrMissingComma     = errors.New("missing comma")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrArrayOutOfBounds = errors.New("array index out of bounds")
	ErrPropertyNotFound = errors.New("property not found")
	ErrNestingTooDeep   = errors.New("nesting too deep")
	ErrUnexpectedEnd    = errors.New("unexpected end of input")
	ErrTrailingData     = errors.New("trailing data")
	ErrInvalidPath      = errors.New("invalid path")

	errUnknownKind = errors.New("unknown error")
)

var kindErrs = [...]error{
	InvalidValue:     ErrInvalidValue,
	MissingColon:     ErrMissingColon,
	MissingComma:     ErrMissingComma,
	TypeMismatch:     ErrTypeMismatch,
	ArrayOutOfBounds: ErrArrayOutOfBounds,
	PropertyNotFound: ErrPropertyNotFound,
	NestingTooDeep:   ErrNestingTooDeep,
	UnexpectedEnd:    ErrUnexpectedEnd,
	TrailingData:     ErrTrailingData,
	InvalidPath:      ErrInvalidPath,
}

// Sentinel returns the error value errors.Is matches for k.
func (k ErrorKind) Sentinel() error {
	if k < 0 || int(k) >= len(kindErrs) {
		return errUnknownKind
	}
	return kindErrs[k]
}

func (k ErrorKind) String() string {
	return k.Sentinel().Error()
}

// Error is the payload of an ErrorType node. Parse errors carry the 1-based
// line and column where they were detected; accessor errors carry zeros.
type Error struct {
	Kind   ErrorKind
	Line   int
	Column int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s at %d:%d", e.Kind, e.Line, e.Column)
}

func (e *Error) Unwrap() error {
	return e.Kind.Sentinel()
}

// FirstError returns the first embedded error found in a pre-order walk of
// node, or nil.
func FirstError(node *Node) error {
	var res error
	_ = node.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost || res != nil {
			return false, nil
		}
		if n.Type == ErrorType {
			res = n.Err()
			return false, nil
		}
		return true, nil
	})
	return res
}
