package core

import "fmt"

// ErrorKind is the coarse category attached to every engine error. It lets
// callers branch on what went wrong without string matching.
type ErrorKind int

const (
	ErrGeneral ErrorKind = iota
	ErrConfig
	ErrContext
	ErrFile
	ErrParsing
	ErrInput
	ErrNetwork
	ErrMap
	ErrEditorAction
	ErrPhysics
	ErrImage
	ErrFont
)

func (k ErrorKind) String() string {
	switch k {
	case ErrConfig:
		return "config error"
	case ErrContext:
		return "context error"
	case ErrFile:
		return "file error"
	case ErrParsing:
		return "parsing error"
	case ErrInput:
		return "input error"
	case ErrNetwork:
		return "network error"
	case ErrMap:
		return "map error"
	case ErrEditorAction:
		return "editor action error"
	case ErrPhysics:
		return "physics error"
	case ErrImage:
		return "image error"
	case ErrFont:
		return "font error"
	default:
		return "general error"
	}
}

// Error is the single error type used across the engine: a kind plus either
// a message or a wrapped underlying error.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps an underlying error with a kind.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Errorf builds a message-only error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err if it is (or wraps) a *Error, and
// ErrGeneral otherwise.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrGeneral
}
