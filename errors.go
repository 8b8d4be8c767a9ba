package qsim

import (
	"errors"
	"fmt"
)

/*
Contract violations. None of these are recoverable: every operand is an
in-memory value supplied by the caller, so the operation panics with one of
these sentinels wrapped in context. Callers that recover can still match
with errors.Is.
*/
var (
	ErrDimensionMismatch = errors.New("qsim: dimension mismatch")
	ErrNonSquare         = errors.New("qsim: matrix is not square")
	ErrBadShape          = errors.New("qsim: invalid shape")
	ErrOutOfBounds       = errors.New("qsim: block does not fit")
	ErrOutOfRange        = errors.New("qsim: index out of range")
	ErrWidthExceeded     = errors.New("qsim: gate wider than register")
	ErrNotCollapsed      = errors.New("qsim: value read before collapse")
	ErrCollapsed         = errors.New("qsim: register already collapsed")
)

func violate(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}
