package varint

import "github.com/zeebo/errs"

// Error is the class of all varint errors.
var Error = errs.Class("varint")

// Failure kinds. Callers distinguish them with Class.Has.
var (
	// ErrSyntax is returned when text input does not match the
	// decimal integer grammar.
	ErrSyntax = errs.Class("invalid syntax")

	// ErrRange is returned when a value does not fit in 256 bits or
	// in a fixed-width conversion target.
	ErrRange = errs.Class("out of range")

	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrMalformed is returned for invalid external representations.
	ErrMalformed = errs.Class("malformed encoding")
)
