// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

import (
	"github.com/pkg/errors"
)

// Operator preconditions are fatal: operators return only their result
// signal, so a violation panics with an error wrapping one of the
// sentinel classes below. Use errors.Is on a recovered value to test for
// a class.
var (
	// ErrWidthMismatch reports a binary operator applied to operands of
	// unequal widths.
	ErrWidthMismatch = errors.New("operand width mismatch")

	// ErrOutOfRange reports a bit index or range outside [0, width).
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty reports an empty signal, or an empty list, passed to an
	// operator that requires data.
	ErrEmpty = errors.New("empty input")

	// ErrBadConstant reports a malformed constant literal.
	ErrBadConstant = errors.New("bad constant")

	// ErrNonConstant reports a value conversion applied to a symbolic,
	// non-constant signal.
	ErrNonConstant = errors.New("not a constant")

	// ErrMuxArity reports a mux with fewer than 2 or more than
	// 2^width(sel) inputs.
	ErrMuxArity = errors.New("mux arity")
)

func failf(class error, format string, args ...interface{}) {
	panic(errors.Wrapf(class, format, args...))
}
