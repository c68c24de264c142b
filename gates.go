// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// Gates is the minimal contract a signal backend must provide. S is the
// backend's opaque signal type; the library never introspects it beyond
// these operations.
//
// Width semantics:
//
//	Empty          width 0; the sole zero-width value
//	Constant(s)    width len(s); bit-exact, s is MSB-first over {0,1}
//	Concat(xs)     sum of widths; xs[0] becomes the MSBs
//	Select(x,h,l)  h-l+1; 0 <= l <= h < width(x)
//	Name(x,n)      width(x); value preserved, a signal may carry
//	               several names
//	And/Or/Xor     operand width; operands must have equal widths
//	Not            operand width
//
// Backends may assume the derivation layer has already validated widths
// and ranges: every call a *Comb makes to a Gates method honors the
// table above.
type Gates[S any] interface {
	// Empty returns the zero-width signal.
	Empty() S
	// Width returns the number of bits in x.
	Width(x S) int
	// Constant returns a constant with the given bit pattern, MSB first.
	Constant(bits string) S
	// Concat concatenates xs, with xs[0] as most significant bits.
	Concat(xs []S) S
	// Select extracts bits [hi..lo] of x.
	Select(x S, hi, lo int) S
	// Name attaches a name to x, returning a signal of equal value and
	// width.
	Name(x S, name string) S

	And(a, b S) S
	Or(a, b S) S
	Xor(a, b S) S
	Not(x S) S

	// Same reports whether a and b are the same signal value: bit
	// equality for a concrete backend, node identity for a symbolic one.
	Same(a, b S) bool
	// IsConst reports whether x has a known constant bit pattern.
	IsConst(x S) bool
	// Bstr returns the bit pattern of a constant, MSB first. It fails on
	// non-constant signals.
	Bstr(x S) string
	// String returns a backend-defined display form. For constants it
	// must round-trip through Constant.
	String(x S) string
}
