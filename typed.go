// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// Unsigned and Signed view a raw signal as a number and auto-resize
// around arithmetic: addition and subtraction widen both operands to
// max(wa, wb)+1 so the result cannot overflow, comparisons widen to
// max(wa, wb), and multiplication yields wa+wb bits. The unsigned view
// extends with zeros, the signed view with the sign bit.
//
// The UAdd/SAdd etc. methods on Comb apply the same width rules
// directly on raw signals.

// An Unsigned is a signal viewed as an unsigned number.
type Unsigned[S any] struct {
	c *Comb[S]
	v S
}

// Unsigned views x as an unsigned number.
func (c *Comb[S]) Unsigned(x S) Unsigned[S] {
	c.nonEmpty("unsigned", x)
	return Unsigned[S]{c: c, v: x}
}

// Signal returns the raw signal behind the view.
func (u Unsigned[S]) Signal() S { return u.v }

// Width returns the signal width.
func (u Unsigned[S]) Width() int { return u.c.Width(u.v) }

// Resize zero-extends or truncates to w bits.
func (u Unsigned[S]) Resize(w int) Unsigned[S] {
	return Unsigned[S]{c: u.c, v: u.c.Uresize(u.v, w)}
}

func (u Unsigned[S]) binop(b Unsigned[S], grow int) (x, y S) {
	w := u.Width()
	if bw := b.Width(); bw > w {
		w = bw
	}
	w += grow
	return u.c.Uresize(u.v, w), u.c.Uresize(b.v, w)
}

// Add sums at max(wa, wb)+1 bits.
func (u Unsigned[S]) Add(b Unsigned[S]) Unsigned[S] {
	x, y := u.binop(b, 1)
	return Unsigned[S]{c: u.c, v: u.c.Add(x, y)}
}

// Sub subtracts at max(wa, wb)+1 bits.
func (u Unsigned[S]) Sub(b Unsigned[S]) Unsigned[S] {
	x, y := u.binop(b, 1)
	return Unsigned[S]{c: u.c, v: u.c.Sub(x, y)}
}

// Mul multiplies, yielding wa+wb bits.
func (u Unsigned[S]) Mul(b Unsigned[S]) Unsigned[S] {
	return Unsigned[S]{c: u.c, v: u.c.Mulu(u.v, b.v)}
}

// Comparisons widen to max(wa, wb) bits and yield a single bit.

func (u Unsigned[S]) Eq(b Unsigned[S]) S { x, y := u.binop(b, 0); return u.c.Eq(x, y) }
func (u Unsigned[S]) Ne(b Unsigned[S]) S { x, y := u.binop(b, 0); return u.c.Ne(x, y) }
func (u Unsigned[S]) Lt(b Unsigned[S]) S { x, y := u.binop(b, 0); return u.c.Lt(x, y) }
func (u Unsigned[S]) Gt(b Unsigned[S]) S { x, y := u.binop(b, 0); return u.c.Gt(x, y) }
func (u Unsigned[S]) Le(b Unsigned[S]) S { x, y := u.binop(b, 0); return u.c.Le(x, y) }
func (u Unsigned[S]) Ge(b Unsigned[S]) S { x, y := u.binop(b, 0); return u.c.Ge(x, y) }

// A Signed is a signal viewed as a twos-complement number.
type Signed[S any] struct {
	c *Comb[S]
	v S
}

// Signed views x as a twos-complement number.
func (c *Comb[S]) Signed(x S) Signed[S] {
	c.nonEmpty("signed", x)
	return Signed[S]{c: c, v: x}
}

// Signal returns the raw signal behind the view.
func (s Signed[S]) Signal() S { return s.v }

// Width returns the signal width.
func (s Signed[S]) Width() int { return s.c.Width(s.v) }

// Resize sign-extends or truncates to w bits.
func (s Signed[S]) Resize(w int) Signed[S] {
	return Signed[S]{c: s.c, v: s.c.Sresize(s.v, w)}
}

func (s Signed[S]) binop(b Signed[S], grow int) (x, y S) {
	w := s.Width()
	if bw := b.Width(); bw > w {
		w = bw
	}
	w += grow
	return s.c.Sresize(s.v, w), s.c.Sresize(b.v, w)
}

// Add sums at max(wa, wb)+1 bits.
func (s Signed[S]) Add(b Signed[S]) Signed[S] {
	x, y := s.binop(b, 1)
	return Signed[S]{c: s.c, v: s.c.Add(x, y)}
}

// Sub subtracts at max(wa, wb)+1 bits.
func (s Signed[S]) Sub(b Signed[S]) Signed[S] {
	x, y := s.binop(b, 1)
	return Signed[S]{c: s.c, v: s.c.Sub(x, y)}
}

// Mul multiplies, yielding wa+wb bits.
func (s Signed[S]) Mul(b Signed[S]) Signed[S] {
	return Signed[S]{c: s.c, v: s.c.Muls(s.v, b.v)}
}

// Comparisons sign-extend to max(wa, wb) bits and yield a single bit.

func (s Signed[S]) Eq(b Signed[S]) S { x, y := s.binop(b, 0); return s.c.Eq(x, y) }
func (s Signed[S]) Ne(b Signed[S]) S { x, y := s.binop(b, 0); return s.c.Ne(x, y) }
func (s Signed[S]) Lt(b Signed[S]) S { x, y := s.binop(b, 0); return s.c.Lts(x, y) }
func (s Signed[S]) Gt(b Signed[S]) S { x, y := s.binop(b, 0); return s.c.Gts(x, y) }
func (s Signed[S]) Le(b Signed[S]) S { x, y := s.binop(b, 0); return s.c.Les(x, y) }
func (s Signed[S]) Ge(b Signed[S]) S { x, y := s.binop(b, 0); return s.c.Ges(x, y) }

// Raw-signal forms of the auto-resizing operators.

// UAdd adds with unsigned auto-resize, returning a max(wa, wb)+1 bit
// sum.
func (c *Comb[S]) UAdd(a, b S) S { return c.Unsigned(a).Add(c.Unsigned(b)).Signal() }

// USub subtracts with unsigned auto-resize.
func (c *Comb[S]) USub(a, b S) S { return c.Unsigned(a).Sub(c.Unsigned(b)).Signal() }

// UMul multiplies unsigned, yielding wa+wb bits.
func (c *Comb[S]) UMul(a, b S) S { return c.Mulu(a, b) }

// UEq compares for equality after unsigned resize.
func (c *Comb[S]) UEq(a, b S) S { return c.Unsigned(a).Eq(c.Unsigned(b)) }

// ULt compares unsigned after resize.
func (c *Comb[S]) ULt(a, b S) S { return c.Unsigned(a).Lt(c.Unsigned(b)) }

// UGt compares unsigned after resize.
func (c *Comb[S]) UGt(a, b S) S { return c.Unsigned(a).Gt(c.Unsigned(b)) }

// ULe compares unsigned after resize.
func (c *Comb[S]) ULe(a, b S) S { return c.Unsigned(a).Le(c.Unsigned(b)) }

// UGe compares unsigned after resize.
func (c *Comb[S]) UGe(a, b S) S { return c.Unsigned(a).Ge(c.Unsigned(b)) }

// SAdd adds with signed auto-resize, returning a max(wa, wb)+1 bit sum.
func (c *Comb[S]) SAdd(a, b S) S { return c.Signed(a).Add(c.Signed(b)).Signal() }

// SSub subtracts with signed auto-resize.
func (c *Comb[S]) SSub(a, b S) S { return c.Signed(a).Sub(c.Signed(b)).Signal() }

// SMul multiplies signed, yielding wa+wb bits.
func (c *Comb[S]) SMul(a, b S) S { return c.Muls(a, b) }

// SEq compares for equality after signed resize.
func (c *Comb[S]) SEq(a, b S) S { return c.Signed(a).Eq(c.Signed(b)) }

// SLt compares signed after resize.
func (c *Comb[S]) SLt(a, b S) S { return c.Signed(a).Lt(c.Signed(b)) }

// SGt compares signed after resize.
func (c *Comb[S]) SGt(a, b S) S { return c.Signed(a).Gt(c.Signed(b)) }

// SLe compares signed after resize.
func (c *Comb[S]) SLe(a, b S) S { return c.Signed(a).Le(c.Signed(b)) }

// SGe compares signed after resize.
func (c *Comb[S]) SGe(a, b S) S { return c.Signed(a).Ge(c.Signed(b)) }
