// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// A Comb derives the full combinational API from a backend's
// Primitives. All operations validate their width preconditions here,
// so backends can assume well-formed calls.
//
// Comb values are cheap handles; the zero value is not usable, build
// one with New or NewFromGates.
type Comb[S any] struct {
	p   Primitives[S]
	rng *Rand
}

// New returns the full combinational API over a backend that implements
// its own primitives.
func New[S any](p Primitives[S]) *Comb[S] {
	return &Comb[S]{p: p, rng: NewRand(defaultRandSeed)}
}

// NewFromGates returns the full combinational API over a backend that
// implements only Gates, using the reference primitive synthesis.
func NewFromGates[S any](g Gates[S]) *Comb[S] {
	return New[S](MakePrimitives[S](g))
}

// Prim exposes the underlying primitive implementation.
func (c *Comb[S]) Prim() Primitives[S] { return c.p }

// precondition helpers

func (c *Comb[S]) nonEmpty(op string, x S) {
	if c.p.Width(x) == 0 {
		failf(ErrEmpty, "%s: empty signal", op)
	}
}

func (c *Comb[S]) sameWidth(op string, a, b S) {
	c.nonEmpty(op, a)
	c.nonEmpty(op, b)
	if wa, wb := c.p.Width(a), c.p.Width(b); wa != wb {
		failf(ErrWidthMismatch, "%s: operand widths %d and %d", op, wa, wb)
	}
}

func (c *Comb[S]) oneBit(op string, x S) {
	if c.p.Width(x) != 1 {
		failf(ErrWidthMismatch, "%s: expected a 1-bit signal, got width %d", op, c.p.Width(x))
	}
}

// Empty returns the zero-width signal.
func (c *Comb[S]) Empty() S { return c.p.Empty() }

// Width returns the number of bits in x.
func (c *Comb[S]) Width(x S) int { return c.p.Width(x) }

// IsEmpty reports whether x has width 0.
func (c *Comb[S]) IsEmpty(x S) bool { return c.p.Width(x) == 0 }

// Name attaches a name to x. The result has the same value and width;
// a signal may accumulate several names.
func (c *Comb[S]) Name(x S, name string) S {
	c.nonEmpty("name", x)
	return c.p.Name(x, name)
}

// Same reports whether a and b are the same signal value.
func (c *Comb[S]) Same(a, b S) bool { return c.p.Same(a, b) }

// IsConst reports whether x has a known constant bit pattern.
func (c *Comb[S]) IsConst(x S) bool { return c.p.IsConst(x) }

// Concat concatenates its arguments, first argument becoming the most
// significant bits. At least one signal is required, and none may be
// empty.
func (c *Comb[S]) Concat(xs ...S) S {
	if len(xs) == 0 {
		failf(ErrEmpty, "concat: no inputs")
	}
	for _, x := range xs {
		c.nonEmpty("concat", x)
	}
	return c.p.Concat(xs)
}

// ConcatE concatenates after dropping empty inputs. The result is empty
// when every input is.
func (c *Comb[S]) ConcatE(xs ...S) S {
	keep := xs[:0:0]
	for _, x := range xs {
		if c.p.Width(x) > 0 {
			keep = append(keep, x)
		}
	}
	if len(keep) == 0 {
		return c.p.Empty()
	}
	return c.p.Concat(keep)
}

// Select extracts bits [hi..lo] of x, inclusive, 0 being the LSB.
func (c *Comb[S]) Select(x S, hi, lo int) S {
	c.nonEmpty("select", x)
	if w := c.p.Width(x); lo < 0 || hi < lo || hi >= w {
		failf(ErrOutOfRange, "select: range [%d..%d] of a %d-bit signal", hi, lo, w)
	}
	return c.p.Select(x, hi, lo)
}

// SelectE is Select, except that an invalid range yields the empty
// signal instead of failing.
func (c *Comb[S]) SelectE(x S, hi, lo int) S {
	if w := c.p.Width(x); lo < 0 || hi < lo || hi >= w {
		return c.p.Empty()
	}
	return c.p.Select(x, hi, lo)
}

// Bit extracts bit i of x.
func (c *Comb[S]) Bit(x S, i int) S { return c.Select(x, i, i) }

// Msb extracts the most significant bit of x.
func (c *Comb[S]) Msb(x S) S {
	c.nonEmpty("msb", x)
	return c.Bit(x, c.p.Width(x)-1)
}

// Lsb extracts the least significant bit of x.
func (c *Comb[S]) Lsb(x S) S { return c.Bit(x, 0) }

// Msbs drops the least significant bit of x.
func (c *Comb[S]) Msbs(x S) S {
	w := c.p.Width(x)
	c.nonEmpty("msbs", x)
	return c.Select(x, w-1, 1)
}

// Lsbs drops the most significant bit of x.
func (c *Comb[S]) Lsbs(x S) S {
	w := c.p.Width(x)
	c.nonEmpty("lsbs", x)
	return c.Select(x, w-2, 0)
}

func (c *Comb[S]) checkDrop(op string, x S, n int) int {
	c.nonEmpty(op, x)
	w := c.p.Width(x)
	if n < 0 || n > w {
		failf(ErrOutOfRange, "%s: %d bits of a %d-bit signal", op, n, w)
	}
	return w
}

// DropBottom drops the n least significant bits of x. 0 <= n <= width.
func (c *Comb[S]) DropBottom(x S, n int) S {
	w := c.checkDrop("drop_bottom", x, n)
	return c.SelectE(x, w-1, n)
}

// DropTop drops the n most significant bits of x. 0 <= n <= width.
func (c *Comb[S]) DropTop(x S, n int) S {
	w := c.checkDrop("drop_top", x, n)
	return c.SelectE(x, w-1-n, 0)
}

// SelBottom keeps the n least significant bits of x. 0 <= n <= width.
func (c *Comb[S]) SelBottom(x S, n int) S {
	c.checkDrop("sel_bottom", x, n)
	return c.SelectE(x, n-1, 0)
}

// SelTop keeps the n most significant bits of x. 0 <= n <= width.
func (c *Comb[S]) SelTop(x S, n int) S {
	w := c.checkDrop("sel_top", x, n)
	return c.SelectE(x, w-1, w-n)
}

// Insert replaces bits [n+width(f)-1 .. n] of t with f.
func (c *Comb[S]) Insert(t, f S, n int) S {
	c.nonEmpty("insert", t)
	c.nonEmpty("insert", f)
	wt, wf := c.p.Width(t), c.p.Width(f)
	if n < 0 || n+wf > wt {
		failf(ErrOutOfRange, "insert: %d bits at offset %d of a %d-bit signal", wf, n, wt)
	}
	return c.ConcatE(c.SelectE(t, wt-1, n+wf), f, c.SelectE(t, n-1, 0))
}

// Reverse reverses the bit order of x.
func (c *Comb[S]) Reverse(x S) S {
	c.nonEmpty("reverse", x)
	w := c.p.Width(x)
	bits := make([]S, w)
	for i := 0; i < w; i++ {
		bits[i] = c.Bit(x, i)
	}
	return c.p.Concat(bits)
}

// Repeat concatenates n copies of x. n >= 1.
func (c *Comb[S]) Repeat(x S, n int) S {
	c.nonEmpty("repeat", x)
	if n < 1 {
		failf(ErrOutOfRange, "repeat: count %d", n)
	}
	xs := make([]S, n)
	for i := range xs {
		xs[i] = x
	}
	return c.p.Concat(xs)
}

// SplitInHalf splits x into its upper and lower halves. The width of x
// must be even.
func (c *Comb[S]) SplitInHalf(x S) (hi, lo S) {
	c.nonEmpty("split_in_half", x)
	w := c.p.Width(x)
	if w%2 != 0 {
		failf(ErrOutOfRange, "split_in_half: odd width %d", w)
	}
	return c.Select(x, w-1, w/2), c.Select(x, w/2-1, 0)
}

// Split cuts x into partWidth-bit parts, least significant part first.
// With exact set, the width of x must be a multiple of partWidth;
// otherwise the final part holds whatever bits remain.
func (c *Comb[S]) Split(x S, partWidth int, exact bool) []S {
	c.nonEmpty("split", x)
	w := c.p.Width(x)
	if partWidth < 1 {
		failf(ErrOutOfRange, "split: part width %d", partWidth)
	}
	if exact && w%partWidth != 0 {
		failf(ErrOutOfRange, "split: %d-bit signal into exact %d-bit parts", w, partWidth)
	}
	var parts []S
	for lo := 0; lo < w; lo += partWidth {
		hi := lo + partWidth - 1
		if hi >= w {
			hi = w - 1
		}
		parts = append(parts, c.Select(x, hi, lo))
	}
	return parts
}

// Bits explodes x into single bits, most significant first.
func (c *Comb[S]) Bits(x S) []S {
	c.nonEmpty("bits", x)
	w := c.p.Width(x)
	out := make([]S, w)
	for i := 0; i < w; i++ {
		out[i] = c.Bit(x, w-1-i)
	}
	return out
}

// ToArray explodes x into single bits with the LSB at index 0.
func (c *Comb[S]) ToArray(x S) []S {
	c.nonEmpty("to_array", x)
	w := c.p.Width(x)
	out := make([]S, w)
	for i := 0; i < w; i++ {
		out[i] = c.Bit(x, i)
	}
	return out
}

// Uresize resizes x to w bits: zero-extending when growing, keeping the
// low bits when shrinking.
func (c *Comb[S]) Uresize(x S, w int) S {
	c.nonEmpty("uresize", x)
	if w < 1 {
		failf(ErrOutOfRange, "uresize: target width %d", w)
	}
	wx := c.p.Width(x)
	switch {
	case w == wx:
		return x
	case w < wx:
		return c.Select(x, w-1, 0)
	default:
		return c.p.Concat([]S{c.Zero(w - wx), x})
	}
}

// Sresize resizes x to w bits: replicating the sign bit when growing,
// keeping the low bits when shrinking.
func (c *Comb[S]) Sresize(x S, w int) S {
	c.nonEmpty("sresize", x)
	if w < 1 {
		failf(ErrOutOfRange, "sresize: target width %d", w)
	}
	wx := c.p.Width(x)
	switch {
	case w == wx:
		return x
	case w < wx:
		return c.Select(x, w-1, 0)
	default:
		return c.p.Concat([]S{c.Repeat(c.Msb(x), w - wx), x})
	}
}

// Ue zero-extends x by one bit.
func (c *Comb[S]) Ue(x S) S { return c.Uresize(x, c.p.Width(x)+1) }

// Se sign-extends x by one bit.
func (c *Comb[S]) Se(x S) S { return c.Sresize(x, c.p.Width(x)+1) }
