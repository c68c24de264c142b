// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// Bitwise and logical operators.

// And is the bitwise and of two equal-width signals.
func (c *Comb[S]) And(a, b S) S {
	c.sameWidth("and", a, b)
	return c.p.And(a, b)
}

// Or is the bitwise or of two equal-width signals.
func (c *Comb[S]) Or(a, b S) S {
	c.sameWidth("or", a, b)
	return c.p.Or(a, b)
}

// Xor is the bitwise xor of two equal-width signals.
func (c *Comb[S]) Xor(a, b S) S {
	c.sameWidth("xor", a, b)
	return c.p.Xor(a, b)
}

// Not is the bitwise complement of x.
func (c *Comb[S]) Not(x S) S {
	c.nonEmpty("not", x)
	return c.p.Not(x)
}

// promote turns an integer into a constant of x's width.
func (c *Comb[S]) promote(op string, x S, v int64) S {
	c.nonEmpty(op, x)
	return c.ConstInt(c.p.Width(x), v)
}

// AndInt ands x with a constant of the same width.
func (c *Comb[S]) AndInt(x S, v int64) S { return c.And(x, c.promote("and", x, v)) }

// OrInt ors x with a constant of the same width.
func (c *Comb[S]) OrInt(x S, v int64) S { return c.Or(x, c.promote("or", x, v)) }

// XorInt xors x with a constant of the same width.
func (c *Comb[S]) XorInt(x S, v int64) S { return c.Xor(x, c.promote("xor", x, v)) }

// ReduceAnd folds and over the bits of x, yielding 1 bit.
func (c *Comb[S]) ReduceAnd(x S) S { return c.reduceGate(x, c.p.And) }

// ReduceOr folds or over the bits of x, yielding 1 bit.
func (c *Comb[S]) ReduceOr(x S) S { return c.reduceGate(x, c.p.Or) }

// ReduceXor folds xor over the bits of x, yielding 1 bit.
func (c *Comb[S]) ReduceXor(x S) S { return c.reduceGate(x, c.p.Xor) }

func (c *Comb[S]) reduceGate(x S, f func(a, b S) S) S {
	c.nonEmpty("reduce", x)
	w := c.p.Width(x)
	r := c.Bit(x, 0)
	for i := 1; i < w; i++ {
		r = f(r, c.Bit(x, i))
	}
	return r
}

// Any is high iff x is non-zero.
func (c *Comb[S]) Any(x S) S { return c.ReduceOr(x) }

// AllOnes is high iff every bit of x is set.
func (c *Comb[S]) AllOnes(x S) S { return c.ReduceAnd(x) }

// Land reduces each operand to a single is-non-zero bit, then ands them.
func (c *Comb[S]) Land(a, b S) S { return c.p.And(c.Any(a), c.Any(b)) }

// Lor reduces each operand to a single is-non-zero bit, then ors them.
func (c *Comb[S]) Lor(a, b S) S { return c.p.Or(c.Any(a), c.Any(b)) }

// Arithmetic.

// Add is the modular sum of two equal-width signals.
func (c *Comb[S]) Add(a, b S) S {
	c.sameWidth("add", a, b)
	return c.p.Add(a, b)
}

// Sub is the modular difference of two equal-width signals.
func (c *Comb[S]) Sub(a, b S) S {
	c.sameWidth("sub", a, b)
	return c.p.Sub(a, b)
}

// Mulu is the unsigned product; its width is the sum of the operand
// widths.
func (c *Comb[S]) Mulu(a, b S) S {
	c.nonEmpty("mulu", a)
	c.nonEmpty("mulu", b)
	return c.p.Mulu(a, b)
}

// Muls is the twos-complement product; its width is the sum of the
// operand widths.
func (c *Comb[S]) Muls(a, b S) S {
	c.nonEmpty("muls", a)
	c.nonEmpty("muls", b)
	return c.p.Muls(a, b)
}

// AddInt adds a constant of x's width.
func (c *Comb[S]) AddInt(x S, v int64) S { return c.Add(x, c.promote("add", x, v)) }

// SubInt subtracts a constant of x's width.
func (c *Comb[S]) SubInt(x S, v int64) S { return c.Sub(x, c.promote("sub", x, v)) }

// MuluInt multiplies by an unsigned constant of x's width.
func (c *Comb[S]) MuluInt(x S, v int64) S { return c.Mulu(x, c.promote("mulu", x, v)) }

// MulsInt multiplies by a signed constant of x's width.
func (c *Comb[S]) MulsInt(x S, v int64) S { return c.Muls(x, c.promote("muls", x, v)) }

// Negate computes 0 - x at the width of x.
func (c *Comb[S]) Negate(x S) S {
	c.nonEmpty("negate", x)
	return c.p.Sub(c.Zero(c.p.Width(x)), x)
}

// ModCounter steps a counter that counts 0..max inclusive and wraps.
// When max+1 is a power of two the wrap is the natural overflow.
func (c *Comb[S]) ModCounter(max int64, x S) S {
	c.nonEmpty("mod_counter", x)
	if max < 1 {
		failf(ErrOutOfRange, "mod_counter: max %d", max)
	}
	if (max+1)&max == 0 {
		return c.AddInt(x, 1)
	}
	return c.Mux2(c.EqInt(x, max), c.Zero(c.p.Width(x)), c.AddInt(x, 1))
}

// Relational operators. All compare equal-width operands and yield a
// single bit.

// Eq is high iff a and b are bitwise equal.
func (c *Comb[S]) Eq(a, b S) S {
	c.sameWidth("eq", a, b)
	return c.p.Eq(a, b)
}

// Ne is high iff a and b differ.
func (c *Comb[S]) Ne(a, b S) S { return c.p.Not(c.Eq(a, b)) }

// Lt is the unsigned a < b.
func (c *Comb[S]) Lt(a, b S) S {
	c.sameWidth("lt", a, b)
	return c.p.Ult(a, b)
}

// Gt is the unsigned a > b.
func (c *Comb[S]) Gt(a, b S) S { return c.Lt(b, a) }

// Le is the unsigned a <= b.
func (c *Comb[S]) Le(a, b S) S { return c.p.Not(c.Gt(a, b)) }

// Ge is the unsigned a >= b.
func (c *Comb[S]) Ge(a, b S) S { return c.p.Not(c.Lt(a, b)) }

// flipMsb inverts the sign bit, mapping signed order onto unsigned
// order.
func (c *Comb[S]) flipMsb(x S) S {
	w := c.p.Width(x)
	if w == 1 {
		return c.p.Not(x)
	}
	return c.p.Concat([]S{c.p.Not(c.Msb(x)), c.Select(x, w-2, 0)})
}

// Lts is the signed a < b.
func (c *Comb[S]) Lts(a, b S) S {
	c.sameWidth("lts", a, b)
	return c.p.Ult(c.flipMsb(a), c.flipMsb(b))
}

// Gts is the signed a > b.
func (c *Comb[S]) Gts(a, b S) S { return c.Lts(b, a) }

// Les is the signed a <= b.
func (c *Comb[S]) Les(a, b S) S { return c.p.Not(c.Gts(a, b)) }

// Ges is the signed a >= b.
func (c *Comb[S]) Ges(a, b S) S { return c.p.Not(c.Lts(a, b)) }

// Integer forms of the relational operators.

func (c *Comb[S]) EqInt(x S, v int64) S  { return c.Eq(x, c.promote("eq", x, v)) }
func (c *Comb[S]) NeInt(x S, v int64) S  { return c.Ne(x, c.promote("ne", x, v)) }
func (c *Comb[S]) LtInt(x S, v int64) S  { return c.Lt(x, c.promote("lt", x, v)) }
func (c *Comb[S]) GtInt(x S, v int64) S  { return c.Gt(x, c.promote("gt", x, v)) }
func (c *Comb[S]) LeInt(x S, v int64) S  { return c.Le(x, c.promote("le", x, v)) }
func (c *Comb[S]) GeInt(x S, v int64) S  { return c.Ge(x, c.promote("ge", x, v)) }
func (c *Comb[S]) LtsInt(x S, v int64) S { return c.Lts(x, c.promote("lts", x, v)) }
func (c *Comb[S]) GtsInt(x S, v int64) S { return c.Gts(x, c.promote("gts", x, v)) }
func (c *Comb[S]) LesInt(x S, v int64) S { return c.Les(x, c.promote("les", x, v)) }
func (c *Comb[S]) GesInt(x S, v int64) S { return c.Ges(x, c.promote("ges", x, v)) }

// Shifts by a constant distance. Shifting by zero is the identity;
// shifting by the width or more yields all zeros, or all sign bits for
// Sra.

// Sll shifts left, filling with zeros.
func (c *Comb[S]) Sll(x S, n int) S {
	c.nonEmpty("sll", x)
	w := c.p.Width(x)
	switch {
	case n < 0:
		failf(ErrOutOfRange, "sll: distance %d", n)
	case n == 0:
		return x
	case n >= w:
		return c.Zero(w)
	}
	return c.p.Concat([]S{c.Select(x, w-1-n, 0), c.Zero(n)})
}

// Srl shifts right, filling with zeros.
func (c *Comb[S]) Srl(x S, n int) S {
	c.nonEmpty("srl", x)
	w := c.p.Width(x)
	switch {
	case n < 0:
		failf(ErrOutOfRange, "srl: distance %d", n)
	case n == 0:
		return x
	case n >= w:
		return c.Zero(w)
	}
	return c.p.Concat([]S{c.Zero(n), c.Select(x, w-1, n)})
}

// Sra shifts right, filling with the sign bit.
func (c *Comb[S]) Sra(x S, n int) S {
	c.nonEmpty("sra", x)
	w := c.p.Width(x)
	switch {
	case n < 0:
		failf(ErrOutOfRange, "sra: distance %d", n)
	case n == 0:
		return x
	case n >= w:
		return c.Repeat(c.Msb(x), w)
	}
	return c.p.Concat([]S{c.Repeat(c.Msb(x), n), c.Select(x, w-1, n)})
}

// LogShift applies a constant-distance shift under a variable distance:
// bit i of distance conditionally applies op by 2^i. The depth is the
// width of distance.
func (c *Comb[S]) LogShift(op func(x S, n int) S, x, distance S) S {
	c.nonEmpty("log_shift", x)
	c.nonEmpty("log_shift", distance)
	w := c.p.Width(x)
	wd := c.p.Width(distance)
	for i := 0; i < wd; i++ {
		amt := w // saturates: op treats >= width as a full shift
		if i < 31 && 1<<uint(i) < w {
			amt = 1 << uint(i)
		}
		x = c.Mux2(c.Bit(distance, i), op(x, amt), x)
	}
	return x
}

// SllV shifts left by a variable distance.
func (c *Comb[S]) SllV(x, distance S) S { return c.LogShift(c.Sll, x, distance) }

// SrlV shifts right by a variable distance.
func (c *Comb[S]) SrlV(x, distance S) S { return c.LogShift(c.Srl, x, distance) }

// SraV arithmetically shifts right by a variable distance.
func (c *Comb[S]) SraV(x, distance S) S { return c.LogShift(c.Sra, x, distance) }
