// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// WithValid tags a data signal with a 1-bit valid flag.
type WithValid[S any] struct {
	Valid S
	Value S
}

// DefaultBranchingFactor is the arity used by the tree operators when
// none is given.
const DefaultBranchingFactor = 2

// branching resolves an optional branching-factor argument. The
// operators taking `bf ...int` use only the first value: 0 (or no
// value) selects the default, anything else must be at least 2.
func branching(bf []int) int {
	if len(bf) == 0 || bf[0] == 0 {
		return DefaultBranchingFactor
	}
	if bf[0] < 2 {
		failf(ErrOutOfRange, "branching factor %d", bf[0])
	}
	return bf[0]
}

// TreeOf repeatedly partitions xs into chunks of at most arity
// elements, applying f to each chunk, until a single element remains.
// Chunks of one element pass through unchanged. The depth is logarithmic
// in len(xs) with base arity.
func TreeOf[T any](arity int, f func(chunk []T) T, xs []T) T {
	if arity < 2 {
		failf(ErrOutOfRange, "tree: arity %d", arity)
	}
	if len(xs) == 0 {
		failf(ErrEmpty, "tree: no inputs")
	}
	for len(xs) > 1 {
		next := make([]T, 0, (len(xs)+arity-1)/arity)
		for i := 0; i < len(xs); i += arity {
			j := i + arity
			if j > len(xs) {
				j = len(xs)
			}
			if j-i == 1 {
				next = append(next, xs[i])
			} else {
				next = append(next, f(xs[i:j]))
			}
		}
		xs = next
	}
	return xs[0]
}

// Tree builds a log-depth reduction of xs with the given arity.
func (c *Comb[S]) Tree(arity int, f func(chunk []S) S, xs []S) S {
	return TreeOf[S](arity, f, xs)
}

// Reduce left-folds f over xs.
func (c *Comb[S]) Reduce(f func(a, b S) S, xs []S) S {
	if len(xs) == 0 {
		failf(ErrEmpty, "reduce: no inputs")
	}
	r := xs[0]
	for _, x := range xs[1:] {
		r = f(r, x)
	}
	return r
}

func (c *Comb[S]) checkCases(op string, cases []Case[S]) int {
	if len(cases) == 0 {
		failf(ErrEmpty, "%s: no cases", op)
	}
	w := c.p.Width(cases[0].Value)
	for _, k := range cases {
		c.oneBit(op, k.Sel)
		c.nonEmpty(op, k.Value)
		if c.p.Width(k.Value) != w {
			failf(ErrWidthMismatch, "%s: value widths %d and %d", op, w, c.p.Width(k.Value))
		}
	}
	return w
}

// PrioritySelect scans the cases in order and returns the value of the
// first whose condition is high, tagged with a valid bit that is low
// when no condition is. Built as a tree of the given branching factor.
func (c *Comb[S]) PrioritySelect(cases []Case[S], bf ...int) WithValid[S] {
	c.checkCases("priority_select", cases)
	arity := branching(bf)
	leaves := make([]WithValid[S], len(cases))
	for i, k := range cases {
		leaves[i] = WithValid[S]{Valid: k.Sel, Value: k.Value}
	}
	return TreeOf[WithValid[S]](arity, func(chunk []WithValid[S]) WithValid[S] {
		valid := chunk[0].Valid
		value := chunk[len(chunk)-1].Value
		for _, k := range chunk[1:] {
			valid = c.p.Or(valid, k.Valid)
		}
		for i := len(chunk) - 2; i >= 0; i-- {
			value = c.Mux2(chunk[i].Valid, chunk[i].Value, value)
		}
		return WithValid[S]{Valid: valid, Value: value}
	}, leaves)
}

// PrioritySelectWithDefault is PrioritySelect collapsed to a plain
// signal: def is returned when no condition is high.
func (c *Comb[S]) PrioritySelectWithDefault(cases []Case[S], def S, bf ...int) S {
	c.nonEmpty("priority_select", def)
	ps := c.PrioritySelect(cases, bf...)
	return c.Mux2(ps.Valid, ps.Value, def)
}

// OnehotSelect or-merges every value masked by its condition, as a tree
// of the given branching factor. The result is zero when no condition
// is high; with several conditions high the result is unspecified.
func (c *Comb[S]) OnehotSelect(cases []Case[S], bf ...int) S {
	w := c.checkCases("onehot_select", cases)
	arity := branching(bf)
	leaves := make([]S, len(cases))
	for i, k := range cases {
		leaves[i] = c.p.And(k.Value, c.Repeat(k.Sel, w))
	}
	return c.Tree(arity, func(chunk []S) S {
		r := chunk[0]
		for _, x := range chunk[1:] {
			r = c.p.Or(r, x)
		}
		return r
	}, leaves)
}

// clog2 returns the smallest k with 2^k >= n.
func clog2(n int) int {
	k := 0
	for 1<<uint(k) < n {
		k++
	}
	return k
}

// Popcount counts the set bits of x as a tree sum. The result width is
// clog2(width+1), just enough for the all-ones count.
func (c *Comb[S]) Popcount(x S, bf ...int) S {
	c.nonEmpty("popcount", x)
	w := c.p.Width(x)
	arity := branching(bf)
	rw := clog2(w + 1)
	sum := c.Tree(arity, func(chunk []S) S {
		r := chunk[0]
		for _, b := range chunk[1:] {
			r = c.UAdd(r, b)
		}
		return r
	}, c.ToArray(x))
	return c.Uresize(sum, rw)
}

// IsPow2 is high iff exactly one bit of x is set.
func (c *Comb[S]) IsPow2(x S, bf ...int) S {
	return c.EqInt(c.Popcount(x, bf...), 1)
}

// countFrom priority-encodes the lowest set bit of x, returning its
// index, or the width of x when no bit is set.
func (c *Comb[S]) countFrom(x S, bf ...int) S {
	w := c.p.Width(x)
	rw := clog2(w + 1)
	cases := make([]Case[S], w)
	for i := 0; i < w; i++ {
		cases[i] = Case[S]{Sel: c.Bit(x, i), Value: c.ConstUint64(rw, uint64(i))}
	}
	return c.PrioritySelectWithDefault(cases, c.ConstUint64(rw, uint64(w)), bf...)
}

// TrailingZeros counts the run of zeros at the LSB end of x. The result
// width is clog2(width+1).
func (c *Comb[S]) TrailingZeros(x S, bf ...int) S {
	c.nonEmpty("trailing_zeros", x)
	return c.countFrom(x, bf...)
}

// TrailingOnes counts the run of ones at the LSB end of x.
func (c *Comb[S]) TrailingOnes(x S, bf ...int) S {
	c.nonEmpty("trailing_ones", x)
	return c.countFrom(c.p.Not(x), bf...)
}

// LeadingZeros counts the run of zeros at the MSB end of x.
func (c *Comb[S]) LeadingZeros(x S, bf ...int) S {
	c.nonEmpty("leading_zeros", x)
	return c.countFrom(c.Reverse(x), bf...)
}

// LeadingOnes counts the run of ones at the MSB end of x.
func (c *Comb[S]) LeadingOnes(x S, bf ...int) S {
	c.nonEmpty("leading_ones", x)
	return c.countFrom(c.p.Not(c.Reverse(x)), bf...)
}

// FloorLog2 returns the index of the highest set bit of x. The result
// is invalid when x is zero. The data width is clog2(width), with a
// 1-bit floor.
func (c *Comb[S]) FloorLog2(x S, bf ...int) WithValid[S] {
	c.nonEmpty("floor_log2", x)
	w := c.p.Width(x)
	fw := clog2(w)
	if fw < 1 {
		fw = 1
	}
	cases := make([]Case[S], w)
	for i := 0; i < w; i++ {
		cases[i] = Case[S]{Sel: c.Bit(x, w-1-i), Value: c.ConstUint64(fw, uint64(w-1-i))}
	}
	return c.PrioritySelect(cases, bf...)
}

// CeilLog2 returns ceil(log2(x)): zero for x = 1, floor_log2(x-1) + 1
// otherwise. The result is invalid when x is zero. The data width is
// clog2(width+1), enough to express the width itself.
func (c *Comb[S]) CeilLog2(x S, bf ...int) WithValid[S] {
	c.nonEmpty("ceil_log2", x)
	w := c.p.Width(x)
	cw := clog2(w + 1)
	if cw < 1 {
		cw = 1
	}
	fl := c.FloorLog2(c.SubInt(x, 1), bf...)
	inc := c.AddInt(c.Uresize(fl.Value, cw), 1)
	value := c.Mux2(c.EqInt(x, 1), c.Zero(cw), inc)
	return WithValid[S]{Valid: c.Any(x), Value: value}
}
