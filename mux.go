// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// A Case pairs a selection signal with the value returned when it is
// chosen. In Cases, Sel is a constant compared against the selector; in
// the Pmux family, Sel is a 1-bit condition.
type Case[S any] struct {
	Sel   S
	Value S
}

// A CaseInt is a Case keyed by an integer, promoted to a constant of
// the selector's width.
type CaseInt[S any] struct {
	Key   int64
	Value S
}

// Mux selects xs[sel], with 2 <= len(xs) <= 2^width(sel), all inputs of
// one width. Selector values beyond the list select the last element.
func (c *Comb[S]) Mux(sel S, xs []S) S {
	c.nonEmpty("mux", sel)
	if len(xs) < 2 {
		failf(ErrMuxArity, "mux: %d inputs", len(xs))
	}
	ws := c.p.Width(sel)
	if ws < 31 && len(xs) > 1<<uint(ws) {
		failf(ErrMuxArity, "mux: %d inputs with a %d-bit selector", len(xs), ws)
	}
	w := c.p.Width(xs[0])
	for _, x := range xs {
		c.nonEmpty("mux", x)
		if c.p.Width(x) != w {
			failf(ErrWidthMismatch, "mux: input widths %d and %d", w, c.p.Width(x))
		}
	}
	return c.p.Mux(sel, xs)
}

// Mux2 returns t when the 1-bit condition is high, f otherwise.
func (c *Comb[S]) Mux2(cond, t, f S) S {
	c.oneBit("mux2", cond)
	return c.Mux(cond, []S{f, t})
}

// MuxInit builds an n-input mux whose i'th input is f(i).
func (c *Comb[S]) MuxInit(sel S, n int, f func(i int) S) S {
	if n < 2 {
		failf(ErrMuxArity, "mux_init: %d inputs", n)
	}
	xs := make([]S, n)
	for i := range xs {
		xs[i] = f(i)
	}
	return c.Mux(sel, xs)
}

// Cases compares sel against each case key in order; the first equal
// key selects its value, and def is returned when none match.
func (c *Comb[S]) Cases(sel, def S, cases []Case[S]) S {
	c.nonEmpty("cases", sel)
	c.nonEmpty("cases", def)
	r := def
	for i := len(cases) - 1; i >= 0; i-- {
		r = c.Mux2(c.Eq(sel, cases[i].Sel), cases[i].Value, r)
	}
	return r
}

// CasesInt is Cases with integer keys.
func (c *Comb[S]) CasesInt(sel, def S, cases []CaseInt[S]) S {
	c.nonEmpty("cases", sel)
	w := c.p.Width(sel)
	cs := make([]Case[S], len(cases))
	for i, k := range cases {
		cs[i] = Case[S]{Sel: c.ConstInt(w, k.Key), Value: k.Value}
	}
	return c.Cases(sel, def, cs)
}

// Matches is Cases over values of differing widths: each value is first
// brought to the width of the widest one by resize (Uresize when nil).
// An empty def stands for zero.
func (c *Comb[S]) Matches(sel S, resize func(x S, w int) S, def S, cases []Case[S]) S {
	c.nonEmpty("matches", sel)
	if resize == nil {
		resize = c.Uresize
	}
	w := c.p.Width(def)
	for _, k := range cases {
		if vw := c.p.Width(k.Value); vw > w {
			w = vw
		}
	}
	if w == 0 {
		failf(ErrEmpty, "matches: no values")
	}
	if c.IsEmpty(def) {
		def = c.Zero(w)
	} else {
		def = resize(def, w)
	}
	cs := make([]Case[S], len(cases))
	for i, k := range cases {
		cs[i] = Case[S]{Sel: k.Sel, Value: resize(k.Value, w)}
	}
	return c.Cases(sel, def, cs)
}

// Pmux is a priority mux: the value of the first case whose 1-bit
// condition is high, or def when none is.
func (c *Comb[S]) Pmux(cases []Case[S], def S) S {
	c.nonEmpty("pmux", def)
	r := def
	for i := len(cases) - 1; i >= 0; i-- {
		c.oneBit("pmux", cases[i].Sel)
		r = c.Mux2(cases[i].Sel, cases[i].Value, r)
	}
	return r
}

// Pmuxl is Pmux without a default: the last case's value falls through
// when no condition is high. The caller guarantees at most one
// condition is set.
func (c *Comb[S]) Pmuxl(cases []Case[S]) S {
	if len(cases) == 0 {
		failf(ErrEmpty, "pmuxl: no cases")
	}
	return c.Pmux(cases[:len(cases)-1], cases[len(cases)-1].Value)
}

// Pmux1h is a one-hot mux: the or of every value masked by its
// condition. It returns zero when no condition is high; its behaviour
// with several conditions high is undefined.
func (c *Comb[S]) Pmux1h(cases []Case[S]) S {
	if len(cases) == 0 {
		failf(ErrEmpty, "pmux1h: no cases")
	}
	w := c.p.Width(cases[0].Value)
	var r S
	for i, k := range cases {
		c.oneBit("pmux1h", k.Sel)
		if c.p.Width(k.Value) != w {
			failf(ErrWidthMismatch, "pmux1h: value widths %d and %d", w, c.p.Width(k.Value))
		}
		m := c.p.And(k.Value, c.Repeat(k.Sel, w))
		if i == 0 {
			r = m
		} else {
			r = c.p.Or(r, m)
		}
	}
	return r
}
