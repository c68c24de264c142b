// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// Primitives extends Gates with the operations the derived API cannot
// express efficiently on gates alone. A backend may implement these
// natively; MakePrimitives synthesizes them from any Gates
// implementation.
//
// Width semantics:
//
//	Mux(sel,xs)  common width of xs; 2 <= len(xs) <= 2^width(sel), all
//	             xs equal width; missing indices select the last element
//	Add/Sub      operand width, modular
//	Mulu/Muls    width(a) + width(b)
//	Eq/Ult       1
type Primitives[S any] interface {
	Gates[S]

	Mux(sel S, xs []S) S
	Add(a, b S) S
	Sub(a, b S) S
	Mulu(a, b S) S
	Muls(a, b S) S
	Eq(a, b S) S
	Ult(a, b S) S
}

// MakePrimitives builds the primitive operations from bare gates: an
// address-decoded and-or tree for Mux, ripple-carry addition and
// subtraction, shift-and-add multipliers, and compare via subtract
// borrow. The constructions favour obviousness over gate count; a
// backend with a better story should implement Primitives itself.
//
func MakePrimitives[S any](g Gates[S]) Primitives[S] {
	return &synth[S]{g}
}

type synth[S any] struct {
	Gates[S]
}

// zeros returns a w-bit all-zero constant. w >= 1.
func (s *synth[S]) zeros(w int) S {
	b := make([]byte, w)
	for i := range b {
		b[i] = '0'
	}
	return s.Constant(string(b))
}

// rep concatenates n copies of the 1-bit signal b.
func (s *synth[S]) rep(b S, n int) S {
	xs := make([]S, n)
	for i := range xs {
		xs[i] = b
	}
	return s.Concat(xs)
}

// bit extracts bit i of x.
func (s *synth[S]) bit(x S, i int) S {
	return s.Select(x, i, i)
}

// lsbFirst explodes x into single bits, index 0 holding the LSB.
func (s *synth[S]) lsbFirst(x S) []S {
	w := s.Width(x)
	xs := make([]S, w)
	for i := 0; i < w; i++ {
		xs[i] = s.bit(x, i)
	}
	return xs
}

// pack reassembles lsb-first bits into one signal.
func (s *synth[S]) pack(bits []S) S {
	msb := make([]S, len(bits))
	for i, b := range bits {
		msb[len(bits)-1-i] = b
	}
	return s.Concat(msb)
}

// shiftLeft is the constant left shift used by the multiplier: low bits
// fill with zero, width is preserved.
func (s *synth[S]) shiftLeft(x S, n int) S {
	w := s.Width(x)
	if n == 0 {
		return x
	}
	if n >= w {
		return s.zeros(w)
	}
	return s.Concat([]S{s.Select(x, w-1-n, 0), s.zeros(n)})
}

// extend widens x to width w, filling with fill (a 1-bit signal).
func (s *synth[S]) extend(x S, w int, fill S) S {
	d := w - s.Width(x)
	if d == 0 {
		return x
	}
	return s.Concat([]S{s.rep(fill, d), x})
}

// rippleAdd returns a + b + cin at the common operand width, discarding
// the final carry.
func (s *synth[S]) rippleAdd(a, b, cin S) S {
	av, bv := s.lsbFirst(a), s.lsbFirst(b)
	sum := make([]S, len(av))
	c := cin
	for i := range av {
		s0 := s.Xor(av[i], bv[i])
		sum[i] = s.Xor(s0, c)
		c = s.Or(s.And(av[i], bv[i]), s.And(s0, c))
	}
	return s.pack(sum)
}

func (s *synth[S]) Add(a, b S) S {
	return s.rippleAdd(a, b, s.Constant("0"))
}

// Sub computes a - b as a + ^b + 1.
func (s *synth[S]) Sub(a, b S) S {
	return s.rippleAdd(a, s.Not(b), s.Constant("1"))
}

// modMul is a shift-and-add multiplier at a fixed width: the product of
// the w-bit operands, modulo 2^w.
func (s *synth[S]) modMul(a, b S) S {
	w := s.Width(a)
	bv := s.lsbFirst(b)
	acc := s.zeros(w)
	for i := 0; i < w; i++ {
		part := s.And(a, s.rep(bv[i], w))
		acc = s.rippleAdd(acc, s.shiftLeft(part, i), s.Constant("0"))
	}
	return acc
}

func (s *synth[S]) Mulu(a, b S) S {
	w := s.Width(a) + s.Width(b)
	zero := s.Constant("0")
	return s.modMul(s.extend(a, w, zero), s.extend(b, w, zero))
}

// Muls multiplies twos-complement operands: both are sign-extended to
// the product width, where modular multiplication gives the signed
// result.
func (s *synth[S]) Muls(a, b S) S {
	w := s.Width(a) + s.Width(b)
	sa := s.extend(a, w, s.bit(a, s.Width(a)-1))
	sb := s.extend(b, w, s.bit(b, s.Width(b)-1))
	return s.modMul(sa, sb)
}

func (s *synth[S]) Eq(a, b S) S {
	eq := s.Not(s.Xor(a, b))
	bits := s.lsbFirst(eq)
	r := bits[0]
	for _, x := range bits[1:] {
		r = s.And(r, x)
	}
	return r
}

// Ult compares via the borrow chain of a - b: a < b iff the subtraction
// borrows out of the top bit.
func (s *synth[S]) Ult(a, b S) S {
	av, bv := s.lsbFirst(a), s.lsbFirst(b)
	borrow := s.Constant("0")
	for i := range av {
		na := s.Not(av[i])
		borrow = s.Or(s.And(na, bv[i]), s.And(s.Or(na, bv[i]), borrow))
	}
	return borrow
}

// Mux decodes the selector against each input index and or-merges the
// masked inputs. Indices beyond len(xs)-1 fall through to the last
// element: its enable is the nor of all other decodes.
func (s *synth[S]) Mux(sel S, xs []S) S {
	w := s.Width(xs[0])
	last := len(xs) - 1
	var hit, out S
	for i := 0; i < last; i++ {
		en := s.decode(sel, i)
		if i == 0 {
			hit = en
		} else {
			hit = s.Or(hit, en)
		}
		masked := s.And(xs[i], s.rep(en, w))
		if i == 0 {
			out = masked
		} else {
			out = s.Or(out, masked)
		}
	}
	out = s.Or(out, s.And(xs[last], s.rep(s.Not(hit), w)))
	return out
}

// decode returns a 1-bit signal, high iff sel equals the constant i.
func (s *synth[S]) decode(sel S, i int) S {
	bits := s.lsbFirst(sel)
	var en S
	for j, b := range bits {
		if i&(1<<uint(j)) == 0 {
			b = s.Not(b)
		}
		if j == 0 {
			en = b
		} else {
			en = s.And(en, b)
		}
	}
	return en
}
