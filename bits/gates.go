// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bits

import (
	mathbits "math/bits"

	"github.com/spalmer/comb"
)

// New returns the combinational API over the bits backend, with the
// primitives implemented natively at word level.
func New() *comb.Comb[Bits] {
	return comb.New[Bits](prim{})
}

// NewSynth returns the combinational API over the bits backend with the
// primitives synthesized from gates alone. It exists to exercise the
// reference synthesis against the native primitives; New is what
// callers want.
func NewSynth() *comb.Comb[Bits] {
	return comb.NewFromGates[Bits](gates{})
}

// gates implements comb.Gates over concrete bit patterns.
type gates struct{}

func (gates) Empty() Bits { return Bits{} }
func (gates) Width(x Bits) int { return x.n }
func (gates) Constant(s string) Bits {
	return FromBstr(s)
}

func (gates) Concat(xs []Bits) Bits {
	n := 0
	for _, x := range xs {
		n += x.n
	}
	out := FromUint64(n, 0)
	pos := 0 // fill LSB-first, so walk the list from its tail
	for i := len(xs) - 1; i >= 0; i-- {
		x := xs[i]
		for j := 0; j < x.n; j++ {
			out.b.SetTo(uint(pos+j), x.b.Test(uint(j)))
		}
		pos += x.n
	}
	return out
}

func (gates) Select(x Bits, hi, lo int) Bits {
	out := FromUint64(hi-lo+1, 0)
	for i := lo; i <= hi; i++ {
		out.b.SetTo(uint(i-lo), x.b.Test(uint(i)))
	}
	return out
}

// Name is a no-op: a concrete value carries no metadata.
func (gates) Name(x Bits, name string) Bits { return x }

func (gates) And(a, b Bits) Bits {
	c := a.b.Clone()
	c.InPlaceIntersection(b.b)
	return Bits{n: a.n, b: c}
}

func (gates) Or(a, b Bits) Bits {
	c := a.b.Clone()
	c.InPlaceUnion(b.b)
	return Bits{n: a.n, b: c}
}

func (gates) Xor(a, b Bits) Bits {
	c := a.b.Clone()
	c.InPlaceSymmetricDifference(b.b)
	return Bits{n: a.n, b: c}
}

func (gates) Not(x Bits) Bits {
	ws := x.words()
	for i := range ws {
		ws[i] = ^ws[i]
	}
	return fromWords(x.n, ws)
}

func (gates) Same(a, b Bits) bool { return a.Equal(b) }
func (gates) IsConst(x Bits) bool { return true }
func (gates) Bstr(x Bits) string { return x.String() }
func (gates) String(x Bits) string { return x.String() }

// prim adds word-level implementations of the primitives.
type prim struct{ gates }

func (prim) Add(a, b Bits) Bits {
	aw, bw := a.words(), b.words()
	var carry uint64
	for i := range aw {
		aw[i], carry = mathbits.Add64(aw[i], bw[i], carry)
	}
	return fromWords(a.n, aw)
}

func (prim) Sub(a, b Bits) Bits {
	aw, bw := a.words(), b.words()
	var borrow uint64
	for i := range aw {
		aw[i], borrow = mathbits.Sub64(aw[i], bw[i], borrow)
	}
	return fromWords(a.n, aw)
}

// mulWords is a schoolbook multiply producing outn words.
func mulWords(aw, bw []uint64, outn int) []uint64 {
	res := make([]uint64, outn)
	for i, x := range aw {
		if x == 0 || i >= outn {
			continue
		}
		var carry uint64
		for j := 0; i+j < outn && j < len(bw); j++ {
			hi, lo := mathbits.Mul64(x, bw[j])
			var c1, c2 uint64
			res[i+j], c1 = mathbits.Add64(res[i+j], lo, 0)
			res[i+j], c2 = mathbits.Add64(res[i+j], carry, 0)
			carry = hi + c1 + c2
		}
		if k := i + len(bw); k < outn {
			for ; carry != 0 && k < outn; k++ {
				res[k], carry = mathbits.Add64(res[k], carry, 0)
			}
		}
	}
	return res
}

func (prim) Mulu(a, b Bits) Bits {
	n := a.n + b.n
	return fromWords(n, mulWords(a.words(), b.words(), nwords(n)))
}

// signExtendWords widens x to n bits, replicating the sign bit.
func signExtendWords(x Bits, n int) []uint64 {
	ws := make([]uint64, nwords(n))
	copy(ws, x.b.Bytes())
	if x.b.Test(uint(x.n - 1)) {
		// fill everything above bit x.n-1 with ones
		top := x.n / 64
		if r := uint(x.n % 64); r != 0 {
			ws[top] |= ^uint64(0) << r
			top++
		}
		for i := top; i < len(ws); i++ {
			ws[i] = ^uint64(0)
		}
	}
	ws[len(ws)-1] &= topMask(n)
	return ws
}

func (prim) Muls(a, b Bits) Bits {
	n := a.n + b.n
	return fromWords(n, mulWords(signExtendWords(a, n), signExtendWords(b, n), nwords(n)))
}

func (prim) Eq(a, b Bits) Bits {
	return boolBit(a.Equal(b))
}

func (prim) Ult(a, b Bits) Bits {
	aw, bw := a.words(), b.words()
	for i := len(aw) - 1; i >= 0; i-- {
		if aw[i] != bw[i] {
			return boolBit(aw[i] < bw[i])
		}
	}
	return boolBit(false)
}

func (prim) Mux(sel Bits, xs []Bits) Bits {
	idx := len(xs) - 1
	ws := sel.words()
	high := false
	for _, w := range ws[1:] {
		high = high || w != 0
	}
	if !high && ws[0] < uint64(idx) {
		idx = int(ws[0])
	}
	return xs[idx]
}

func boolBit(v bool) Bits {
	if v {
		return FromUint64(1, 1)
	}
	return FromUint64(1, 0)
}
