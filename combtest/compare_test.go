// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package combtest_test

import (
	"testing"

	"github.com/spalmer/comb/bits"
	"github.com/spalmer/comb/combtest"
)

// The gate-level synthesis of each primitive must agree with the
// native word-level implementation.
func TestSynthesis_primitives(t *testing.T) {
	type binop struct {
		name string
		f    func(c combtest.Impl, a, b bits.Bits) bits.Bits
	}
	ops := []binop{
		{"add", func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Add(a, b) }},
		{"sub", func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Sub(a, b) }},
		{"eq", func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Eq(a, b) }},
		{"ult", func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Lt(a, b) }},
	}
	for _, op := range ops {
		op := op
		t.Run(op.name, func(t *testing.T) {
			for _, w := range []int{1, 2, 5, 8, 65} {
				combtest.CompareBinary(t, op.name, w, w, op.f)
			}
		})
	}
}

func TestSynthesis_multipliers(t *testing.T) {
	widths := [][2]int{{1, 1}, {3, 3}, {4, 2}, {5, 6}, {8, 8}}
	for _, wp := range widths {
		combtest.CompareBinary(t, "mulu", wp[0], wp[1],
			func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Mulu(a, b) })
		combtest.CompareBinary(t, "muls", wp[0], wp[1],
			func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Muls(a, b) })
	}
}

func TestSynthesis_mux(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 8} {
		n := n
		combtest.CompareBinary(t, "mux", 3, 8,
			func(c combtest.Impl, sel, seed bits.Bits) bits.Bits {
				xs := make([]bits.Bits, n)
				for i := range xs {
					// spread the seed into distinct inputs
					xs[i] = c.AddInt(seed, int64(i*37%256))
				}
				return c.Mux(sel, xs)
			})
	}
}

// Derived tree operators run the synthesized primitives through much
// deeper structures; compare those too.
func TestSynthesis_derived(t *testing.T) {
	combtest.CompareUnary(t, "popcount", 9,
		func(c combtest.Impl, x bits.Bits) bits.Bits { return c.Popcount(x) })
	combtest.CompareUnary(t, "leading_zeros", 9,
		func(c combtest.Impl, x bits.Bits) bits.Bits { return c.LeadingZeros(x) })
	combtest.CompareUnary(t, "floor_log2", 8,
		func(c combtest.Impl, x bits.Bits) bits.Bits { return c.FloorLog2(x).Value })
	combtest.CompareBinary(t, "sllv", 8, 3,
		func(c combtest.Impl, x, d bits.Bits) bits.Bits { return c.SllV(x, d) })
	combtest.CompareBinary(t, "lts", 6, 6,
		func(c combtest.Impl, a, b bits.Bits) bits.Bits { return c.Lts(a, b) })
}
