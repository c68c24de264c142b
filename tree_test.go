// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/spalmer/comb"
	combits "github.com/spalmer/comb/bits"
)

func TestTreeReduce(t *testing.T) {
	c := combits.New()
	var xs []combits.Bits
	for i := 1; i <= 9; i++ {
		xs = append(xs, c.ConstUint64(8, uint64(i)))
	}
	sum := func(chunk []combits.Bits) combits.Bits {
		r := chunk[0]
		for _, x := range chunk[1:] {
			r = c.Add(r, x)
		}
		return r
	}
	for _, arity := range []int{2, 3, 4} {
		if got := c.ToUint64(c.Tree(arity, sum, xs)); got != 45 {
			t.Errorf("tree arity %d: sum = %d", arity, got)
		}
	}
	if got := c.ToUint64(c.Reduce(c.Add, xs)); got != 45 {
		t.Errorf("reduce: sum = %d", got)
	}
	mustPanic(t, comb.ErrEmpty, func() { c.Tree(2, sum, nil) })
	mustPanic(t, comb.ErrEmpty, func() { c.Reduce(c.Add, nil) })
	mustPanic(t, comb.ErrOutOfRange, func() { c.Tree(1, sum, xs) })
}

func TestPopcount(t *testing.T) {
	c := combits.New()
	x := c.Const("10110100")
	pc := c.Popcount(x)
	if w := c.Width(pc); w != 4 {
		t.Errorf("popcount width = %d, want 4", w)
	}
	if got := c.ToUint64(pc); got != 4 {
		t.Errorf("popcount = %d, want 4", got)
	}
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		w := 1 + rng.Intn(20)
		v := rng.Uint64() & (1<<uint(w) - 1)
		for _, bf := range []int{2, 3, 5} {
			got := c.ToUint64(c.Popcount(combits.FromUint64(w, v), bf))
			if got != uint64(bits.OnesCount64(v)) {
				t.Fatalf("popcount(%b) bf=%d = %d", v, bf, got)
			}
		}
	}
}

func TestIsPow2(t *testing.T) {
	c := combits.New()
	for v := uint64(0); v < 64; v++ {
		got := c.ToUint64(c.IsPow2(combits.FromUint64(6, v))) == 1
		want := v != 0 && v&(v-1) == 0
		if got != want {
			t.Errorf("is_pow2(%d) = %v", v, got)
		}
	}
}

func TestPrioritySelect(t *testing.T) {
	c := combits.New()
	cases := []comb.Case[combits.Bits]{
		{Sel: c.Gnd(), Value: c.Const("8'd7")},
		{Sel: c.Vdd(), Value: c.Const("8'd3")},
		{Sel: c.Vdd(), Value: c.Const("8'd9")},
	}
	for _, bf := range []int{2, 3} {
		ps := c.PrioritySelect(cases, bf)
		if c.ToUint64(ps.Valid) != 1 || c.ToUint64(ps.Value) != 3 {
			t.Errorf("bf=%d: got valid=%s value=%s", bf,
				c.ToBstr(ps.Valid), c.ToBstr(ps.Value))
		}
	}
	// no valid case
	cold := []comb.Case[combits.Bits]{
		{Sel: c.Gnd(), Value: c.Const("8'd7")},
		{Sel: c.Gnd(), Value: c.Const("8'd3")},
	}
	ps := c.PrioritySelect(cold)
	if c.ToUint64(ps.Valid) != 0 {
		t.Error("priority_select should be invalid with no hot case")
	}
	if got := c.ToUint64(c.PrioritySelectWithDefault(cold, c.Const("8'd42"))); got != 42 {
		t.Errorf("priority_select_with_default = %d", got)
	}
}

func TestPrioritySelect_exhaustive(t *testing.T) {
	c := combits.New()
	vals := []uint64{10, 20, 30, 40, 50}
	for m := 0; m < 1<<5; m++ {
		cases := make([]comb.Case[combits.Bits], 5)
		want, wantValid := uint64(0), false
		for i := range cases {
			hot := m&(1<<uint(i)) != 0
			sel := c.Gnd()
			if hot {
				sel = c.Vdd()
				if !wantValid {
					want, wantValid = vals[i], true
				}
			}
			cases[i] = comb.Case[combits.Bits]{Sel: sel, Value: c.ConstUint64(8, vals[i])}
		}
		for _, bf := range []int{2, 3, 4} {
			ps := c.PrioritySelect(cases, bf)
			if got := c.ToUint64(ps.Valid) == 1; got != wantValid {
				t.Fatalf("mask %05b bf=%d: valid=%v", m, bf, got)
			}
			if wantValid && c.ToUint64(ps.Value) != want {
				t.Fatalf("mask %05b bf=%d: value=%d, want %d", m, bf, c.ToUint64(ps.Value), want)
			}
		}
	}
}

func TestOnehotSelect(t *testing.T) {
	c := combits.New()
	for hot := 0; hot < 4; hot++ {
		cases := make([]comb.Case[combits.Bits], 4)
		for i := range cases {
			sel := c.Gnd()
			if i == hot {
				sel = c.Vdd()
			}
			cases[i] = comb.Case[combits.Bits]{Sel: sel, Value: c.ConstUint64(8, uint64(i + 1))}
		}
		for _, bf := range []int{2, 3} {
			if got := c.ToUint64(c.OnehotSelect(cases, bf)); got != uint64(hot+1) {
				t.Fatalf("hot=%d bf=%d: got %d", hot, bf, got)
			}
		}
	}
}

func TestCountRuns(t *testing.T) {
	c := combits.New()
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 300; i++ {
		w := 1 + rng.Intn(16)
		v := rng.Uint64() & (1<<uint(w) - 1)
		x := combits.FromUint64(w, v)
		lead0 := uint64(bits.LeadingZeros64(v)) - uint64(64-w)
		trail0 := uint64(bits.TrailingZeros64(v))
		if v == 0 {
			trail0 = uint64(w)
		} else if trail0 > uint64(w) {
			trail0 = uint64(w)
		}
		if got := c.ToUint64(c.LeadingZeros(x)); got != lead0 {
			t.Fatalf("leading_zeros(%0*b) = %d, want %d", w, v, got, lead0)
		}
		if got := c.ToUint64(c.TrailingZeros(x)); got != trail0 {
			t.Fatalf("trailing_zeros(%0*b) = %d, want %d", w, v, got, trail0)
		}
		notv := ^v & (1<<uint(w) - 1)
		leads1 := uint64(bits.LeadingZeros64(notv)) - uint64(64-w)
		if got := c.ToUint64(c.LeadingOnes(x)); got != leads1 {
			t.Fatalf("leading_ones(%0*b) = %d, want %d", w, v, got, leads1)
		}
	}
	// width of the count covers 0..w inclusive
	if w := c.Width(c.TrailingZeros(c.Const("0000"))); w != 3 {
		t.Errorf("count width = %d, want 3", w)
	}
}

func TestFloorCeilLog2(t *testing.T) {
	c := combits.New()
	fl := c.FloorLog2(c.Const("00101100"))
	if c.ToUint64(fl.Valid) != 1 || c.ToUint64(fl.Value) != 5 {
		t.Errorf("floor_log2 = valid %s value %s", c.ToBstr(fl.Valid), c.ToBstr(fl.Value))
	}
	if c.ToUint64(c.FloorLog2(c.Const("0")).Valid) != 0 {
		t.Error("floor_log2(0) should be invalid")
	}
	for v := uint64(1); v < 256; v++ {
		x := combits.FromUint64(8, v)
		fl := c.FloorLog2(x)
		if c.ToUint64(fl.Valid) != 1 {
			t.Fatalf("floor_log2(%d) invalid", v)
		}
		if got, want := c.ToUint64(fl.Value), uint64(63-bits.LeadingZeros64(v)); got != want {
			t.Fatalf("floor_log2(%d) = %d, want %d", v, got, want)
		}
		cl := c.CeilLog2(x)
		want := uint64(bits.Len64(v - 1))
		if v == 1 {
			want = 0
		}
		if got := c.ToUint64(cl.Value); got != want {
			t.Fatalf("ceil_log2(%d) = %d, want %d", v, got, want)
		}
	}
	if c.ToUint64(c.CeilLog2(combits.FromUint64(8, 0)).Valid) != 0 {
		t.Error("ceil_log2(0) should be invalid")
	}
}
