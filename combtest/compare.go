// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package combtest provides utility functions for testing signal
// operators: it drives the native bits primitives and the gate-level
// synthesis with the same vectors and compares the results.
//
package combtest

import (
	"math/rand"
	"testing"

	"github.com/spalmer/comb"
	"github.com/spalmer/comb/bits"
)

// vectors is the number of random vectors tried per width combination
// when the input space is too large to enumerate.
const vectors = 64

// exhaustiveBits bounds the total input width at or below which every
// input combination is tried.
const exhaustiveBits = 12

// Random returns a uniformly random w-bit value.
func Random(rng *rand.Rand, w int) bits.Bits {
	b := make([]byte, w)
	for i := range b {
		b[i] = '0' + byte(rng.Intn(2))
	}
	return bits.FromBstr(string(b))
}

// An Impl is one implementation of the combinational API over bits.
type Impl = *comb.Comb[bits.Bits]

// CompareUnary checks that f computes the same function over the
// native primitives and over the gate-level synthesis, for every (or a
// random sample of) w-bit input.
func CompareUnary(t *testing.T, name string, w int, f func(c Impl, x bits.Bits) bits.Bits) {
	t.Helper()
	ref, alt := bits.New(), bits.NewSynth()
	check := func(x bits.Bits) {
		t.Helper()
		want := f(ref, x)
		got := f(alt, x)
		if !want.Equal(got) {
			t.Fatalf("%s(%s): synthesis %s, native %s", name, x, got, want)
		}
	}
	if w <= exhaustiveBits {
		for v := uint64(0); v < 1<<uint(w); v++ {
			check(bits.FromUint64(w, v))
		}
		return
	}
	rng := rand.New(rand.NewSource(int64(w)))
	for i := 0; i < vectors; i++ {
		check(Random(rng, w))
	}
}

// CompareBinary is CompareUnary for two-input functions.
func CompareBinary(t *testing.T, name string, wa, wb int, f func(c Impl, a, b bits.Bits) bits.Bits) {
	t.Helper()
	ref, alt := bits.New(), bits.NewSynth()
	check := func(a, b bits.Bits) {
		t.Helper()
		want := f(ref, a, b)
		got := f(alt, a, b)
		if !want.Equal(got) {
			t.Fatalf("%s(%s, %s): synthesis %s, native %s", name, a, b, got, want)
		}
	}
	if wa+wb <= exhaustiveBits {
		for va := uint64(0); va < 1<<uint(wa); va++ {
			for vb := uint64(0); vb < 1<<uint(wb); vb++ {
				check(bits.FromUint64(wa, va), bits.FromUint64(wb, vb))
			}
		}
		return
	}
	rng := rand.New(rand.NewSource(int64(wa)<<8 | int64(wb)))
	for i := 0; i < vectors; i++ {
		check(Random(rng, wa), Random(rng, wb))
	}
}
