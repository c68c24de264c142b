// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bits is the concrete signal backend: the signal is the bit
// pattern. Values are immutable; every operation allocates its result.
//
// Use New for the full combinational API over this backend:
//
//	c := bits.New()
//	sum := c.Add(c.Const("1101"), c.Const("0011"))
//
package bits

import (
	"github.com/bits-and-blooms/bitset"
)

// A Bits is a fixed-width bit vector. Bit 0 is the LSB. The zero value
// is the empty (zero-width) signal.
type Bits struct {
	n int
	b *bitset.BitSet
}

// Width returns the number of bits.
func (x Bits) Width() int { return x.n }

// IsEmpty reports whether the width is zero.
func (x Bits) IsEmpty() bool { return x.n == 0 }

// Bit returns bit i.
func (x Bits) Bit(i int) bool { return x.b.Test(uint(i)) }

// String returns the bit pattern, MSB first.
func (x Bits) String() string {
	s := make([]byte, x.n)
	for i := 0; i < x.n; i++ {
		if x.b.Test(uint(i)) {
			s[x.n-1-i] = '1'
		} else {
			s[x.n-1-i] = '0'
		}
	}
	return string(s)
}

// Equal reports bit-for-bit equality, including width.
func (x Bits) Equal(y Bits) bool {
	if x.n != y.n {
		return false
	}
	if x.n == 0 {
		return true
	}
	return x.b.Equal(y.b)
}

// Uint64 returns the low 64 bits as an unsigned integer.
func (x Bits) Uint64() uint64 {
	if x.n == 0 {
		return 0
	}
	return x.words()[0]
}

// FromBstr builds a value from a bit pattern, MSB first. The string
// must be non-empty and contain only 0 and 1.
func FromBstr(s string) Bits {
	n := len(s)
	b := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if s[n-1-i] == '1' {
			b.Set(uint(i))
		}
	}
	return Bits{n: n, b: b}
}

// FromUint64 builds a w-bit value holding the low w bits of v.
func FromUint64(w int, v uint64) Bits {
	ws := make([]uint64, nwords(w))
	ws[0] = v
	return fromWords(w, ws)
}

// word helpers

func nwords(n int) int { return (n + 63) / 64 }

// topMask masks the live bits of the top word.
func topMask(n int) uint64 {
	if r := uint(n % 64); r != 0 {
		return 1<<r - 1
	}
	return ^uint64(0)
}

// words returns a copy of the value as little-endian 64-bit words,
// padded to exactly nwords(n).
func (x Bits) words() []uint64 {
	out := make([]uint64, nwords(x.n))
	copy(out, x.b.Bytes())
	return out
}

// fromWords builds an n-bit value from little-endian words, masking
// stray high bits. It takes ownership of ws.
func fromWords(n int, ws []uint64) Bits {
	ws = ws[:nwords(n)]
	ws[len(ws)-1] &= topMask(n)
	return Bits{n: n, b: bitset.FromWithLength(uint(n), ws)}
}
