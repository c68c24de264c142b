// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

import (
	"strconv"

	"github.com/spalmer/comb/internal/lit"
)

// Const builds a constant from a literal string. A plain string over
// {0,1} is a binary constant of that exact width; the Verilog-style form
//
//	<width>'<base><digits>
//
// declares the width explicitly, with base b, o, h or d (unsigned,
// zero-extended) or B, O, H or D (signed, sign-extended from the MSB of
// the literal's natural width).
func (c *Comb[S]) Const(s string) S {
	l, err := lit.Parse(s)
	if err != nil {
		failf(ErrBadConstant, "%v", err)
	}
	return c.p.Constant(l.Bits)
}

// ConstUint64 builds a w-bit constant holding v, which must fit.
func (c *Comb[S]) ConstUint64(w int, v uint64) S {
	if w < 1 {
		failf(ErrBadConstant, "const: width %d", w)
	}
	if w < 64 && v>>uint(w) != 0 {
		failf(ErrBadConstant, "const: %d does not fit in %d bits", v, w)
	}
	b := make([]byte, w)
	for i := 0; i < w; i++ {
		b[w-1-i] = '0' + byte(v>>uint(i)&1)
	}
	return c.p.Constant(string(b))
}

// ConstInt builds a w-bit constant holding v in twos complement.
// Non-negative values must fit in w bits unsigned; negative values must
// fit in w bits signed.
func (c *Comb[S]) ConstInt(w int, v int64) S {
	if v >= 0 {
		return c.ConstUint64(w, uint64(v))
	}
	if w < 1 {
		failf(ErrBadConstant, "const: width %d", w)
	}
	if w < 64 && v < -(int64(1)<<uint(w-1)) {
		failf(ErrBadConstant, "const: %d does not fit in %d bits", v, w)
	}
	mask := ^uint64(0)
	if w < 64 {
		mask = 1<<uint(w) - 1
	}
	return c.ConstUint64(w, uint64(v)&mask)
}

// Zero returns a w-bit all-zero constant.
func (c *Comb[S]) Zero(w int) S { return c.ConstUint64(w, 0) }

// Ones returns a w-bit all-one constant.
func (c *Comb[S]) Ones(w int) S {
	if w < 1 {
		failf(ErrBadConstant, "ones: width %d", w)
	}
	b := make([]byte, w)
	for i := range b {
		b[i] = '1'
	}
	return c.p.Constant(string(b))
}

// One returns a w-bit constant holding 1.
func (c *Comb[S]) One(w int) S { return c.ConstUint64(w, 1) }

// Gnd is the 1-bit constant 0.
func (c *Comb[S]) Gnd() S { return c.Zero(1) }

// Vdd is the 1-bit constant 1.
func (c *Comb[S]) Vdd() S { return c.Ones(1) }

// ToBstr returns the bit pattern of a constant, MSB first.
func (c *Comb[S]) ToBstr(x S) string {
	c.nonEmpty("to_bstr", x)
	if !c.p.IsConst(x) {
		failf(ErrNonConstant, "to_bstr")
	}
	return c.p.Bstr(x)
}

// ToString returns the backend's display form of x.
func (c *Comb[S]) ToString(x S) string { return c.p.String(x) }

// ToUint64 returns the value of a constant as an unsigned integer,
// truncated to the low 64 bits.
func (c *Comb[S]) ToUint64(x S) uint64 {
	s := c.ToBstr(x)
	if len(s) > 64 {
		s = s[len(s)-64:]
	}
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		failf(ErrBadConstant, "to_uint64: %v", err)
	}
	return v
}

// ToSInt64 returns the value of a constant as a signed integer,
// sign-extending to 64 bits; wider constants keep their low 64 bits.
func (c *Comb[S]) ToSInt64(x S) int64 {
	s := c.ToBstr(x)
	v := c.ToUint64(x)
	w := len(s)
	if w < 64 && s[0] == '1' {
		v |= ^uint64(0) << uint(w)
	}
	return int64(v)
}

// ToInt64 returns the unsigned value of a constant, wrapped into int64.
func (c *Comb[S]) ToInt64(x S) int64 { return int64(c.ToUint64(x)) }

// ToInt returns the unsigned value of a constant, wrapped into int.
func (c *Comb[S]) ToInt(x S) int { return int(c.ToUint64(x)) }

// ToSInt returns the signed value of a constant, wrapped into int.
func (c *Comb[S]) ToSInt(x S) int { return int(c.ToSInt64(x)) }

// ToInt32 returns the unsigned value of a constant, wrapped into int32.
func (c *Comb[S]) ToInt32(x S) int32 { return int32(c.ToUint64(x)) }

// ToSInt32 returns the signed value of a constant, wrapped into int32.
func (c *Comb[S]) ToSInt32(x S) int32 { return int32(c.ToSInt64(x)) }
