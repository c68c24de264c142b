// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb

// maxOnehotBits bounds the selector width of BinaryToOnehot: the result
// has 2^width bits.
const maxOnehotBits = 24

// BinaryToOnehot expands x to a 2^width(x)-bit vector with bit x set.
func (c *Comb[S]) BinaryToOnehot(x S) S {
	c.nonEmpty("binary_to_onehot", x)
	w := c.p.Width(x)
	if w > maxOnehotBits {
		failf(ErrOutOfRange, "binary_to_onehot: %d-bit selector", w)
	}
	return c.SllV(c.Uresize(c.Vdd(), 1<<uint(w)), x)
}

// OnehotToBinary encodes the index of the set bit of a one-hot vector:
// output bit i is the or of the one-hot bits whose index has bit i set.
func (c *Comb[S]) OnehotToBinary(x S) S {
	c.nonEmpty("onehot_to_binary", x)
	n := c.p.Width(x)
	bw := clog2(n)
	if bw < 1 {
		bw = 1
	}
	out := make([]S, bw)
	for i := 0; i < bw; i++ {
		var r S
		seen := false
		for j := 1 << uint(i); j < n; j++ {
			if j&(1<<uint(i)) == 0 {
				continue
			}
			if !seen {
				r = c.Bit(x, j)
				seen = true
			} else {
				r = c.p.Or(r, c.Bit(x, j))
			}
		}
		if !seen {
			r = c.Gnd()
		}
		out[bw-1-i] = r
	}
	return c.p.Concat(out)
}

// BinaryToGray converts binary to Gray code: x ^ (x >> 1).
func (c *Comb[S]) BinaryToGray(x S) S {
	c.nonEmpty("binary_to_gray", x)
	return c.p.Xor(x, c.Srl(x, 1))
}

// GrayToBinary converts Gray code to binary with a cumulative xor from
// the MSB down.
func (c *Comb[S]) GrayToBinary(x S) S {
	c.nonEmpty("gray_to_binary", x)
	w := c.p.Width(x)
	out := make([]S, w)
	b := c.Bit(x, w-1)
	out[0] = b
	for i := w - 2; i >= 0; i-- {
		b = c.p.Xor(b, c.Bit(x, i))
		out[w-1-i] = b
	}
	return c.p.Concat(out)
}
