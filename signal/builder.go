// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package signal

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/spalmer/comb"
	"github.com/spalmer/comb/bits"
)

// A Builder constructs the circuit graph. It implements
// comb.Primitives[Signal] and is safe for concurrent use: node
// identifiers come from an atomic counter and the sharing table is
// locked independently.
type Builder struct {
	mu    sync.Mutex
	table map[uint64][]*Node
	next  atomic.Uint64
	empty *Node
	bc    *comb.Comb[bits.Bits] // folds all-constant nodes
}

// NewBuilder returns an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		table: make(map[uint64][]*Node),
		empty: &Node{op: OpConst},
		bc:    bits.New(),
	}
}

// New returns the combinational API over a fresh graph builder,
// together with the builder for creating inputs and inspecting nodes.
func New() (*comb.Comb[Signal], *Builder) {
	b := NewBuilder()
	return comb.New[Signal](b), b
}

// Input creates a free variable of the given width. Inputs are never
// merged, even under one name.
func (b *Builder) Input(name string, w int) Signal {
	if w < 1 {
		panic(errors.Errorf("input %q: width %d", name, w))
	}
	n := &Node{op: OpInput, width: w, names: []string{name}}
	n.id = b.next.Add(1)
	return n
}

// hashNode computes the structural hash used as the sharing key.
func hashNode(op Op, width, hi, lo int, args []*Node, cval string) uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(uint64(op))
	put(uint64(width))
	put(uint64(hi))
	put(uint64(lo))
	for _, a := range args {
		put(a.id)
	}
	_, _ = h.WriteString(cval)
	return h.Sum64()
}

// intern returns the existing node structurally equal to the candidate,
// or registers the candidate and returns it.
func (b *Builder) intern(n *Node) *Node {
	cval := ""
	if n.op == OpConst {
		cval = n.cval.String()
	}
	key := hashNode(n.op, n.width, n.hi, n.lo, n.args, cval)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.table[key] {
		if b.same(m, n) {
			return m
		}
	}
	n.id = b.next.Add(1)
	b.table[key] = append(b.table[key], n)
	return n
}

func (b *Builder) same(m, n *Node) bool {
	if m.op != n.op || m.width != n.width || m.hi != n.hi || m.lo != n.lo || len(m.args) != len(n.args) {
		return false
	}
	for i := range m.args {
		if m.args[i] != n.args[i] {
			return false
		}
	}
	if m.op == OpConst && !m.cval.Equal(n.cval) {
		return false
	}
	return true
}

// constArgs returns the payloads of args when every one is constant.
func constArgs(args []*Node) ([]bits.Bits, bool) {
	vals := make([]bits.Bits, len(args))
	for i, a := range args {
		if a.op != OpConst {
			return nil, false
		}
		vals[i] = a.cval
	}
	return vals, true
}

func (b *Builder) node(op Op, width int, args ...*Node) Signal {
	return b.intern(&Node{op: op, width: width, args: args})
}

// comb.Gates

// Empty returns the zero-width signal.
func (b *Builder) Empty() Signal { return b.empty }

// Width returns the width of x.
func (b *Builder) Width(x Signal) int { return x.width }

// Constant builds (or shares) a constant node.
func (b *Builder) Constant(s string) Signal {
	return b.intern(&Node{op: OpConst, width: len(s), cval: bits.FromBstr(s)})
}

func (b *Builder) constant(v bits.Bits) Signal {
	return b.intern(&Node{op: OpConst, width: v.Width(), cval: v})
}

// Concat concatenates xs, folding when every part is constant.
func (b *Builder) Concat(xs []Signal) Signal {
	w := 0
	for _, x := range xs {
		w += x.width
	}
	if len(xs) == 1 {
		return xs[0]
	}
	if vals, ok := constArgs(xs); ok {
		return b.constant(b.bc.Concat(vals...))
	}
	return b.node(OpConcat, w, xs...)
}

// Select extracts bits [hi..lo], folding constants and eliding
// full-range selections.
func (b *Builder) Select(x Signal, hi, lo int) Signal {
	if lo == 0 && hi == x.width-1 {
		return x
	}
	if x.op == OpConst {
		return b.constant(b.bc.Select(x.cval, hi, lo))
	}
	n := &Node{op: OpSelect, width: hi - lo + 1, args: []*Node{x}, hi: hi, lo: lo}
	return b.intern(n)
}

// Name attaches a name to x and returns it. Because equal expressions
// share nodes, the name is visible through every occurrence.
func (b *Builder) Name(x Signal, name string) Signal {
	b.mu.Lock()
	x.names = append(x.names, name)
	b.mu.Unlock()
	return x
}

func (b *Builder) gate(op Op, f func(a, d bits.Bits) bits.Bits, a, d Signal) Signal {
	if vals, ok := constArgs([]*Node{a, d}); ok {
		return b.constant(f(vals[0], vals[1]))
	}
	return b.node(op, a.width, a, d)
}

// And builds a bitwise and node.
func (b *Builder) And(x, y Signal) Signal { return b.gate(OpAnd, b.bc.And, x, y) }

// Or builds a bitwise or node.
func (b *Builder) Or(x, y Signal) Signal { return b.gate(OpOr, b.bc.Or, x, y) }

// Xor builds a bitwise xor node.
func (b *Builder) Xor(x, y Signal) Signal { return b.gate(OpXor, b.bc.Xor, x, y) }

// Not builds a complement node.
func (b *Builder) Not(x Signal) Signal {
	if x.op == OpConst {
		return b.constant(b.bc.Not(x.cval))
	}
	return b.node(OpNot, x.width, x)
}

// Same reports node identity.
func (b *Builder) Same(x, y Signal) bool { return x == y }

// IsConst reports whether x is a constant node.
func (b *Builder) IsConst(x Signal) bool { return x.op == OpConst }

// Bstr returns the bit pattern of a constant node.
func (b *Builder) Bstr(x Signal) string {
	if x.op != OpConst {
		panic(errors.Wrapf(comb.ErrNonConstant, "bstr of %s", x))
	}
	return x.cval.String()
}

// String returns a display form of x.
func (b *Builder) String(x Signal) string { return x.String() }

// comb.Primitives

// Mux builds a multiplexer node: args are the selector followed by the
// inputs. A constant selector over constant inputs folds.
func (b *Builder) Mux(sel Signal, xs []Signal) Signal {
	args := append([]*Node{sel}, xs...)
	if vals, ok := constArgs(args); ok {
		return b.constant(b.bc.Mux(vals[0], vals[1:]))
	}
	return b.node(OpMux, xs[0].width, args...)
}

func (b *Builder) arith(op Op, w int, f func(a, d bits.Bits) bits.Bits, x, y Signal) Signal {
	if vals, ok := constArgs([]*Node{x, y}); ok {
		return b.constant(f(vals[0], vals[1]))
	}
	return b.node(op, w, x, y)
}

// Add builds a modular adder node.
func (b *Builder) Add(x, y Signal) Signal { return b.arith(OpAdd, x.width, b.bc.Add, x, y) }

// Sub builds a modular subtractor node.
func (b *Builder) Sub(x, y Signal) Signal { return b.arith(OpSub, x.width, b.bc.Sub, x, y) }

// Mulu builds an unsigned multiplier node of width wa+wb.
func (b *Builder) Mulu(x, y Signal) Signal {
	return b.arith(OpMulu, x.width+y.width, b.bc.Mulu, x, y)
}

// Muls builds a signed multiplier node of width wa+wb.
func (b *Builder) Muls(x, y Signal) Signal {
	return b.arith(OpMuls, x.width+y.width, b.bc.Muls, x, y)
}

// Eq builds an equality node.
func (b *Builder) Eq(x, y Signal) Signal { return b.arith(OpEq, 1, b.bc.Eq, x, y) }

// Ult builds an unsigned less-than node.
func (b *Builder) Ult(x, y Signal) Signal { return b.arith(OpUlt, 1, b.bc.Lt, x, y) }

// NumNodes returns the number of distinct shared nodes created so far,
// inputs included.
func (b *Builder) NumNodes() uint64 { return b.next.Load() }
