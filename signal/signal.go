// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package signal is the symbolic signal backend: operators build nodes
// of a shared circuit graph instead of computing bits. Structurally
// identical subexpressions are merged, so the graph is a DAG.
//
// A Builder owns the graph. Free variables enter through Input;
// constants fold at construction when every operand is constant.
//
//	c, b := signal.New()
//	x := b.Input("x", 8)
//	y := c.Add(x, c.Const("8'd3"))
//
package signal

import (
	"fmt"
	"strconv"

	"github.com/spalmer/comb/bits"
)

// Op identifies the operation a node performs.
type Op uint8

// Node operations. OpInput and OpConst are leaves.
const (
	OpInput Op = iota
	OpConst
	OpConcat
	OpSelect
	OpAnd
	OpOr
	OpXor
	OpNot
	OpMux
	OpAdd
	OpSub
	OpMulu
	OpMuls
	OpEq
	OpUlt
)

var opNames = [...]string{
	OpInput:  "input",
	OpConst:  "const",
	OpConcat: "concat",
	OpSelect: "select",
	OpAnd:    "and",
	OpOr:     "or",
	OpXor:    "xor",
	OpNot:    "not",
	OpMux:    "mux",
	OpAdd:    "add",
	OpSub:    "sub",
	OpMulu:   "mulu",
	OpMuls:   "muls",
	OpEq:     "eq",
	OpUlt:    "ult",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op" + strconv.Itoa(int(op))
}

// A Signal is a node of the circuit graph. Signals are immutable apart
// from name annotations; equal subexpressions share one node.
type Signal = *Node

// A Node carries one operation of the graph.
type Node struct {
	id     uint64
	op     Op
	width  int
	args   []*Node
	hi, lo int       // select bounds
	cval   bits.Bits // constant payload
	names  []string
}

// ID returns the node's unique, monotonically assigned identifier.
func (n *Node) ID() uint64 { return n.id }

// Op returns the node's operation.
func (n *Node) Op() Op { return n.op }

// Width returns the node's width in bits.
func (n *Node) Width() int { return n.width }

// Args returns the operand nodes. The caller must not modify the slice.
func (n *Node) Args() []*Node { return n.args }

// Names returns the names attached to the node, in attachment order.
func (n *Node) Names() []string { return n.names }

// Const returns the constant payload of an OpConst node.
func (n *Node) Const() (bits.Bits, bool) {
	return n.cval, n.op == OpConst
}

func (n *Node) String() string {
	switch {
	case n == nil:
		return "<nil>"
	case len(n.names) > 0:
		return n.names[0]
	case n.op == OpConst:
		return n.cval.String()
	case n.op == OpInput:
		return fmt.Sprintf("input#%d/%d", n.id, n.width)
	}
	return fmt.Sprintf("%s#%d/%d", n.op, n.id, n.width)
}
