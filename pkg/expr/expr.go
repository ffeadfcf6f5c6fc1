// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is an immutable expression node.  Nodes are created only through the
// canonicalizing constructors in this package (Sum, Product, Power, Function,
// NewInteger, etc) and never mutated afterwards; transformations always
// produce new nodes.  Structurally identical nodes are deduplicated through
// the process-wide interner, so (while the interner has capacity) equal
// expressions are pointer-identical and may be shared by many parents.  The
// result is a DAG with no cycles, traversed as a tree.
type Expr struct {
	kind Kind
	// operands, nil for atoms.  Operands of commutative kinds are held in
	// canonical order.
	args []*Expr
	// exact numeric payload (Integer / Rational kinds only).
	num *big.Rat
	// name payload (Symbol / Func / Wild / WildSeq kinds only).
	name string
	// symbol properties (Symbol kind only).
	props Properties
	// structural hashcode, computed once at construction.
	hash uint64
}

// Kind returns the operator (or atom) class of this node.
func (p *Expr) Kind() Kind {
	return p.kind
}

// Arity returns the number of operands of this node (zero for atoms).
func (p *Expr) Arity() uint {
	return uint(len(p.args))
}

// Args returns the operands of this node.  The returned slice is shared with
// the node and must not be modified.
func (p *Expr) Args() []*Expr {
	return p.args
}

// Arg returns the ith operand of this node.
func (p *Expr) Arg(i uint) *Expr {
	return p.args[i]
}

// Name returns the name payload of a symbol, function application or
// wildcard, and the empty string for any other kind.
func (p *Expr) Name() string {
	return p.name
}

// Rat returns a copy of the exact numeric value of an Integer or Rational
// atom.  It panics on any other kind.
func (p *Expr) Rat() *big.Rat {
	if p.num == nil {
		panic(fmt.Sprintf("expression %s has no numeric value", p))
	}
	//
	return new(big.Rat).Set(p.num)
}

// Properties returns the assumption set attached to a Symbol atom (empty for
// all other kinds).
func (p *Expr) Properties() Properties {
	return p.props
}

// IsNumeric determines whether this node is an exact numeric atom.
func (p *Expr) IsNumeric() bool {
	return p.kind.IsNumeric()
}

// Hash returns the structural hashcode of this node.  The hashcode is a pure
// function of the node's kind, payload and operand hashcodes, and hence is
// identical for structurally equal nodes.
func (p *Expr) Hash() uint64 {
	return p.hash
}

// Equals determines whether this node is structurally equal to another.  This
// is exact structural equality over canonical forms, never semantic
// equivalence beyond what canonicalization already folds.
func (p *Expr) Equals(o *Expr) bool {
	return Equal(p, o)
}

// Equal determines whether two nodes are structurally equal.  Interned nodes
// short-circuit on pointer identity; distinct nodes short-circuit on hash
// mismatch before falling back to a structural comparison.
func Equal(a *Expr, b *Expr) bool {
	switch {
	case a == b:
		return true
	case a == nil || b == nil:
		return false
	case a.hash != b.hash || a.kind != b.kind:
		return false
	case a.name != b.name || a.props != b.props:
		return false
	case len(a.args) != len(b.args):
		return false
	case a.num != nil && a.num.Cmp(b.num) != 0:
		return false
	}
	// Compare operands pairwise
	for i := range a.args {
		if !Equal(a.args[i], b.args[i]) {
			return false
		}
	}
	//
	return true
}

//nolint:revive
func (p *Expr) String() string {
	switch p.kind {
	case Integer, Rational:
		return p.num.RatString()
	case Symbol:
		return p.name
	case Wild:
		return "?" + p.name
	case WildSeq:
		return "?" + p.name + "..."
	case Func:
		return lispOfArgs(p.name, p.args)
	case Add:
		return lispOfArgs("+", p.args)
	case Mul:
		return lispOfArgs("*", p.args)
	case Pow:
		return lispOfArgs("^", p.args)
	default:
		return "?!"
	}
}

// lispOfArgs renders a compound node as a simple s-expression, for example so
// it can be logged.
func lispOfArgs(op string, args []*Expr) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(op)
	//
	for _, arg := range args {
		builder.WriteString(" ")
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
