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
	"sort"

	"github.com/xtgo/set"
)

// Substitute produces the canonical expression obtained by replacing every
// free occurrence of a symbol with a replacement expression.  Since this core
// has no variable-binding operators, every occurrence is free; collaborators
// which introduce binders declare their own bound-symbol exclusions.
// Expressions not containing the symbol are returned unchanged (same
// pointer), so shared subtrees are neither rebuilt nor re-examined by their
// other parents.
func Substitute(e *Expr, symbol *Expr, replacement *Expr) *Expr {
	return Replace(e, symbol, replacement)
}

// Replace produces the canonical expression obtained by replacing every
// occurrence of an arbitrary target subexpression.  Affected ancestors are
// rebuilt bottom-up through the canonical form builder; unaffected
// subexpressions are returned unchanged (same pointer).
func Replace(e *Expr, target *Expr, replacement *Expr) *Expr {
	if Equal(e, target) {
		return replacement
	}
	//
	if e.kind.IsAtom() {
		return e
	}
	// Rebuild operands
	var (
		nargs   = make([]*Expr, len(e.args))
		changed = false
	)
	//
	for i, arg := range e.args {
		nargs[i] = Replace(arg, target, replacement)
		changed = changed || nargs[i] != arg
	}
	//
	if !changed {
		return e
	}
	//
	return Rebuild(e, nargs)
}

// Contains checks whether a given target occurs anywhere within an
// expression.
func Contains(e *Expr, target *Expr) bool {
	if Equal(e, target) {
		return true
	}
	//
	for _, arg := range e.args {
		if Contains(arg, target) {
			return true
		}
	}
	//
	return false
}

// FreeSymbols returns the set of symbol atoms reachable from a node, sorted
// (and deduplicated) under the canonical order.
func FreeSymbols(e *Expr) []*Expr {
	symbols := collectSymbols(e, nil)
	// Sort and deduplicate
	sort.Sort(ByOrder(symbols))
	n := set.Uniq(ByOrder(symbols))
	//
	return symbols[:n]
}

func collectSymbols(e *Expr, symbols []*Expr) []*Expr {
	if e.kind == Symbol {
		return append(symbols, e)
	}
	//
	for _, arg := range e.args {
		symbols = collectSymbols(arg, symbols)
	}
	//
	return symbols
}

// Walk visits an expression and its subexpressions in pre-order.  Returning
// false from the visitor prunes the subexpressions of the current node.
func Walk(e *Expr, visit func(*Expr) bool) {
	if !visit(e) {
		return
	}
	//
	for _, arg := range e.args {
		Walk(arg, visit)
	}
}

// Map rebuilds an expression bottom-up, applying a transformation to every
// node after its operands have been transformed and the node rebuilt through
// the canonical form builder.  Transformations returning their argument
// unchanged incur no rebuild.
func Map(e *Expr, fn func(*Expr) *Expr) *Expr {
	if e.kind.IsAtom() {
		return fn(e)
	}
	// Transform operands first
	var (
		nargs   = make([]*Expr, len(e.args))
		changed = false
	)
	//
	for i, arg := range e.args {
		nargs[i] = Map(arg, fn)
		changed = changed || nargs[i] != arg
	}
	//
	if changed {
		e = Rebuild(e, nargs)
	}
	//
	return fn(e)
}

// Rebuild reconstructs a compound node with fresh operands through the
// canonical form builder, so that canonicalization is reapplied after any
// operand change.  Atoms are returned unchanged.
func Rebuild(e *Expr, nargs []*Expr) *Expr {
	switch e.kind {
	case Add:
		return Sum(nargs...)
	case Mul:
		return Product(nargs...)
	case Pow:
		return Power(nargs[0], nargs[1])
	case Func:
		// Arity is unchanged, hence this cannot fail
		nexpr, err := Function(e.name, nargs...)
		if err != nil {
			panic(err)
		}
		//
		return nexpr
	default:
		return e
	}
}
