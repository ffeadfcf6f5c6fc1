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
	"strings"
)

// Compare imposes the canonical total order over expressions, returning a
// negative value if a orders before b, zero if they are structurally equal
// and a positive value otherwise.  Operands of commutative nodes are stored
// sorted under this order, which is what makes canonical forms independent of
// construction order.
//
// The order is: numbers (by exact value) < symbols (by name, then
// properties) < powers < products < sums < function applications (by name,
// then arity) < wildcards.  Within a compound class, nodes are ordered by
// operand count and then operandwise.  Any consistent total order would do;
// this one is fixed so that output is deterministic.
func Compare(a *Expr, b *Expr) int {
	if a == b {
		return 0
	}
	// Compare class ranks first
	if c := int(a.kind.rank()) - int(b.kind.rank()); c != 0 {
		return c
	}
	// Identical class
	switch a.kind {
	case Integer, Rational:
		return a.num.Cmp(b.num)
	case Symbol:
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		//
		return int(a.props) - int(b.props)
	case Wild, WildSeq:
		return strings.Compare(a.name, b.name)
	case Func:
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		//
		return compareArgs(a.args, b.args)
	default:
		return compareArgs(a.args, b.args)
	}
}

// compareArgs compares two operand sequences, shorter sequences ordering
// first and otherwise comparing operandwise.
func compareArgs(lhs []*Expr, rhs []*Expr) int {
	if c := len(lhs) - len(rhs); c != 0 {
		return c
	}
	//
	for i := range lhs {
		if c := Compare(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

// sortArgs sorts an operand sequence in place under the canonical order.
func sortArgs(args []*Expr) {
	sort.SliceStable(args, func(i, j int) bool {
		return Compare(args[i], args[j]) < 0
	})
}

// ByOrder wraps an expression slice as a sort.Interface under the canonical
// order, allowing it to be used with sorted-set operations.
type ByOrder []*Expr

//nolint:revive
func (p ByOrder) Len() int { return len(p) }

//nolint:revive
func (p ByOrder) Less(i, j int) bool { return Compare(p[i], p[j]) < 0 }

//nolint:revive
func (p ByOrder) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
