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
package match

import (
	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// Match lazily enumerates every binding environment under which a pattern
// matches a subject expression, extending a given input environment.  The
// sequence is empty when the pattern does not match.  A pattern may match a
// commutative subject in several distinct ways, in which case every
// environment is enumerated exactly once (operands of a canonical commutative
// node are pairwise distinct, so no assignment produces a duplicate).
func Match(pattern *expr.Expr, subject *expr.Expr, in Bindings, cs Constraints) iter.Enumerator[Bindings] {
	switch pattern.Kind() {
	case expr.Wild, expr.WildSeq:
		// A bare wildcard binds the whole subject
		if out, ok := bindOne(pattern.Name(), subject, in, cs); ok {
			return iter.Unit(out)
		}
		//
		return iter.Empty[Bindings]()
	case expr.Integer, expr.Rational, expr.Symbol:
		if expr.Equal(pattern, subject) {
			return iter.Unit(in)
		}
		//
		return iter.Empty[Bindings]()
	}
	// Compound patterns require an identical subject kind
	if pattern.Kind() != subject.Kind() {
		return iter.Empty[Bindings]()
	}
	//
	if pattern.Kind().IsCommutative() {
		return matchCommutative(pattern, subject, in, cs)
	}
	//
	return matchPositional(pattern, subject, in, cs)
}

// MatchFirst returns the first binding environment under which a pattern
// matches a subject, stopping enumeration immediately upon success.
func MatchFirst(pattern *expr.Expr, subject *expr.Expr, in Bindings, cs Constraints) (Bindings, bool) {
	return iter.First(Match(pattern, subject, in, cs))
}

// Matches checks whether a pattern matches a subject at all.
func Matches(pattern *expr.Expr, subject *expr.Expr, cs Constraints) bool {
	_, ok := MatchFirst(pattern, subject, Bindings{}, cs)
	return ok
}

// bindOne attempts to bind a wildcard name to a candidate expression,
// checking any attached predicate and, for names already bound, requiring
// structural equality with the previous binding.
func bindOne(name string, candidate *expr.Expr, in Bindings, cs Constraints) (Bindings, bool) {
	if predicate, ok := cs[name]; ok && !predicate(candidate) {
		return in, false
	}
	// Rebinding requires structural equality
	if previous, ok := in.Get(name); ok {
		return in, expr.Equal(previous, candidate)
	}
	//
	return in.Bind(name, candidate), true
}

// matchPositional matches compound patterns of non-commutative kinds (powers
// and function applications) operand-by-operand, in order.
func matchPositional(pattern *expr.Expr, subject *expr.Expr, in Bindings, cs Constraints) iter.Enumerator[Bindings] {
	if pattern.Name() != subject.Name() || pattern.Arity() != subject.Arity() {
		return iter.Empty[Bindings]()
	}
	//
	steps := make([]step[Bindings], pattern.Arity())
	//
	for i := range steps {
		var (
			pat = pattern.Arg(uint(i))
			sub = subject.Arg(uint(i))
		)
		//
		steps[i] = func(b Bindings) iter.Enumerator[Bindings] {
			return Match(pat, sub, b, cs)
		}
	}
	//
	return newChain(in, steps)
}
