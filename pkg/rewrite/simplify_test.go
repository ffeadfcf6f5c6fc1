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
package rewrite

import (
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/match"
)

func Test_Simplify_01(t *testing.T) {
	// f(f(?x)) collapses layer by layer
	var (
		rs = MustRuleSet(Rule{
			Name:        "unwrap",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.NewWild("x"),
		})
		subject = fn(t, "f", fn(t, "f", fn(t, "f", sym("y"))))
	)
	//
	checkSimplifies(t, NewSimplifier(rs), subject, sym("y"))
}

func Test_Simplify_02(t *testing.T) {
	// Rewriting inner operands renormalizes enclosing nodes
	var (
		rs = MustRuleSet(Rule{
			Name:        "g-is-zero",
			Pattern:     fn(t, "g", expr.NewWild("x")),
			Replacement: expr.Zero(),
		})
		// y + g(y) ==> y + 0 ==> y
		subject = expr.Sum(sym("y"), fn(t, "g", sym("y")))
	)
	//
	checkSimplifies(t, NewSimplifier(rs), subject, sym("y"))
}

func Test_Simplify_03(t *testing.T) {
	// An expression no rule touches is already stable
	var (
		rs      = MustRuleSet()
		subject = expr.Sum(sym("x"), expr.Power(sym("y"), expr.NewInteger(2)))
	)
	//
	checkSimplifies(t, NewSimplifier(rs), subject, subject)
}

func Test_Simplify_04(t *testing.T) {
	// A self-inverse rule is caught by the cycle guard, not looped forever
	var (
		rs = MustRuleSet(Rule{
			Name:        "swap",
			Pattern:     expr.Sum(expr.NewWild("a"), expr.NewWild("b")),
			Replacement: expr.Sum(expr.NewWild("b"), expr.NewWild("a")),
		})
		subject = expr.Sum(sym("x"), sym("y"))
	)
	//
	checkSimplifies(t, NewSimplifier(rs), subject, subject)
}

func Test_Simplify_05(t *testing.T) {
	// A productive rule still terminates under the iteration budget
	var (
		rs = MustRuleSet(Rule{
			Name:        "wrap",
			Pattern:     fn(t, "g", expr.NewWild("x")),
			Replacement: fn(t, "g", fn(t, "g", expr.NewWild("x"))),
		})
		simplifier = NewSimplifier(rs, WithMaxIterations(4))
	)
	//
	_, status := simplifier.Simplify(fn(t, "g", sym("x")))
	//
	if status != BudgetExceeded {
		t.Errorf("expected budget exhaustion, got %s", status)
	}
}

func Test_Simplify_06(t *testing.T) {
	// A zero iteration budget returns the input untouched
	var (
		rs = MustRuleSet(Rule{
			Name:        "unwrap",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.NewWild("x"),
		})
		simplifier = NewSimplifier(rs, WithMaxIterations(0))
		subject    = fn(t, "f", sym("y"))
	)
	//
	out, status := simplifier.Simplify(subject)
	//
	if out != subject || status != BudgetExceeded {
		t.Errorf("expected untouched input, got %s (%s)", out, status)
	}
}

func Test_Simplify_07(t *testing.T) {
	// Stable results are memoized: a second request short-circuits
	var (
		rs = MustRuleSet(Rule{
			Name:        "unwrap",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.NewWild("x"),
		})
		simplifier = NewSimplifier(rs)
		subject    = fn(t, "f", sym("y"))
	)
	//
	first, status := simplifier.Simplify(subject)
	if status != Stable {
		t.Fatalf("unexpected status %s", status)
	}
	//
	second, status := simplifier.Simplify(subject)
	//
	if second != first || status != Stable {
		t.Errorf("expected memoized result, got %s (%s)", second, status)
	}
}

func Test_Simplify_08(t *testing.T) {
	// Transforms may decline, in which case later rules are attempted
	var (
		declined = Rule{
			Name:    "declined",
			Pattern: fn(t, "f", expr.NewWild("x")),
			Transform: func(*expr.Expr, match.Bindings) (*expr.Expr, bool) {
				return nil, false
			},
		}
		unwrap = Rule{
			Name:        "unwrap",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.NewWild("x"),
		}
		rs = MustRuleSet(declined, unwrap)
	)
	//
	checkSimplifies(t, NewSimplifier(rs), fn(t, "f", sym("y")), sym("y"))
}

func Test_Simplify_09(t *testing.T) {
	// Rules are attempted in priority order
	var (
		toOne = Rule{
			Name:        "to-one",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.One(),
		}
		toZero = Rule{
			Name:        "to-zero",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.Zero(),
		}
		rs = MustRuleSet(toOne, toZero)
	)
	//
	checkSimplifies(t, NewSimplifier(rs), fn(t, "f", sym("y")), expr.One())
}

func Test_Simplify_10(t *testing.T) {
	// Constraints gate rule application
	var (
		rs = MustRuleSet(Rule{
			Name:        "numeric-only",
			Pattern:     fn(t, "f", expr.NewWild("x")),
			Replacement: expr.NewWild("x"),
			Constraints: match.Constraints{"x": match.IsNumeric},
		})
		simplifier = NewSimplifier(rs)
	)
	//
	checkSimplifies(t, simplifier, fn(t, "f", expr.NewInteger(3)), expr.NewInteger(3))
	// Symbolic argument stays put
	subject := fn(t, "f", sym("y"))
	checkSimplifies(t, simplifier, subject, subject)
}

// ============================================================================
// Test Helpers
// ============================================================================

func sym(name string) *expr.Expr {
	return expr.NewSymbol(name)
}

func fn(t *testing.T, name string, args ...*expr.Expr) *expr.Expr {
	t.Helper()
	//
	e, err := expr.Function(name, args...)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return e
}

// checkSimplifies checks that simplification reaches a given stable result.
func checkSimplifies(t *testing.T, simplifier *Simplifier, subject *expr.Expr, want *expr.Expr) {
	t.Helper()
	//
	out, status := simplifier.Simplify(subject)
	//
	if status != Stable {
		t.Errorf("unexpected status %s for %s", status, subject)
	} else if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}
