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
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// ============================================================================
// Atoms and wildcards
// ============================================================================

func Test_Match_01(t *testing.T) {
	// A wildcard matches anything, binding it
	subject := expr.Sum(sym("x"), sym("y"))
	//
	bind, ok := MatchFirst(expr.NewWild("a"), subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "a", subject)
}

func Test_Match_02(t *testing.T) {
	// Atoms match themselves only
	if !Matches(sym("x"), sym("x"), nil) {
		t.Error("expected x to match x")
	} else if Matches(sym("x"), sym("y"), nil) {
		t.Error("expected x not to match y")
	} else if !Matches(expr.NewInteger(3), expr.NewInteger(3), nil) {
		t.Error("expected 3 to match 3")
	}
}

func Test_Match_03(t *testing.T) {
	// A bound wildcard must rebind consistently
	pattern, _ := expr.Function("f", expr.NewWild("a"), expr.NewWild("a"))
	same, _ := expr.Function("f", sym("x"), sym("x"))
	diff, _ := expr.Function("f", sym("x"), sym("y"))
	//
	if !Matches(pattern, same, nil) {
		t.Error("expected f(?a, ?a) to match f(x, x)")
	} else if Matches(pattern, diff, nil) {
		t.Error("expected f(?a, ?a) not to match f(x, y)")
	}
}

// ============================================================================
// Positional operators
// ============================================================================

func Test_Match_04(t *testing.T) {
	// Function applications match positionally
	pattern, _ := expr.Function("sin", expr.NewWild("a"))
	subject, _ := expr.Function("sin", expr.Sum(sym("x"), sym("y")))
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "a", expr.Sum(sym("x"), sym("y")))
}

func Test_Match_05(t *testing.T) {
	// Function names must agree
	pattern, _ := expr.Function("sin", expr.NewWild("a"))
	subject, _ := expr.Function("cos", sym("x"))
	//
	if Matches(pattern, subject, nil) {
		t.Error("expected sin pattern not to match cos application")
	}
}

func Test_Match_06(t *testing.T) {
	// Powers match base and exponent positionally
	pattern := expr.Power(expr.NewWild("b"), expr.NewInteger(2))
	subject := expr.Power(sym("x"), expr.NewInteger(2))
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "b", sym("x"))
}

// ============================================================================
// Commutative operators
// ============================================================================

func Test_Match_07(t *testing.T) {
	// ?a + ?b against x + y + z has six distinct environments (three
	// two-way splits, in either orientation)
	pattern := expr.Sum(expr.NewWild("a"), expr.NewWild("b"))
	subject := expr.Sum(sym("x"), sym("y"), sym("z"))
	//
	count := iter.Count[Bindings](Match(pattern, subject, NewBindings(), nil))
	//
	if count != 6 {
		t.Errorf("expected 6 environments, got %d", count)
	}
}

func Test_Match_08(t *testing.T) {
	// ?a + ??rest against x + y + z: any non-empty subset for ?a (7
	// environments, since ??rest may be empty)
	pattern := expr.Sum(expr.NewWild("a"), expr.NewWildSeq("rest"))
	subject := expr.Sum(sym("x"), sym("y"), sym("z"))
	//
	count := iter.Count[Bindings](Match(pattern, subject, NewBindings(), nil))
	//
	if count != 7 {
		t.Errorf("expected 7 environments, got %d", count)
	}
}

func Test_Match_09(t *testing.T) {
	// An empty remainder binds a sequence wildcard to the identity element
	pattern := expr.Sum(expr.NewWild("a"), expr.NewWild("b"), expr.NewWildSeq("rest"))
	subject := expr.Sum(sym("x"), sym("y"))
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "rest", expr.Zero())
}

func Test_Match_10(t *testing.T) {
	// ... and for products, to one
	pattern := expr.Product(expr.NewWild("a"), expr.NewWild("b"), expr.NewWildSeq("rest"))
	subject := expr.Product(sym("x"), sym("y"))
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "rest", expr.One())
}

func Test_Match_11(t *testing.T) {
	// Non-wildcard operands anchor the assignment
	pattern := expr.Sum(sym("x"), expr.NewWild("a"))
	subject := expr.Sum(sym("x"), sym("y"), sym("z"))
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "a", expr.Sum(sym("y"), sym("z")))
}

func Test_Match_12(t *testing.T) {
	// Every operand must be consumed without a sequence wildcard
	pattern := expr.Sum(sym("x"), expr.NewWild("a"))
	subject := expr.Sum(sym("y"), sym("z"), sym("w"))
	//
	if Matches(pattern, subject, nil) {
		t.Error("expected anchor x to prevent any match")
	}
}

func Test_Match_13(t *testing.T) {
	// A second sequence wildcard is meaningless, hence rejected
	pattern := expr.Sum(expr.NewWildSeq("r1"), expr.NewWildSeq("r2"))
	subject := expr.Sum(sym("x"), sym("y"))
	//
	if Matches(pattern, subject, nil) {
		t.Error("expected two sequence wildcards to be rejected")
	}
}

func Test_Match_14(t *testing.T) {
	// Shared wildcards must agree across operands
	pattern := expr.Sum(
		expr.Product(expr.NewInteger(2), expr.NewWild("a")),
		expr.Product(expr.NewInteger(3), expr.NewWild("a")),
	)
	subject := expr.Sum(
		expr.Product(expr.NewInteger(2), sym("x")),
		expr.Product(expr.NewInteger(3), sym("x")),
	)
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), nil)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "a", sym("x"))
}

// ============================================================================
// Constraints
// ============================================================================

func Test_Match_15(t *testing.T) {
	// Constraints restrict what a wildcard can bind
	var (
		pattern = expr.Sum(expr.NewWild("n"), expr.NewWildSeq("rest"))
		subject = expr.Sum(expr.NewInteger(3), sym("x"))
		cs      = Constraints{"n": IsNumeric}
	)
	//
	bind, ok := MatchFirst(pattern, subject, NewBindings(), cs)
	//
	if !ok {
		t.Fatal("expected match")
	}
	//
	checkBound(t, bind, "n", expr.NewInteger(3))
}

func Test_Match_16(t *testing.T) {
	// Unsatisfiable constraints yield no environment
	var (
		pattern = expr.NewWild("n")
		cs      = Constraints{"n": IsNumeric}
	)
	//
	if Matches(pattern, sym("x"), cs) {
		t.Error("expected constraint to reject symbol")
	}
}

// ============================================================================
// Bindings
// ============================================================================

func Test_Bindings_01(t *testing.T) {
	// Binding is persistent: the original environment is unchanged
	var (
		b0 = NewBindings()
		b1 = b0.Bind("a", sym("x"))
		b2 = b1.Bind("b", sym("y"))
	)
	//
	if b0.Size() != 0 || b1.Size() != 1 || b2.Size() != 2 {
		t.Errorf("unexpected sizes: %d, %d, %d", b0.Size(), b1.Size(), b2.Size())
	}
	//
	if _, ok := b1.Get("b"); ok {
		t.Error("binding leaked into parent environment")
	}
}

func Test_Bindings_02(t *testing.T) {
	// The zero value is an empty environment
	var bind Bindings
	//
	if bind.Size() != 0 {
		t.Errorf("unexpected size %d", bind.Size())
	}
	//
	if _, ok := bind.Get("a"); ok {
		t.Error("unexpected binding in empty environment")
	}
}

func Test_Bindings_03(t *testing.T) {
	b1 := NewBindings().Bind("a", sym("x")).Bind("b", sym("y"))
	b2 := NewBindings().Bind("b", sym("y")).Bind("a", sym("x"))
	//
	if !b1.Equals(b2) {
		t.Errorf("expected %s to equal %s", b1, b2)
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func sym(name string) *expr.Expr {
	return expr.NewSymbol(name)
}

// checkBound checks a given name is bound to a given expression.
func checkBound(t *testing.T, bind Bindings, name string, want *expr.Expr) {
	t.Helper()
	//
	if got, ok := bind.Get(name); !ok {
		t.Errorf("expected %s to be bound", name)
	} else if !expr.Equal(got, want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}
