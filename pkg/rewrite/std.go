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
	"math/big"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/match"
)

// StdRules returns the standard algebraic rule set.  Structural identities
// (flattening, constant folding, collection of like terms and factors) are
// already applied by the canonical form builder, so these rules cover what
// the builder cannot: identities of named functions.
func StdRules() *RuleSet {
	var (
		x    = expr.NewWild("x")
		zero = expr.Zero()
		one  = expr.One()
	)
	//
	return MustRuleSet(
		Rule{
			Name:        "sin-zero",
			Pattern:     mustFunc("sin", zero),
			Replacement: zero,
		},
		Rule{
			Name:        "cos-zero",
			Pattern:     mustFunc("cos", zero),
			Replacement: one,
		},
		Rule{
			Name:        "tan-zero",
			Pattern:     mustFunc("tan", zero),
			Replacement: zero,
		},
		Rule{
			Name:        "exp-zero",
			Pattern:     mustFunc("exp", zero),
			Replacement: one,
		},
		Rule{
			Name:        "log-one",
			Pattern:     mustFunc("log", one),
			Replacement: zero,
		},
		Rule{
			Name:        "log-exp",
			Pattern:     mustFunc("log", mustFunc("exp", x)),
			Replacement: x,
		},
		Rule{
			Name:        "exp-log",
			Pattern:     mustFunc("exp", mustFunc("log", x)),
			Replacement: x,
			Constraints: match.Constraints{"x": match.IsPositive},
		},
		Rule{
			Name:      "abs-fold",
			Pattern:   mustFunc("abs", x),
			Transform: absFold,
			Constraints: match.Constraints{
				"x": match.IsNumeric,
			},
		},
		Rule{
			Name:        "abs-positive",
			Pattern:     mustFunc("abs", x),
			Replacement: x,
			Constraints: match.Constraints{"x": match.IsPositive},
		},
		Rule{
			Name:        "abs-negative",
			Pattern:     mustFunc("abs", x),
			Replacement: expr.Product(expr.NewInteger(-1), x),
			Constraints: match.Constraints{"x": match.IsNegative},
		},
		Rule{
			Name:        "sqrt-square",
			Pattern:     expr.Power(expr.Power(x, expr.NewInteger(2)), half()),
			Replacement: mustFunc("abs", x),
		},
		Rule{
			Name:      "sin-odd",
			Pattern:   mustFunc("sin", x),
			Transform: oddFunction("sin"),
		},
		Rule{
			Name:      "cos-even",
			Pattern:   mustFunc("cos", x),
			Transform: evenFunction("cos"),
		},
	)
}

// absFold exactly evaluates the absolute value of a numeric argument.
func absFold(_ *expr.Expr, bindings match.Bindings) (*expr.Expr, bool) {
	arg, _ := bindings.Get("x")
	//
	val := arg.Rat()
	if val.Sign() < 0 {
		val.Neg(val)
	}
	//
	return expr.NewRationalFromBig(val), true
}

// oddFunction moves a negative leading coefficient outside an odd function,
// e.g. sin(-2*y) ==> -sin(2*y).
func oddFunction(name string) Transform {
	return func(_ *expr.Expr, bindings match.Bindings) (*expr.Expr, bool) {
		arg, _ := bindings.Get("x")
		//
		negated, ok := negateNegative(arg)
		if !ok {
			return nil, false
		}
		//
		return expr.Product(expr.NewInteger(-1), mustFunc(name, negated)), true
	}
}

// evenFunction drops a negative leading coefficient inside an even function,
// e.g. cos(-y) ==> cos(y).
func evenFunction(name string) Transform {
	return func(_ *expr.Expr, bindings match.Bindings) (*expr.Expr, bool) {
		arg, _ := bindings.Get("x")
		//
		negated, ok := negateNegative(arg)
		if !ok {
			return nil, false
		}
		//
		return mustFunc(name, negated), true
	}
}

// negateNegative negates an expression with a negative leading numeric
// coefficient, returning false for anything else.
func negateNegative(e *expr.Expr) (*expr.Expr, bool) {
	switch {
	case e.IsNumeric() && e.Rat().Sign() < 0:
		return expr.NewRationalFromBig(new(big.Rat).Neg(e.Rat())), true
	case e.Kind() == expr.Mul && e.Arg(0).IsNumeric() && e.Arg(0).Rat().Sign() < 0:
		return expr.Product(expr.NewInteger(-1), e), true
	default:
		return nil, false
	}
}

func half() *expr.Expr {
	h, err := expr.NewRational(1, 2)
	//
	if err != nil {
		panic(err)
	}
	//
	return h
}

func mustFunc(name string, args ...*expr.Expr) *expr.Expr {
	e, err := expr.Function(name, args...)
	//
	if err != nil {
		panic(err)
	}
	//
	return e
}
