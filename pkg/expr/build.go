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

	"github.com/consensys/go-symbolic/pkg/util"
)

// This file is the canonical form builder.  All compound construction goes
// through Sum / Product / Power / Function (or the generic Make), which
// normalize their operands at construction time: nested same-kind operands of
// commutative kinds are flattened; numeric operands are folded exactly; like
// terms and like factors are collected; identity elements are removed;
// remaining operands are sorted under the canonical order; and degenerate
// nodes collapse to their sole operand or identity element.  Consequently,
// two mathematically-identical-by-construction expressions are structurally
// identical (and, via the interner, pointer-identical).

// Make is the generic constructor for compound kinds, failing with a
// MalformedExpressionError on arity or kind violations.  Atom kinds and
// function applications have typed constructors (NewInteger, NewSymbol,
// Function, etc) since they carry payloads beyond their operands.
func Make(kind Kind, args []*Expr) (*Expr, error) {
	for i, arg := range args {
		if arg == nil {
			return nil, &MalformedExpressionError{kind, fmt.Sprintf("nil operand %d", i)}
		}
	}
	//
	switch kind {
	case Add:
		return Sum(args...), nil
	case Mul:
		return Product(args...), nil
	case Pow:
		if len(args) != 2 {
			return nil, &MalformedExpressionError{Pow, fmt.Sprintf("expected 2 operands, got %d", len(args))}
		}
		//
		return Power(args[0], args[1]), nil
	case Func:
		return nil, &MalformedExpressionError{Func, "function applications are constructed via Function"}
	default:
		return nil, &MalformedExpressionError{kind, "atom kinds are constructed via their typed constructors"}
	}
}

// NewSymbol constructs the canonical symbol atom with a given name.
func NewSymbol(name string) *Expr {
	return NewSymbolWith(name, 0)
}

// NewSymbolWith constructs the canonical symbol atom with a given name and
// property set.  Properties are closed under their immediate implications
// (e.g. positive implies non-zero).  Symbols differing only in their
// properties are distinct expressions.
func NewSymbolWith(name string, props Properties) *Expr {
	props = props.normalise()
	//
	return intern(&Expr{
		kind:  Symbol,
		name:  name,
		props: props,
		hash:  computeHash(Symbol, name, nil, props, nil),
	})
}

// NewWild constructs a pattern wildcard which binds to a single expression
// during matching.
func NewWild(name string) *Expr {
	return intern(&Expr{
		kind: Wild,
		name: name,
		hash: computeHash(Wild, name, nil, 0, nil),
	})
}

// NewWildSeq constructs a pattern wildcard which binds to the remaining
// operands of a commutative node during matching.
func NewWildSeq(name string) *Expr {
	return intern(&Expr{
		kind: WildSeq,
		name: name,
		hash: computeHash(WildSeq, name, nil, 0, nil),
	})
}

// ============================================================================
// Sum
// ============================================================================

// Sum constructs the canonical sum of zero or more expressions.
func Sum(terms ...*Expr) *Expr {
	// Flatten any nested sums
	terms = util.Flatten(terms, flattenAdd)
	//
	var (
		acc    = new(big.Rat)
		groups []termGroup
	)
	// Fold numeric terms and group the rest by their non-numeric part
	for _, t := range terms {
		if t.IsNumeric() {
			acc.Add(acc, t.num)
			continue
		}
		//
		coeff, rest := splitCoefficient(t)
		groups = mergeTermGroup(groups, rest, coeff)
	}
	// Rebuild collected terms
	nterms := make([]*Expr, 0, len(groups)+1)
	//
	for _, g := range groups {
		switch {
		case g.coeff.Sign() == 0:
			// Terms cancelled out
		case g.coeff.Cmp(ratOne) == 0:
			nterms = append(nterms, g.key)
		default:
			nterms = append(nterms, Product(makeRat(g.coeff), g.key))
		}
	}
	//
	if acc.Sign() != 0 {
		nterms = append(nterms, makeRat(acc))
	}
	//
	sortArgs(nterms)
	// Final simplifications
	switch len(nterms) {
	case 0:
		return Zero()
	case 1:
		return nterms[0]
	default:
		return intern(&Expr{
			kind: Add,
			args: nterms,
			hash: computeHash(Add, "", nil, 0, nterms),
		})
	}
}

func flattenAdd(term *Expr) []*Expr {
	if term.kind == Add {
		return term.args
	}
	//
	return nil
}

// termGroup accumulates the numeric coefficients of structurally equal terms
// within a sum under construction.
type termGroup struct {
	key   *Expr
	coeff *big.Rat
}

func mergeTermGroup(groups []termGroup, key *Expr, coeff *big.Rat) []termGroup {
	for i, g := range groups {
		if Equal(g.key, key) {
			groups[i].coeff = new(big.Rat).Add(g.coeff, coeff)
			return groups
		}
	}
	//
	return append(groups, termGroup{key, coeff})
}

// splitCoefficient decomposes a (non-numeric) term into its numeric
// coefficient and remaining part.  Since products hold their operands in
// canonical order, a numeric coefficient is always the first operand.
func splitCoefficient(term *Expr) (*big.Rat, *Expr) {
	if term.kind == Mul && term.args[0].IsNumeric() {
		return term.args[0].Rat(), mulOfCanonical(term.args[1:])
	}
	//
	return new(big.Rat).Set(ratOne), term
}

// mulOfCanonical rebuilds a product node from a strict subset of an already
// canonical product's operands, without re-running normalization (a suffix of
// a canonical operand list is itself canonical).
func mulOfCanonical(args []*Expr) *Expr {
	if len(args) == 1 {
		return args[0]
	}
	//
	nargs := make([]*Expr, len(args))
	copy(nargs, args)
	//
	return intern(&Expr{
		kind: Mul,
		args: nargs,
		hash: computeHash(Mul, "", nil, 0, nargs),
	})
}

// ============================================================================
// Product
// ============================================================================

// Product constructs the canonical product of zero or more expressions.
func Product(factors ...*Expr) *Expr {
	// Flatten any nested products
	factors = util.Flatten(factors, flattenMul)
	//
	var (
		acc  = new(big.Rat).Set(ratOne)
		rest = make([]*Expr, 0, len(factors))
	)
	// Fold numeric factors
	for _, f := range factors {
		if f.IsNumeric() {
			acc.Mul(acc, f.num)
		} else {
			rest = append(rest, f)
		}
	}
	// Zero annihilates the whole product
	if acc.Sign() == 0 {
		return Zero()
	}
	// Collect like factors by base, accumulating exponents
	groups, collected := groupFactors(rest)
	//
	if collected {
		// Some factors merged; rebuild them and renormalize, since a merged
		// power may fold into a numeric value, an identity element, or even
		// a nested product.
		nfactors := make([]*Expr, 0, len(groups)+1)
		//
		for _, g := range groups {
			nfactors = append(nfactors, Power(g.base, Sum(g.exps...)))
		}
		//
		nfactors = append(nfactors, makeRat(acc))
		//
		return Product(nfactors...)
	}
	// Nothing merged: finish canonicalization
	if acc.Cmp(ratOne) != 0 {
		rest = append(rest, makeRat(acc))
	}
	//
	sortArgs(rest)
	// Final simplifications
	switch len(rest) {
	case 0:
		return One()
	case 1:
		return rest[0]
	default:
		return intern(&Expr{
			kind: Mul,
			args: rest,
			hash: computeHash(Mul, "", nil, 0, rest),
		})
	}
}

func flattenMul(factor *Expr) []*Expr {
	if factor.kind == Mul {
		return factor.args
	}
	//
	return nil
}

// factorGroup accumulates the exponents of factors sharing a common base
// within a product under construction.
type factorGroup struct {
	base *Expr
	exps []*Expr
}

// groupFactors groups product operands by their base, reporting whether any
// two operands actually shared a base (if not, the operands are already
// collected and the grouping is discarded).
func groupFactors(factors []*Expr) ([]factorGroup, bool) {
	var (
		groups    []factorGroup
		collected = false
	)
	//
	for _, f := range factors {
		base, exp := splitExponent(f)
		merged := false
		//
		for i, g := range groups {
			if Equal(g.base, base) {
				groups[i].exps = append(g.exps, exp)
				merged = true
				collected = true
				//
				break
			}
		}
		//
		if !merged {
			groups = append(groups, factorGroup{base, []*Expr{exp}})
		}
	}
	//
	return groups, collected
}

// splitExponent decomposes a factor into base and exponent.
func splitExponent(factor *Expr) (*Expr, *Expr) {
	if factor.kind == Pow {
		return factor.args[0], factor.args[1]
	}
	//
	return factor, One()
}

// ============================================================================
// Power
// ============================================================================

// Power constructs the canonical power of a base raised to an exponent.
// Numeric bases raised to numeric integral exponents fold to their exact
// value; rational exponents fold only when the base is an exact perfect
// power; anything else is retained unevaluated.  As a convention, 0^0 folds
// to 1 (the empty product).
func Power(base *Expr, exp *Expr) *Expr {
	switch {
	case isZero(exp):
		// Includes 0^0 = 1
		return One()
	case isOne(exp):
		return base
	case isOne(base):
		// 1^x = 1 for any exponent
		return One()
	case base.IsNumeric() && exp.kind == Integer:
		if val, ok := ratPow(base.num, exp.num.Num()); ok {
			return makeRat(val)
		}
	case base.IsNumeric() && exp.kind == Rational:
		// Attempt an exact root, e.g. 4^(3/2) ==> 8
		if root, ok := ratRoot(base.num, exp.num.Denom()); ok {
			if val, ok := ratPow(root, exp.num.Num()); ok {
				return makeRat(val)
			}
		}
	case base.kind == Pow && exp.kind == Integer:
		// (x^a)^n ==> x^(a*n) for integral n
		return Power(base.args[0], Product(base.args[1], exp))
	}
	//
	args := []*Expr{base, exp}
	//
	return intern(&Expr{
		kind: Pow,
		args: args,
		hash: computeHash(Pow, "", nil, 0, args),
	})
}

// ============================================================================
// Function application
// ============================================================================

// Function constructs the canonical application of a named function to the
// given arguments.  For registered functions the arity is validated, failing
// with a MalformedExpressionError on mismatch; unregistered names are
// accepted with any non-zero arity.  Square roots canonicalize to rational
// powers (sqrt(x) ==> x^(1/2)).
func Function(name string, args ...*Expr) (*Expr, error) {
	if arity, ok := FunctionArity(name); ok && arity != uint(len(args)) {
		msg := fmt.Sprintf("%s expects %d argument(s), got %d", name, arity, len(args))
		return nil, &MalformedExpressionError{Func, msg}
	} else if !ok && len(args) == 0 {
		return nil, &MalformedExpressionError{Func, fmt.Sprintf("%s applied to no arguments", name)}
	}
	//
	for i, arg := range args {
		if arg == nil {
			return nil, &MalformedExpressionError{Func, fmt.Sprintf("nil operand %d", i)}
		}
	}
	// Square roots are represented as rational powers
	if name == "sqrt" {
		half, _ := NewRational(1, 2)
		return Power(args[0], half), nil
	}
	//
	nargs := make([]*Expr, len(args))
	copy(nargs, args)
	//
	return intern(&Expr{
		kind: Func,
		name: name,
		args: nargs,
		hash: computeHash(Func, name, nil, 0, nargs),
	}), nil
}
