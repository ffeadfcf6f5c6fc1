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
	"math/big"
)

// maxFoldBits bounds the exponents which constant folding is prepared to
// expand.  Larger exponents are retained symbolically, since folding them
// would materialize enormous integers.
const maxFoldBits = 16

// NewInteger constructs the canonical integer atom for a given value.
func NewInteger(value int64) *Expr {
	return makeRat(new(big.Rat).SetInt64(value))
}

// NewIntegerFromBig constructs the canonical integer atom for a given
// arbitrary precision value.
func NewIntegerFromBig(value *big.Int) *Expr {
	return makeRat(new(big.Rat).SetInt(value))
}

// NewRational constructs the canonical rational atom num/den.  This fails
// with a MalformedExpressionError when den is zero.  A rational with unit
// denominator normalizes to an integer atom.
func NewRational(num int64, den int64) (*Expr, error) {
	if den == 0 {
		return nil, &MalformedExpressionError{Rational, "zero denominator"}
	}
	//
	return makeRat(new(big.Rat).SetFrac64(num, den)), nil
}

// NewRationalFromBig constructs the canonical numeric atom for a given exact
// rational value.
func NewRationalFromBig(value *big.Rat) *Expr {
	return makeRat(new(big.Rat).Set(value))
}

// Zero returns the canonical additive identity.
func Zero() *Expr { return NewInteger(0) }

// One returns the canonical multiplicative identity.
func One() *Expr { return NewInteger(1) }

// makeRat constructs (and interns) the canonical numeric atom for an exact
// rational value.  The caller relinquishes ownership of the value.
func makeRat(value *big.Rat) *Expr {
	kind := Rational
	if value.IsInt() {
		kind = Integer
	}
	//
	return intern(&Expr{
		kind: kind,
		num:  value,
		hash: computeHash(kind, "", value, 0, nil),
	})
}

// isZero checks whether an expression is the numeric atom zero.
func isZero(e *Expr) bool {
	return e.kind == Integer && e.num.Sign() == 0
}

// isOne checks whether an expression is the numeric atom one.
func isOne(e *Expr) bool {
	return e.kind == Integer && e.num.Sign() > 0 && e.num.Cmp(ratOne) == 0
}

var ratOne = big.NewRat(1, 1)

// ratPow raises an exact rational to an integral power, returning false when
// the power is too large to fold or the result is undefined (i.e. a negative
// power of zero).
func ratPow(base *big.Rat, exp *big.Int) (*big.Rat, bool) {
	if exp.BitLen() > maxFoldBits {
		return nil, false
	}
	//
	var (
		n        = exp.Int64()
		negative = n < 0
	)
	//
	if negative {
		if base.Sign() == 0 {
			// 0^-n is undefined
			return nil, false
		}
		//
		n = -n
	}
	//
	var (
		num = new(big.Int).Exp(base.Num(), big.NewInt(n), nil)
		den = new(big.Int).Exp(base.Denom(), big.NewInt(n), nil)
		res = new(big.Rat).SetFrac(num, den)
	)
	//
	if negative {
		res.Inv(res)
	}
	//
	return res, true
}

// ratRoot attempts to take an exact k-th root (k > 0) of a rational value.
// This succeeds only when both numerator and denominator are perfect k-th
// powers (negative values additionally require k odd).  Inexact roots are
// simply retained unevaluated by the caller.
func ratRoot(value *big.Rat, k *big.Int) (*big.Rat, bool) {
	if k.BitLen() > maxFoldBits || k.Sign() <= 0 {
		return nil, false
	}
	//
	n := k.Uint64()
	//
	num, ok := intRoot(value.Num(), n)
	if !ok {
		return nil, false
	}
	//
	den, ok := intRoot(value.Denom(), n)
	if !ok {
		return nil, false
	}
	//
	return new(big.Rat).SetFrac(num, den), true
}

// intRoot computes the exact n-th root of an integer, if one exists.
func intRoot(value *big.Int, n uint64) (*big.Int, bool) {
	var negative bool
	//
	if value.Sign() < 0 {
		if n%2 == 0 {
			// No real even root of a negative value
			return nil, false
		}
		//
		negative = true
		value = new(big.Int).Neg(value)
	}
	// Binary search for the root
	var (
		lo   = big.NewInt(0)
		hi   = new(big.Int).Add(value, big.NewInt(1))
		one  = big.NewInt(1)
		bigN = new(big.Int).SetUint64(n)
	)
	//
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1)
		//
		pow := new(big.Int).Exp(mid, bigN, nil)
		//
		switch pow.Cmp(value) {
		case 0:
			if negative {
				mid.Neg(mid)
			}
			//
			return mid, true
		case -1:
			lo.Add(mid, one)
		default:
			hi.Set(mid)
		}
	}
	// Not a perfect power
	return nil, false
}
