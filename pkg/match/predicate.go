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
)

// Predicate constrains what a wildcard may bind to.  Predicates consult the
// candidate expression (including any symbol properties) but never modify it.
type Predicate func(*expr.Expr) bool

// Constraints maps wildcard names to the predicates constraining them.
// Wildcards without an entry bind unconditionally.
type Constraints map[string]Predicate

// IsNumeric matches exact numeric atoms.
func IsNumeric(e *expr.Expr) bool {
	return e.IsNumeric()
}

// IsInteger matches integer atoms, along with symbols assumed integral.
func IsInteger(e *expr.Expr) bool {
	switch e.Kind() {
	case expr.Integer:
		return true
	case expr.Symbol:
		return e.Properties().Has(expr.PropInteger)
	default:
		return false
	}
}

// IsSymbol matches symbol atoms.
func IsSymbol(e *expr.Expr) bool {
	return e.Kind() == expr.Symbol
}

// IsNonZero matches numeric atoms other than zero, along with symbols assumed
// non-zero.
func IsNonZero(e *expr.Expr) bool {
	switch {
	case e.IsNumeric():
		return e.Rat().Sign() != 0
	case e.Kind() == expr.Symbol:
		return e.Properties().Has(expr.PropNonZero)
	default:
		return false
	}
}

// IsPositive matches strictly positive numeric atoms, along with symbols
// assumed positive.
func IsPositive(e *expr.Expr) bool {
	switch {
	case e.IsNumeric():
		return e.Rat().Sign() > 0
	case e.Kind() == expr.Symbol:
		return e.Properties().Has(expr.PropPositive)
	default:
		return false
	}
}

// IsNegative matches strictly negative numeric atoms, along with symbols
// assumed negative.
func IsNegative(e *expr.Expr) bool {
	switch {
	case e.IsNumeric():
		return e.Rat().Sign() < 0
	case e.Kind() == expr.Symbol:
		return e.Properties().Has(expr.PropNegative)
	default:
		return false
	}
}
