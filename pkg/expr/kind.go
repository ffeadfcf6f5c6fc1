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

// Kind identifies the operator (or atom) class of an expression node.  The
// set of kinds is closed: new simplification behaviour is added by loading
// rewrite rules, not by extending this enumeration.
type Kind uint8

const (
	// Integer is an exact (arbitrary precision) integer atom.
	Integer Kind = iota
	// Rational is an exact rational atom whose denominator is never one
	// (such values are always represented as Integer).
	Rational
	// Symbol is a named symbolic atom, optionally carrying properties.
	Symbol
	// Add is an n-ary sum (n >= 2), commutative and associative.
	Add
	// Mul is an n-ary product (n >= 2), commutative and associative.
	Mul
	// Pow is a binary power (base, exponent), non-commutative.
	Pow
	// Func is a named function application, non-commutative.
	Func
	// Wild is a pattern atom which binds to a single expression during
	// matching.  It never appears in subject expressions.
	Wild
	// WildSeq is a pattern atom which binds to the remaining (possibly
	// empty) operands of a commutative node during matching.
	WildSeq
)

// IsAtom determines whether this kind represents a leaf node (i.e. one with
// no operands).
func (k Kind) IsAtom() bool {
	switch k {
	case Integer, Rational, Symbol, Wild, WildSeq:
		return true
	default:
		return false
	}
}

// IsNumeric determines whether this kind represents an exact numeric atom.
func (k Kind) IsNumeric() bool {
	return k == Integer || k == Rational
}

// IsCommutative determines whether operand order carries no semantic meaning
// for this kind.  Commutative kinds are also associative and, hence, nested
// applications are flattened at construction time.
func (k Kind) IsCommutative() bool {
	return k == Add || k == Mul
}

//nolint:revive
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	case Symbol:
		return "symbol"
	case Add:
		return "add"
	case Mul:
		return "mul"
	case Pow:
		return "pow"
	case Func:
		return "func"
	case Wild:
		return "wild"
	case WildSeq:
		return "wildseq"
	default:
		return "unknown"
	}
}

// ordering rank of each kind class within the canonical total order (see
// Compare).  Numbers come first, then symbols, then compound forms.
func (k Kind) rank() uint {
	switch k {
	case Integer, Rational:
		return 0
	case Symbol:
		return 1
	case Pow:
		return 2
	case Mul:
		return 3
	case Add:
		return 4
	case Func:
		return 5
	case Wild:
		return 6
	default:
		return 7
	}
}
