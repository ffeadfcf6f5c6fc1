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

// Package match implements pattern matching over expressions.  Patterns are
// ordinary expression trees containing wildcard atoms: a Wild binds to a
// single expression (for commutative operators, to a sum or product of any
// non-empty subset of operands), whilst a WildSeq collects whichever operands
// of a commutative node remain unmatched (binding to the operator's identity
// element when none remain).  Wildcards may be constrained by named
// predicates supplied alongside the pattern.
//
// Matching against commutative operators enumerates every assignment of
// subject operands to pattern operands.  Since the number of assignments is
// combinatorial, enumeration is lazy: Match returns an enumerator producing
// binding environments on demand, so a caller wanting only the first match
// pays nothing for the rest.
package match
