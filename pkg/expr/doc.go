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

// Package expr provides an immutable, structurally shared representation of
// mathematical expressions together with a canonicalizing construction layer.
// Expressions are built from exact numeric atoms (arbitrary precision
// integers and rationals), symbols with optional assumption properties, sums,
// products, powers and named function applications.
//
// Canonicalization happens at construction time: operands of commutative
// operators are flattened, constant-folded, collected and sorted under one
// total order, so structurally equivalent expressions are representationally
// identical.  A process-wide interner additionally deduplicates equal nodes,
// making structural equality coincide with pointer identity while the
// interner has capacity.  Structural hashes are computed once per node and
// back the interner, the simplification memo and pattern-match caching.
package expr
