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
	"sync"

	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
)

// DefaultInternerCapacity bounds the number of distinct nodes retained by the
// process-wide interner unless reconfigured via SetInternerCapacity.
const DefaultInternerCapacity = 1 << 20

// Interner is a deduplication cache mapping canonical nodes to their unique
// resident instance.  Whilst the cache has capacity, structurally equal nodes
// built through the constructors in this package are pointer-identical.  Once
// capacity is exhausted, construction continues to produce correct canonical
// nodes, just without the sharing guarantee.
//
// An interner is safe for concurrent use: insertion is serialized
// insert-if-absent with a single winner, and a losing racer simply adopts the
// winner's node (which is structurally equal by construction).
type Interner struct {
	mu       sync.Mutex
	cache    *hash.Map[*Expr, *Expr]
	capacity uint
}

// NewInterner constructs an empty interner retaining at most capacity nodes.
func NewInterner(capacity uint) *Interner {
	return &Interner{
		cache:    hash.NewMap[*Expr, *Expr](1024),
		capacity: capacity,
	}
}

// Intern returns the resident instance for a candidate node, inserting the
// candidate if no structurally equal node is already resident (and capacity
// permits).
func (p *Interner) Intern(candidate *Expr) *Expr {
	p.mu.Lock()
	defer p.mu.Unlock()
	// Fast path: already resident
	if resident, ok := p.cache.Get(candidate); ok {
		return resident
	}
	// Respect the capacity bound
	if p.cache.Size() >= p.capacity {
		return candidate
	}
	//
	resident, _ := p.cache.InsertIfAbsent(candidate, candidate)
	//
	return resident
}

// Size returns the number of nodes currently resident.
func (p *Interner) Size() uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	//
	return p.cache.Size()
}

// ============================================================================
// Process-wide interner
// ============================================================================

var (
	globalMu       sync.Mutex
	globalInterner *Interner
)

// intern routes a candidate node through the process-wide interner, which is
// created lazily on first use.
func intern(candidate *Expr) *Expr {
	return sharedInterner().Intern(candidate)
}

// sharedInterner returns the process-wide interner, creating it on first use.
func sharedInterner() *Interner {
	globalMu.Lock()
	defer globalMu.Unlock()
	//
	if globalInterner == nil {
		globalInterner = NewInterner(DefaultInternerCapacity)
	}
	//
	return globalInterner
}

// ResetInterner discards every node resident in the process-wide interner.
// Previously constructed expressions remain valid canonical nodes; they just
// no longer coincide (pointerwise) with nodes built afterwards.
func ResetInterner() {
	globalMu.Lock()
	defer globalMu.Unlock()
	//
	globalInterner = nil
}

// SetInternerCapacity reconfigures (and resets) the process-wide interner to
// retain at most the given number of nodes.
func SetInternerCapacity(capacity uint) {
	globalMu.Lock()
	defer globalMu.Unlock()
	//
	globalInterner = NewInterner(capacity)
}
