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
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// step produces, for a given intermediate search state, the enumerator of all
// states extending it by one more decision.
type step[S any] func(S) iter.Enumerator[S]

// chainEnumerator performs a lazy depth-first product of a sequence of steps:
// states produced by step i feed step i+1, and states emerging from the final
// step are emitted.  This is the backbone of both positional and commutative
// matching, where each step assigns one pattern operand.  Only a stack of
// live enumerators is retained, so the (potentially combinatorial) search
// space is never materialized.
type chainEnumerator[S any] struct {
	steps []step[S]
	stack []iter.Enumerator[S]
	// lookahead slot
	ready S
	full  bool
	done  bool
}

func newChain[S any](initial S, steps []step[S]) *chainEnumerator[S] {
	p := &chainEnumerator[S]{steps: steps}
	//
	if len(steps) == 0 {
		// Degenerate chain emits the initial state once
		p.ready, p.full = initial, true
	} else {
		p.stack = append(p.stack, steps[0](initial))
	}
	//
	return p
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *chainEnumerator[S]) HasNext() bool {
	p.prepare()
	//
	return p.full
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *chainEnumerator[S]) Next() S {
	p.prepare()
	//
	if !p.full {
		panic("enumerator out-of-bounds")
	}
	//
	var empty S
	//
	item := p.ready
	p.ready, p.full = empty, false
	//
	return item
}

// prepare advances the depth-first search until either a state emerges from
// the final step (filling the lookahead slot) or the search space is
// exhausted.
func (p *chainEnumerator[S]) prepare() {
	if p.full || p.done {
		return
	}
	//
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		// Backtrack on exhaustion
		if !top.HasNext() {
			p.stack = p.stack[:len(p.stack)-1]
			continue
		}
		//
		state := top.Next()
		// Emit states emerging from the final step
		if len(p.stack) == len(p.steps) {
			p.ready, p.full = state, true
			return
		}
		// Otherwise, descend into the next step
		p.stack = append(p.stack, p.steps[len(p.stack)](state))
	}
	//
	p.done = true
}
