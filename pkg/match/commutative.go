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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// maxOperands bounds the width of commutative subjects the matcher is
// prepared to enumerate over, since operand subsets are tracked as bits of a
// machine word.
const maxOperands = 63

// acState is the intermediate state of a commutative match: the bindings
// accumulated so far, together with the set of subject operands already
// consumed (as a bitmask).
type acState struct {
	bind Bindings
	used uint64
}

// matchCommutative enumerates assignments of the subject's operands to the
// pattern's operands, in three stages: non-wildcard pattern operands each
// consume exactly one subject operand; Wild operands each consume a non-empty
// subset (binding to the sum/product of the subset); and a trailing WildSeq
// (at most one) collects whatever remains, binding to the operator's identity
// element when nothing does.  Without a WildSeq, every subject operand must
// be consumed.
func matchCommutative(pattern *expr.Expr, subject *expr.Expr, in Bindings, cs Constraints) iter.Enumerator[Bindings] {
	var (
		subjects = subject.Args()
		singles  []*expr.Expr
		wilds    []*expr.Expr
		seq      *expr.Expr
	)
	//
	if len(subjects) > maxOperands {
		log.Warnf("refusing commutative match against %d operands (max %d)", len(subjects), maxOperands)
		return iter.Empty[Bindings]()
	}
	// Classify pattern operands
	for _, op := range pattern.Args() {
		switch op.Kind() {
		case expr.Wild:
			wilds = append(wilds, op)
		case expr.WildSeq:
			if seq != nil {
				// At most one remaining-operands wildcard is meaningful
				return iter.Empty[Bindings]()
			}
			//
			seq = op
		default:
			singles = append(singles, op)
		}
	}
	// Each single consumes exactly one operand, each wild at least one
	if len(singles)+len(wilds) > len(subjects) {
		return iter.Empty[Bindings]()
	}
	//
	var steps []step[acState]
	// Non-wildcard operands are assigned first, pruning the search early
	for _, pat := range singles {
		steps = append(steps, func(s acState) iter.Enumerator[acState] {
			return newSingleEnumerator(pat, subjects, s, cs)
		})
	}
	//
	for _, wild := range wilds {
		steps = append(steps, func(s acState) iter.Enumerator[acState] {
			return newWildEnumerator(wild.Name(), pattern.Kind(), subjects, s, cs)
		})
	}
	// Finally, dispatch the remainder
	steps = append(steps, func(s acState) iter.Enumerator[acState] {
		return finishCommutative(seq, pattern.Kind(), subjects, s, cs)
	})
	//
	return &stateBindings{newChain(acState{in, 0}, steps)}
}

// finishCommutative completes a commutative match once every pattern operand
// has been assigned.  An empty remainder binds a sequence wildcard to the
// identity element of the operator, not to "nothing".
func finishCommutative(seq *expr.Expr, kind expr.Kind, subjects []*expr.Expr, s acState, cs Constraints) iter.Enumerator[acState] {
	remainder := fullMask(len(subjects)) &^ s.used
	//
	if seq == nil {
		if remainder == 0 {
			return iter.Unit(s)
		}
		// Unconsumed operands, no sequence wildcard to collect them
		return iter.Empty[acState]()
	}
	//
	candidate := rebuildOperands(kind, subjects, remainder)
	//
	if bind, ok := bindOne(seq.Name(), candidate, s.bind, cs); ok {
		return iter.Unit(acState{bind, fullMask(len(subjects))})
	}
	//
	return iter.Empty[acState]()
}

// stateBindings projects an enumerator of match states down to its binding
// environments.
type stateBindings struct {
	states iter.Enumerator[acState]
}

//nolint:revive
func (p *stateBindings) HasNext() bool { return p.states.HasNext() }

//nolint:revive
func (p *stateBindings) Next() Bindings { return p.states.Next().bind }

// ============================================================================
// Single-operand assignment
// ============================================================================

// singleEnumerator enumerates assignments of one (non-wildcard) pattern
// operand to each unconsumed subject operand in turn, recursively enumerating
// the resulting binding environments.
type singleEnumerator struct {
	pat      *expr.Expr
	subjects []*expr.Expr
	cs       Constraints
	base     acState
	// index of next subject operand to try
	index int
	// bit of the subject operand the inner enumerator is matching against
	bit uint64
	// inner enumerates bindings of pat against the current subject operand
	inner iter.Enumerator[Bindings]
}

func newSingleEnumerator(pat *expr.Expr, subjects []*expr.Expr, base acState, cs Constraints) *singleEnumerator {
	return &singleEnumerator{pat: pat, subjects: subjects, cs: cs, base: base}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *singleEnumerator) HasNext() bool {
	for {
		if p.inner != nil && p.inner.HasNext() {
			return true
		}
		// Advance to the next unconsumed subject operand
		for p.index < len(p.subjects) && p.base.used&(uint64(1)<<p.index) != 0 {
			p.index++
		}
		//
		if p.index >= len(p.subjects) {
			return false
		}
		//
		p.bit = uint64(1) << p.index
		p.inner = Match(p.pat, p.subjects[p.index], p.base.bind, p.cs)
		p.index++
	}
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *singleEnumerator) Next() acState {
	if !p.HasNext() {
		panic("enumerator out-of-bounds")
	}
	//
	return acState{p.inner.Next(), p.base.used | p.bit}
}

// ============================================================================
// Wildcard (subset) assignment
// ============================================================================

// wildEnumerator enumerates assignments of a Wild pattern operand to every
// non-empty subset of the unconsumed subject operands, binding the wildcard
// to the sum (resp. product) of the subset.
type wildEnumerator struct {
	name     string
	kind     expr.Kind
	subjects []*expr.Expr
	cs       Constraints
	base     acState
	// unconsumed operands available to this wildcard
	free uint64
	// current submask candidate (zero once exhausted)
	sub uint64
	// lookahead slot
	ready acState
	full  bool
}

func newWildEnumerator(name string, kind expr.Kind, subjects []*expr.Expr, base acState, cs Constraints) *wildEnumerator {
	free := fullMask(len(subjects)) &^ base.used
	//
	return &wildEnumerator{
		name:     name,
		kind:     kind,
		subjects: subjects,
		cs:       cs,
		base:     base,
		free:     free,
		sub:      free,
	}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *wildEnumerator) HasNext() bool {
	// Visit candidate submasks in descending order until one binds
	for !p.full && p.sub != 0 {
		candidate := rebuildOperands(p.kind, p.subjects, p.sub)
		//
		if bind, ok := bindOne(p.name, candidate, p.base.bind, p.cs); ok {
			p.ready = acState{bind, p.base.used | p.sub}
			p.full = true
		}
		//
		p.sub = (p.sub - 1) & p.free
	}
	//
	return p.full
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *wildEnumerator) Next() acState {
	if !p.HasNext() {
		panic("enumerator out-of-bounds")
	}
	//
	p.full = false
	//
	return p.ready
}

// ============================================================================
// Helpers
// ============================================================================

func fullMask(n int) uint64 {
	return (uint64(1) << n) - 1
}

// rebuildOperands reconstructs the expression covered by a subset of a
// commutative node's operands.  The empty subset yields the operator's
// identity element.
func rebuildOperands(kind expr.Kind, subjects []*expr.Expr, mask uint64) *expr.Expr {
	var ops []*expr.Expr
	//
	for i, subject := range subjects {
		if mask&(uint64(1)<<i) != 0 {
			ops = append(ops, subject)
		}
	}
	//
	if kind == expr.Add {
		return expr.Sum(ops...)
	}
	//
	return expr.Product(ops...)
}
