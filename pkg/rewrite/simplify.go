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
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
)

// Status reports how a simplification terminated.
type Status uint8

const (
	// Stable indicates a fixed point was reached: no rule fires anywhere in
	// the resulting expression.
	Stable Status = iota
	// BudgetExceeded indicates the iteration or depth budget ran out before a
	// fixed point was confirmed.  This is best-effort termination, not an
	// error: the result is a valid (equivalent) expression, just not
	// necessarily fully simplified.
	BudgetExceeded
)

//nolint:revive
func (s Status) String() string {
	if s == Stable {
		return "stable"
	}
	//
	return "budget-exceeded"
}

// Default budgets for the simplifier.
const (
	// DefaultMaxIterations bounds the number of whole-tree passes.
	DefaultMaxIterations = 16
	// DefaultMaxDepth bounds how deep a pass recurses into the tree.
	DefaultMaxDepth = 128
	// DefaultMemoCapacity bounds the number of memoized results retained.
	DefaultMemoCapacity = 1 << 18
)

// Option configures a simplifier.
type Option func(*Simplifier)

// WithMaxIterations bounds the number of whole-tree rewrite passes per
// simplification.  Zero means the input is returned in canonical form
// untouched.
func WithMaxIterations(n uint) Option {
	return func(p *Simplifier) { p.maxIterations = n }
}

// WithMaxDepth bounds how deep each pass recurses; nodes beyond the bound are
// left as they are.
func WithMaxDepth(n uint) Option {
	return func(p *Simplifier) { p.maxDepth = n }
}

// WithMemoCapacity bounds the number of memoized simplification results.
func WithMemoCapacity(n uint) Option {
	return func(p *Simplifier) { p.memoCapacity = n }
}

// Simplifier repeatedly applies a rule set to an expression until a fixed
// point or budget is reached.  Each pass proceeds bottom-up: operands are
// simplified first, the node is rebuilt through the canonical form builder
// (reapplying structural canonicalization after every operand change), and
// then rules are attempted in order against the rebuilt node.
//
// Results are memoized per (expression, rule set) using the structural hash,
// so repeated simplification of shared subexpressions is O(1) after first
// computation.  A simplifier is safe for concurrent use; memo access is
// serialized insert-if-absent.
type Simplifier struct {
	rules         *RuleSet
	maxIterations uint
	maxDepth      uint
	memoCapacity  uint
	//
	mu   sync.Mutex
	memo *hash.Map[memoKey, *expr.Expr]
}

// NewSimplifier constructs a simplifier over a given rule set.
func NewSimplifier(rules *RuleSet, opts ...Option) *Simplifier {
	p := &Simplifier{
		rules:         rules,
		maxIterations: DefaultMaxIterations,
		maxDepth:      DefaultMaxDepth,
		memoCapacity:  DefaultMemoCapacity,
	}
	//
	for _, opt := range opts {
		opt(p)
	}
	//
	p.memo = hash.NewMap[memoKey, *expr.Expr](1024)
	//
	return p
}

// Simplify rewrites an expression to a fixed point of the rule set (or until
// the iteration budget runs out), returning the last produced expression
// either way.  Rules firing without changing a node (after canonicalization)
// are treated as no-ops for that node, preventing oscillation between forms a
// rule set might otherwise flip between.
func (p *Simplifier) Simplify(e *expr.Expr) (*expr.Expr, Status) {
	if cached, ok := p.memoGet(e); ok {
		return cached, Stable
	}
	//
	var (
		current   = e
		truncated = false
		stable    = false
	)
	//
	for i := uint(0); i < p.maxIterations; i++ {
		next, trunc := p.pass(current, 0)
		truncated = truncated || trunc
		// Fixed point?
		if expr.Equal(next, current) {
			stable = true
			break
		}
		//
		current = next
	}
	//
	if !stable || truncated {
		log.Debugf("simplification budget exhausted on %s", current)
		return current, BudgetExceeded
	}
	// Every subexpression of a fixed point is itself a fixed point, so the
	// whole result tree can be memoized, along with the original input.
	p.memoizeTree(current)
	p.memoInsert(e, current)
	//
	return current, Stable
}

// pass performs one bottom-up rewrite pass over a subtree, reporting whether
// the depth budget truncated the recursion anywhere.
func (p *Simplifier) pass(e *expr.Expr, depth uint) (*expr.Expr, bool) {
	if depth >= p.maxDepth {
		return e, true
	}
	// Previously simplified subtrees jump straight to their fixed point
	if cached, ok := p.memoGet(e); ok {
		return cached, false
	}
	//
	var (
		truncated = false
		rebuilt   = e
	)
	// Simplify operands first, then rebuild
	if arity := e.Arity(); arity > 0 {
		var (
			nargs   = make([]*expr.Expr, arity)
			changed = false
		)
		//
		for i, arg := range e.Args() {
			narg, trunc := p.pass(arg, depth+1)
			truncated = truncated || trunc
			changed = changed || narg != arg
			nargs[i] = narg
		}
		//
		if changed {
			rebuilt = expr.Rebuild(e, nargs)
		}
	}
	// Attempt each rule in priority order against the rebuilt node
	for i := range p.rules.rules {
		rule := &p.rules.rules[i]
		//
		if out, ok := rule.apply(rebuilt); ok {
			// Cycle guard: a replacement canonicalizing back to the input is
			// a no-op for this node.
			if expr.Equal(out, rebuilt) {
				continue
			}
			//
			log.Debugf("rule %s: %s ==> %s", rule.Name, rebuilt, out)
			//
			return out, truncated
		}
	}
	//
	return rebuilt, truncated
}

// ============================================================================
// Memoization
// ============================================================================

// memoKey keys memoized results by expression content and rule set
// fingerprint.
type memoKey struct {
	e  *expr.Expr
	fp uint64
}

// Hash implementation for the Hasher interface.
func (p memoKey) Hash() uint64 {
	return hash.Combine(p.e.Hash(), p.fp)
}

// Equals implementation for the Hasher interface.
func (p memoKey) Equals(other memoKey) bool {
	return p.fp == other.fp && expr.Equal(p.e, other.e)
}

func (p *Simplifier) memoGet(e *expr.Expr) (*expr.Expr, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	//
	return p.memo.Get(memoKey{e, p.rules.fingerprint})
}

func (p *Simplifier) memoInsert(e *expr.Expr, result *expr.Expr) {
	p.mu.Lock()
	defer p.mu.Unlock()
	//
	if p.memo.Size() < p.memoCapacity {
		p.memo.InsertIfAbsent(memoKey{e, p.rules.fingerprint}, result)
	}
}

// memoizeTree records every subexpression of a stable result as its own
// fixed point, within the memo capacity.
func (p *Simplifier) memoizeTree(root *expr.Expr) {
	p.mu.Lock()
	defer p.mu.Unlock()
	//
	expr.Walk(root, func(e *expr.Expr) bool {
		if p.memo.Size() >= p.memoCapacity {
			return false
		}
		//
		p.memo.InsertIfAbsent(memoKey{e, p.rules.fingerprint}, e)
		//
		return true
	})
}
