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
	goerrors "errors"

	"github.com/pkg/errors"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/match"
	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
)

// Transform rewrites a matched expression given the bindings of a successful
// match, returning false when it declines to rewrite after all.  Transforms
// express rewrites which cannot be captured as a static replacement template
// (e.g. exact numeric evaluation).
type Transform func(subject *expr.Expr, bindings match.Bindings) (*expr.Expr, bool)

// Rule pairs a pattern with either a replacement template or a transform
// function.  Rules are data: new simplification behaviour is added by loading
// rules, not by extending the expression representation.
type Rule struct {
	// Name uniquely identifies this rule within a rule set.
	Name string
	// Pattern is an expression tree containing wildcard atoms.
	Pattern *expr.Expr
	// Replacement is a template instantiated with the bindings of a
	// successful match.  Exactly one of Replacement and Transform is set.
	Replacement *expr.Expr
	// Transform rewrites the matched expression programmatically.
	Transform Transform
	// Constraints restricts what the pattern's wildcards may bind to.
	Constraints match.Constraints
}

// RuleSet is a validated, ordered collection of rules.  Rules are attempted
// in order; the first rule whose pattern matches (under its first binding)
// rewrites the node.  A rule set carries a stable fingerprint identifying its
// contents, which keys the simplification memo.
type RuleSet struct {
	rules       []Rule
	fingerprint uint64
}

// NewRuleSet validates a collection of rules eagerly, failing fast with a
// RuleDefinitionError on the first invalid rule.
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	var (
		fingerprint uint64
		names       = make(map[string]bool, len(rules))
	)
	//
	for _, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, errors.WithStack(&RuleDefinitionError{r.Name, err})
		}
		//
		if names[r.Name] {
			return nil, errors.WithStack(&RuleDefinitionError{r.Name, goerrors.New("duplicate rule name")})
		}
		//
		names[r.Name] = true
		fingerprint = fingerprintRule(fingerprint, r)
	}
	//
	return &RuleSet{rules, fingerprint}, nil
}

// MustRuleSet is as NewRuleSet, except that it panics on an invalid rule.
// This is intended for statically known rule collections.
func MustRuleSet(rules ...Rule) *RuleSet {
	rs, err := NewRuleSet(rules...)
	//
	if err != nil {
		panic(err)
	}
	//
	return rs
}

// Size returns the number of rules in this set.
func (p *RuleSet) Size() uint {
	return uint(len(p.rules))
}

// Fingerprint returns a stable identifier for the contents of this rule set.
// Observe that transforms are opaque functions and, hence, are identified by
// their rule name.
func (p *RuleSet) Fingerprint() uint64 {
	return p.fingerprint
}

// Append produces a new rule set extending this one with additional rules,
// validated as usual.
func (p *RuleSet) Append(rules ...Rule) (*RuleSet, error) {
	return NewRuleSet(append(p.rules[:len(p.rules):len(p.rules)], rules...)...)
}

func fingerprintRule(fingerprint uint64, r Rule) uint64 {
	for i := 0; i < len(r.Name); i++ {
		fingerprint = hash.Combine(fingerprint, uint64(r.Name[i]))
	}
	//
	fingerprint = hash.Combine(fingerprint, r.Pattern.Hash())
	//
	if r.Replacement != nil {
		fingerprint = hash.Combine(fingerprint, r.Replacement.Hash())
	}
	//
	return fingerprint
}

// ============================================================================
// Validation
// ============================================================================

func validateRule(r Rule) error {
	switch {
	case r.Name == "":
		return goerrors.New("missing rule name")
	case r.Pattern == nil:
		return goerrors.New("missing pattern")
	case r.Replacement == nil && r.Transform == nil:
		return goerrors.New("missing replacement or transform")
	case r.Replacement != nil && r.Transform != nil:
		return goerrors.New("replacement and transform are mutually exclusive")
	}
	//
	if err := validatePattern(r.Pattern); err != nil {
		return err
	}
	// Every wildcard referenced by the replacement template must be bound by
	// the pattern.
	if r.Replacement != nil {
		bound := wildcardsOf(r.Pattern)
		//
		for name := range wildcardsOf(r.Replacement) {
			if !bound[name] {
				return &UnboundWildcardError{name}
			}
		}
	}
	//
	return nil
}

// validatePattern checks structural restrictions on wildcard placement:
// sequence wildcards are only meaningful as immediate operands of a
// commutative operator, at most one per node.
func validatePattern(pattern *expr.Expr) error {
	if pattern.Kind() == expr.WildSeq {
		return goerrors.New("sequence wildcard outside commutative operator")
	}
	//
	return validatePatternOperands(pattern)
}

func validatePatternOperands(pattern *expr.Expr) error {
	seqs := 0
	//
	for _, arg := range pattern.Args() {
		if arg.Kind() == expr.WildSeq {
			if !pattern.Kind().IsCommutative() {
				return goerrors.New("sequence wildcard outside commutative operator")
			}
			//
			seqs++
			//
			continue
		}
		//
		if err := validatePatternOperands(arg); err != nil {
			return err
		}
	}
	//
	if seqs > 1 {
		return goerrors.New("multiple sequence wildcards in one operator")
	}
	//
	return nil
}

// wildcardsOf collects the names of all wildcards occurring in a pattern or
// template.
func wildcardsOf(pattern *expr.Expr) map[string]bool {
	names := make(map[string]bool)
	//
	expr.Walk(pattern, func(e *expr.Expr) bool {
		if e.Kind() == expr.Wild || e.Kind() == expr.WildSeq {
			names[e.Name()] = true
		}
		//
		return true
	})
	//
	return names
}

// ============================================================================
// Application
// ============================================================================

// apply attempts this rule against a single node, taking the first
// successful match's first binding.
func (p *Rule) apply(e *expr.Expr) (*expr.Expr, bool) {
	bindings, ok := match.MatchFirst(p.Pattern, e, match.Bindings{}, p.Constraints)
	//
	if !ok {
		return e, false
	}
	//
	if p.Transform != nil {
		return p.Transform(e, bindings)
	}
	//
	return instantiate(p.Replacement, bindings), true
}

// instantiate fills a replacement template with the expressions bound by a
// successful match, rebuilding bottom-up through the canonical form builder.
// Load-time validation guarantees every template wildcard is bound.
func instantiate(template *expr.Expr, bindings match.Bindings) *expr.Expr {
	switch template.Kind() {
	case expr.Wild, expr.WildSeq:
		if bound, ok := bindings.Get(template.Name()); ok {
			return bound
		}
		// Unreachable for validated rule sets
		panic(&UnboundWildcardError{template.Name()})
	case expr.Integer, expr.Rational, expr.Symbol:
		return template
	}
	//
	nargs := make([]*expr.Expr, template.Arity())
	//
	for i, arg := range template.Args() {
		nargs[i] = instantiate(arg, bindings)
	}
	//
	return expr.Rebuild(template, nargs)
}
