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
	"errors"
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/match"
	"github.com/stretchr/testify/require"
)

func Test_RuleSet_01(t *testing.T) {
	rs, err := NewRuleSet(Rule{
		Name:        "double",
		Pattern:     expr.Sum(expr.NewWild("a"), expr.NewWild("a")),
		Replacement: expr.Product(expr.NewInteger(2), expr.NewWild("a")),
	})
	//
	require.NoError(t, err)
	require.Equal(t, uint(1), rs.Size())
}

func Test_RuleSet_02(t *testing.T) {
	// Replacement wildcards must be bound by the pattern
	_, err := NewRuleSet(Rule{
		Name:        "bad",
		Pattern:     expr.NewWild("a"),
		Replacement: expr.NewWild("b"),
	})
	//
	var (
		rerr *RuleDefinitionError
		werr *UnboundWildcardError
	)
	//
	require.Error(t, err)
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, "bad", rerr.Rule)
	require.True(t, errors.As(err, &werr))
	require.Equal(t, "b", werr.Wildcard)
}

func Test_RuleSet_03(t *testing.T) {
	// Rule names are unique within a set
	rule := Rule{
		Name:        "twice",
		Pattern:     expr.NewWild("a"),
		Replacement: expr.NewWild("a"),
	}
	//
	_, err := NewRuleSet(rule, rule)
	//
	var rerr *RuleDefinitionError
	//
	require.Error(t, err)
	require.True(t, errors.As(err, &rerr))
}

func Test_RuleSet_04(t *testing.T) {
	// Sequence wildcards only make sense under commutative operators
	_, err := NewRuleSet(Rule{
		Name:        "bad-seq",
		Pattern:     expr.Power(expr.NewWildSeq("rest"), expr.NewInteger(2)),
		Replacement: expr.Zero(),
	})
	//
	require.Error(t, err)
}

func Test_RuleSet_05(t *testing.T) {
	// Exactly one of replacement and transform must be given
	_, err := NewRuleSet(Rule{
		Name:    "neither",
		Pattern: expr.NewWild("a"),
	})
	require.Error(t, err)
	//
	_, err = NewRuleSet(Rule{
		Name:        "both",
		Pattern:     expr.NewWild("a"),
		Replacement: expr.NewWild("a"),
		Transform:   func(e *expr.Expr, _ match.Bindings) (*expr.Expr, bool) { return e, true },
	})
	require.Error(t, err)
}

func Test_RuleSet_06(t *testing.T) {
	// Fingerprints identify rule set contents
	r1 := Rule{
		Name:        "r1",
		Pattern:     expr.NewWild("a"),
		Replacement: expr.NewWild("a"),
	}
	r2 := Rule{
		Name:        "r2",
		Pattern:     expr.Sum(expr.NewWild("a"), expr.Zero()),
		Replacement: expr.NewWild("a"),
	}
	//
	s1, err := NewRuleSet(r1)
	require.NoError(t, err)
	//
	s2, err := s1.Append(r2)
	require.NoError(t, err)
	//
	s3, err := NewRuleSet(r1, r2)
	require.NoError(t, err)
	//
	require.NotEqual(t, s1.Fingerprint(), s2.Fingerprint())
	require.Equal(t, s2.Fingerprint(), s3.Fingerprint())
	require.Equal(t, uint(1), s1.Size())
	require.Equal(t, uint(2), s2.Size())
}
