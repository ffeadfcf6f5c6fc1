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

import "fmt"

// RuleDefinitionError signals an invalid rule encountered whilst loading a
// rule set (e.g. a missing pattern, or a replacement template referencing a
// wildcard the pattern never binds).  Rule sets fail fast at load time, never
// lazily during simplification.
type RuleDefinitionError struct {
	// Rule names the offending rule.
	Rule string
	// Err is the underlying cause.
	Err error
}

//nolint:revive
func (p *RuleDefinitionError) Error() string {
	return fmt.Sprintf("invalid rule %q: %v", p.Rule, p.Err)
}

//nolint:revive
func (p *RuleDefinitionError) Unwrap() error {
	return p.Err
}

// UnboundWildcardError signals a replacement template referencing a wildcard
// which is never bound by the corresponding pattern.  This is surfaced
// immediately (at rule-set load time), never silently substituted as empty.
type UnboundWildcardError struct {
	// Wildcard names the unbound wildcard.
	Wildcard string
}

//nolint:revive
func (p *UnboundWildcardError) Error() string {
	return fmt.Sprintf("replacement references unbound wildcard %q", p.Wildcard)
}
