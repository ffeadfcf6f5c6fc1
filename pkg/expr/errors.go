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

import "fmt"

// MalformedExpressionError signals an arity or kind violation during
// construction (e.g. a power with three operands, or a function applied to
// the wrong number of arguments).  Construction never returns a best-effort
// node alongside this error.
type MalformedExpressionError struct {
	// Kind of the node whose construction failed.
	Kind Kind
	// Msg describes the violation.
	Msg string
}

//nolint:revive
func (p *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed %s expression: %s", p.Kind, p.Msg)
}
