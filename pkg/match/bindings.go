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
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/consensys/go-symbolic/pkg/expr"
)

// Bindings is an immutable environment mapping wildcard names to matched
// expressions.  One environment is produced per successful match; extending
// an environment produces a new one, leaving the original untouched.  This
// persistence is what lets the backtracking enumerators branch without
// copying.  The zero value is the empty environment.
type Bindings struct {
	env *immutable.Map[string, *expr.Expr]
}

// NewBindings constructs an empty binding environment.
func NewBindings() Bindings {
	return Bindings{immutable.NewMap[string, *expr.Expr](nil)}
}

// Get returns the expression bound to a given wildcard name, if any.
func (p Bindings) Get(name string) (*expr.Expr, bool) {
	if p.env == nil {
		return nil, false
	}
	//
	return p.env.Get(name)
}

// Bind produces a new environment additionally mapping the given wildcard
// name to the given expression.
func (p Bindings) Bind(name string, e *expr.Expr) Bindings {
	env := p.env
	//
	if env == nil {
		env = immutable.NewMap[string, *expr.Expr](nil)
	}
	//
	return Bindings{env.Set(name, e)}
}

// Size returns the number of wildcard names bound in this environment.
func (p Bindings) Size() uint {
	if p.env == nil {
		return 0
	}
	//
	return uint(p.env.Len())
}

// Names returns the bound wildcard names in sorted order.
func (p Bindings) Names() []string {
	var names []string
	//
	if p.env != nil {
		for itr := p.env.Iterator(); !itr.Done(); {
			name, _, _ := itr.Next()
			names = append(names, name)
		}
	}
	//
	sort.Strings(names)
	//
	return names
}

//nolint:revive
func (p Bindings) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, name := range p.Names() {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		binding, _ := p.Get(name)
		builder.WriteString(fmt.Sprintf("%s:=%s", name, binding))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Equals determines whether two environments bind exactly the same names to
// structurally equal expressions.
func (p Bindings) Equals(other Bindings) bool {
	if p.Size() != other.Size() {
		return false
	}
	//
	for _, name := range p.Names() {
		lhs, _ := p.Get(name)
		rhs, ok := other.Get(name)
		//
		if !ok || !expr.Equal(lhs, rhs) {
			return false
		}
	}
	//
	return true
}
