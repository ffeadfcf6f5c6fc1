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

import "strings"

// Properties is a set of assumptions attached to a symbol (e.g. that it
// ranges over the reals, or is known to be positive).  Properties are
// consulted (never mutated) during matching and simplification.  Two symbols
// with the same name but different properties are distinct expressions.
type Properties uint8

const (
	// PropReal indicates a symbol ranging over the real numbers.
	PropReal Properties = 1 << iota
	// PropInteger indicates a symbol ranging over the integers.
	PropInteger
	// PropPositive indicates a symbol known to be strictly positive.
	PropPositive
	// PropNegative indicates a symbol known to be strictly negative.
	PropNegative
	// PropNonZero indicates a symbol known to be non-zero.
	PropNonZero
)

// Has checks whether all of the given properties are present.
func (p Properties) Has(props Properties) bool {
	return p&props == props
}

//nolint:revive
func (p Properties) String() string {
	var (
		names   []string
		mapping = []struct {
			prop Properties
			name string
		}{
			{PropReal, "real"},
			{PropInteger, "integer"},
			{PropPositive, "positive"},
			{PropNegative, "negative"},
			{PropNonZero, "nonzero"},
		}
	)
	//
	for _, m := range mapping {
		if p.Has(m.prop) {
			names = append(names, m.name)
		}
	}
	//
	return strings.Join(names, ",")
}

// normalise closes a property set under its immediate implications (e.g.
// positive implies non-zero and real).
func (p Properties) normalise() Properties {
	if p.Has(PropPositive) || p.Has(PropNegative) {
		p |= PropNonZero | PropReal
	}
	//
	if p.Has(PropInteger) {
		p |= PropReal
	}
	//
	return p
}
