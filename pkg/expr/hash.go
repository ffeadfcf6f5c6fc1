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
	"math/big"

	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
)

// computeHash determines the structural hashcode for a node under
// construction.  Since operands are always constructed first, their hashcodes
// are already available and, hence, this is O(n) in the number of operands.
func computeHash(kind Kind, name string, num *big.Rat, props Properties, args []*Expr) uint64 {
	h := hash.Combine(0, uint64(kind))
	h = hash.Combine(h, uint64(props))
	// Mix in name payload (if any)
	for i := 0; i < len(name); i++ {
		h = hash.Combine(h, uint64(name[i]))
	}
	// Mix in numeric payload (if any)
	if num != nil {
		h = hashBigInt(h, num.Num())
		h = hashBigInt(h, num.Denom())
	}
	// Mix in operand hashcodes
	for _, arg := range args {
		h = hash.Combine(h, arg.hash)
	}
	//
	return h
}

func hashBigInt(h uint64, v *big.Int) uint64 {
	h = hash.Combine(h, uint64(v.Sign()+1))
	//
	for _, b := range v.Bytes() {
		h = hash.Combine(h, uint64(b))
	}
	//
	return h
}
