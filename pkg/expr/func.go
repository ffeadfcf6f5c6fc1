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
	"fmt"
	"sync"
)

// Function applications are an open-ended kind: collaborators may register
// new named functions at any time.  Registration fixes the expected arity,
// which construction then validates.  Unregistered names are accepted with
// any (non-zero) arity, so that purely symbolic function applications do not
// require registration.

var (
	funcMu    sync.RWMutex
	funcTable = map[string]uint{
		"sin":  1,
		"cos":  1,
		"tan":  1,
		"exp":  1,
		"log":  1,
		"abs":  1,
		"sqrt": 1,
	}
)

// RegisterFunction registers a named function with a fixed arity, so that
// construction of applications of that name validates against it.  This
// fails if the name is already registered with a different arity.
func RegisterFunction(name string, arity uint) error {
	funcMu.Lock()
	defer funcMu.Unlock()
	//
	if existing, ok := funcTable[name]; ok && existing != arity {
		return fmt.Errorf("function %q already registered with arity %d", name, existing)
	}
	//
	funcTable[name] = arity
	//
	return nil
}

// FunctionArity returns the registered arity of a named function, or false if
// the name is unregistered.
func FunctionArity(name string) (uint, bool) {
	funcMu.RLock()
	defer funcMu.RUnlock()
	//
	arity, ok := funcTable[name]
	//
	return arity, ok
}
