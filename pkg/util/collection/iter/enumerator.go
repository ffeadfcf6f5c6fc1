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
package iter

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Enumerator abstracts the process of iterating over a sequence of elements.
// Enumerators are lazy: elements are produced on demand, so a caller can stop
// after the first element without paying for the rest of a (potentially
// combinatorial) sequence.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advance the enumerator.
	Next() T
}

// Find returns the index of the first match for a given predicate, or return
// false if no match is found.  This will mutate the enumerator.
//
//nolint:revive
func Find[T any, S Enumerator[T]](iter S, predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Count the number of items left in the enumerator.  Observe this drains the
// enumerator.
//
//nolint:revive
func Count[T any, S Enumerator[T]](iter S) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}
	//
	return count
}

// Collect allocates a new array containing all items of this enumerator.
// This drains the enumerator.
//
//nolint:revive
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// First returns the first item of the enumerator (if any), advancing it past
// that item.
//
//nolint:revive
func First[T any, S Enumerator[T]](iter S) (T, bool) {
	var empty T
	//
	if iter.HasNext() {
		return iter.Next(), true
	}
	//
	return empty, false
}
