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

// ============================================================================
// Empty Enumerator
// ============================================================================

type emptyEnumerator[T any] struct{}

// Empty constructs an enumerator over zero items.
func Empty[T any]() Enumerator[T] {
	return &emptyEnumerator[T]{}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *emptyEnumerator[T]) HasNext() bool { return false }

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *emptyEnumerator[T]) Next() T {
	panic("enumerator out-of-bounds")
}

// ============================================================================
// Unit Enumerator
// ============================================================================

type unitEnumerator[T any] struct {
	item  T
	index uint
}

// Unit constructs an enumerator over exactly one item.
func Unit[T any](item T) Enumerator[T] {
	return &unitEnumerator[T]{item, 0}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *unitEnumerator[T]) HasNext() bool {
	return p.index < 1
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *unitEnumerator[T]) Next() T {
	if p.index >= 1 {
		panic("enumerator out-of-bounds")
	}
	//
	p.index++
	//
	return p.item
}

// ============================================================================
// Array Enumerator
// ============================================================================

type arrayEnumerator[T any] struct {
	items []T
	index uint
}

// Over constructs an enumerator over the items of an array.
func Over[T any](items ...T) Enumerator[T] {
	return &arrayEnumerator[T]{items, 0}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *arrayEnumerator[T]) HasNext() bool {
	return p.index < uint(len(p.items))
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *arrayEnumerator[T]) Next() T {
	item := p.items[p.index]
	p.index++
	//
	return item
}

// ============================================================================
// Append Enumerator
// ============================================================================

type appendEnumerator[T any] struct {
	left  Enumerator[T]
	right Enumerator[T]
}

// Append constructs an enumerator which visits all items of the left
// enumerator, followed by all items of the right.
func Append[T any](left Enumerator[T], right Enumerator[T]) Enumerator[T] {
	return &appendEnumerator[T]{left, right}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *appendEnumerator[T]) HasNext() bool {
	return p.left.HasNext() || p.right.HasNext()
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *appendEnumerator[T]) Next() T {
	if p.left.HasNext() {
		return p.left.Next()
	}
	//
	return p.right.Next()
}
