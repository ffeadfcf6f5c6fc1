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
package hash

import (
	"math/rand"
	"testing"
)

func Test_HashMap_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashMap(t, items)
}

func Test_HashMap_02(t *testing.T) {
	items := generateRandomUints(10, 32)
	check_HashMap(t, items)
}

func Test_HashMap_03(t *testing.T) {
	items := generateRandomUints(100, 32)
	check_HashMap(t, items)
}

func Test_HashMap_04(t *testing.T) {
	items := generateRandomUints(1000, 32)
	check_HashMap(t, items)
}

func Test_HashMap_05(t *testing.T) {
	items := generateRandomUints(100000, 32)
	check_HashMap(t, items)
}

func Test_HashMap_06(t *testing.T) {
	// InsertIfAbsent retains the first binding for a key
	hmap := NewMap[testKey, uint](0)
	//
	if v, inserted := hmap.InsertIfAbsent(testKey{1}, 10); !inserted || v != 10 {
		t.Errorf("expected fresh insertion of 10, got %d", v)
	}
	//
	if v, inserted := hmap.InsertIfAbsent(testKey{1}, 20); inserted || v != 10 {
		t.Errorf("expected resident 10, got %d", v)
	}
	//
	if hmap.Size() != 1 {
		t.Errorf("expected 1 item, got %d", hmap.Size())
	}
}

func Test_HashMap_07(t *testing.T) {
	// Colliding keys coexist within a bucket
	hmap := NewMap[collidingKey, uint](0)
	//
	hmap.Insert(collidingKey{1}, 10)
	hmap.Insert(collidingKey{2}, 20)
	//
	if v, ok := hmap.Get(collidingKey{1}); !ok || v != 10 {
		t.Errorf("missing item 1=>10: %s", hmap.String())
	} else if v, ok := hmap.Get(collidingKey{2}); !ok || v != 20 {
		t.Errorf("missing item 2=>20: %s", hmap.String())
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_HashMap(t *testing.T, items []uint) {
	gmap := initGoMap(items)
	hmap := NewMap[testKey, uint](0)
	// Insert items
	for key, val := range gmap {
		hmap.Insert(testKey{key}, val)
	}
	// Sanity check number of unique items
	if hmap.Size() != uint(len(gmap)) {
		t.Errorf("expected %d items, got %d", len(gmap), hmap.Size())
	}
	// Sanity check containership
	for key, val := range gmap {
		if !hmap.ContainsKey(testKey{key}) {
			t.Errorf("missing key %d: %s", key, hmap.String())
		} else if v, ok := hmap.Get(testKey{key}); !ok {
			t.Errorf("missing item %d=>%d: %s", key, val, hmap.String())
		} else if v != val {
			t.Errorf("expecting %d=>%d, got %d=>%d: %s", key, val, key, v, hmap.String())
		}
	}
}

func initGoMap(items []uint) map[uint]uint {
	gmap := make(map[uint]uint, len(items))
	//
	for i, item := range items {
		gmap[item] = uint(i)
	}
	//
	return gmap
}

func generateRandomUints(n uint, m uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = uint(rand.Intn(int(m)))
	}
	//
	return items
}

type testKey struct {
	key uint
}

func (p testKey) Equals(other testKey) bool {
	return p.key == other.key
}

func (p testKey) Hash() uint64 {
	return Combine(0, uint64(p.key))
}

// collidingKey hashes every key to the same bucket.
type collidingKey struct {
	key uint
}

func (p collidingKey) Equals(other collidingKey) bool {
	return p.key == other.key
}

func (p collidingKey) Hash() uint64 {
	return 42
}
