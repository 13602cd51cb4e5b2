// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package slot implements a generational slot map, an arena granting
// stable opaque keys for the values stored in it.
//
// Each insertion grants a unique key that stays valid until the value is
// deleted.  A slot whose value has been deleted may be reused by a later
// insertion, but the generation counter carried by every key guarantees
// that a stale key never aliases the new occupant; lookups with stale or
// foreign keys simply report absence.
package slot

import "fmt"

// Key identifies a single value in a Map.  The zero Key is never granted
// by any Map and always reports absence.
type Key struct {
	idx uint32
	gen uint32
}

// IsZero reports whether the key is the zero Key.
func (k Key) IsZero() bool {
	return k.gen == 0
}

// String returns a human-readable form of the key for debugging.
func (k Key) String() string {
	return fmt.Sprintf("%dv%d", k.idx, k.gen)
}

type slot[V any] struct {
	value    V
	gen      uint32
	occupied bool
}

// Map is a generational slot map.  It provides O(1) expected-time
// insertion, lookup and deletion, and reuses the storage of deleted
// slots through a free list.
//
// A Map must not be mutated concurrently; callers own synchronization.
type Map[V any] struct {
	slots []slot[V]
	free  []uint32
	count int
}

// New creates a new empty map.
func New[V any]() *Map[V] {
	return WithCapacity[V](0)
}

// WithCapacity creates a new empty map with space preallocated for the
// given number of values.
func WithCapacity[V any](capacity int) *Map[V] {
	return &Map[V]{
		slots: make([]slot[V], 0, capacity),
		free:  nil,
	}
}

// Len returns the number of values currently in the map.
func (m *Map[V]) Len() int {
	return m.count
}

// Contains reports whether the given key refers to a live value in this
// map.  It is safe to call with any key, including the zero Key, keys
// granted by other maps and keys of previously deleted values.
func (m *Map[V]) Contains(key Key) bool {
	if key.IsZero() || int(key.idx) >= len(m.slots) {
		return false
	}
	s := &m.slots[key.idx]
	return s.occupied && s.gen == key.gen
}

// Insert stores the given value and grants a key for it.
func (m *Map[V]) Insert(value V) Key {
	if index := len(m.free) - 1; 0 <= index {
		idx := m.free[index]
		m.free = m.free[:index]

		s := &m.slots[idx]
		s.value = value
		s.occupied = true
		m.count++

		return Key{idx: idx, gen: s.gen}
	}

	m.slots = append(m.slots, slot[V]{value: value, gen: 1, occupied: true})
	m.count++

	return Key{idx: uint32(len(m.slots) - 1), gen: 1}
}

// Get returns a pointer to the value referred to by the given key.  The
// pointer stays valid only until the next mutation of the map.
func (m *Map[V]) Get(key Key) (*V, bool) {
	if !m.Contains(key) {
		return nil, false
	}
	return &m.slots[key.idx].value, true
}

// Delete removes the value referred to by the given key and returns it.
// The slot is recycled under a new generation, so the given key and any
// copies of it become permanently stale.
func (m *Map[V]) Delete(key Key) (value V, ok bool) {
	if !m.Contains(key) {
		return
	}

	s := &m.slots[key.idx]
	value, ok = s.value, true

	var zero V
	s.value = zero
	s.occupied = false
	s.gen++
	m.count--

	m.free = append(m.free, key.idx)

	return
}

// Clear removes every value from the map, invalidating all outstanding
// keys.  The allocated storage is kept for reuse.
func (m *Map[V]) Clear() {
	var zero V
	for idx := range m.slots {
		s := &m.slots[idx]
		if s.occupied {
			s.value = zero
			s.occupied = false
			s.gen++
			m.free = append(m.free, uint32(idx))
		}
	}
	m.count = 0
}

// Range calls fn for every key-value pair in the map until fn returns
// false.  The iteration order is unspecified; in particular it is not
// the insertion order.
func (m *Map[V]) Range(fn func(key Key, value *V) bool) {
	for idx := range m.slots {
		s := &m.slots[idx]
		if s.occupied {
			if !fn(Key{idx: uint32(idx), gen: s.gen}, &s.value) {
				return
			}
		}
	}
}
