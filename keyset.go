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

package arbor

// keySet is an insertion-ordered set of keys.  It backs the child list
// of every node: iteration follows insertion order, membership tests are
// O(1) and removal preserves the order of the remaining keys.
type keySet struct {
	keys  []Key
	index map[Key]struct{}
}

func newKeySet(capacity int) keySet {
	return keySet{
		keys:  make([]Key, 0, capacity),
		index: make(map[Key]struct{}, capacity),
	}
}

func (s *keySet) len() int {
	return len(s.keys)
}

func (s *keySet) contains(key Key) bool {
	_, ok := s.index[key]
	return ok
}

// insert appends the key if it is not already present and reports
// whether the set changed.
func (s *keySet) insert(key Key) bool {
	if s.contains(key) {
		return false
	}
	s.keys = append(s.keys, key)
	s.index[key] = struct{}{}
	return true
}

// remove deletes the key, shifting the keys behind it to preserve the
// order of the remaining ones.  It reports whether the key was present.
func (s *keySet) remove(key Key) bool {
	if !s.contains(key) {
		return false
	}
	for position, candidate := range s.keys {
		if candidate == key {
			s.keys = append(s.keys[:position], s.keys[position+1:]...)
			break
		}
	}
	delete(s.index, key)
	return true
}

// replace substitutes next for prev in place, keeping prev's position in
// the order.  prev must be present and next must not.
func (s *keySet) replace(prev, next Key) {
	for position, candidate := range s.keys {
		if candidate == prev {
			s.keys[position] = next
			break
		}
	}
	delete(s.index, prev)
	s.index[next] = struct{}{}
}

// copied returns a copy of the keys in insertion order.
func (s *keySet) copied() []Key {
	keys := make([]Key, len(s.keys))
	copy(keys, s.keys)
	return keys
}
