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

// ReorderChildren replaces the child order of the node referred to by
// the given key with the sequence returned by reorder.
//
// reorder receives a read-only snapshot of the current child keys in
// insertion order and must return a subset of them; it must not mutate
// the tree.  Duplicate keys in the returned sequence collapse to their
// first occurrence.  If the returned sequence contains any key that is
// not currently a child of the node, ReorderChildren returns false and
// the tree is left unchanged.
//
// Every current child omitted from the returned sequence is removed from
// the tree together with its entire subtree, so this operation doubles
// as "keep and reorder these children, drop everything else".
func (t *Tree[V]) ReorderChildren(key Key, reorder func(children []Key) []Key) bool {
	n, ok := t.nodes.Get(key)
	if !ok {
		return false
	}

	reordered := reorder(n.children.copied())

	next := newKeySet(len(reordered))
	for _, childKey := range reordered {
		if !n.children.contains(childKey) {
			return false
		}
		next.insert(childKey)
	}

	toRemove := make([]Key, 0, n.children.len()-next.len())
	for _, childKey := range n.children.keys {
		if !next.contains(childKey) {
			toRemove = append(toRemove, childKey)
		}
	}

	for index := len(toRemove) - 1; 0 <= index; index = len(toRemove) - 1 {
		descendant := toRemove[index]
		toRemove = toRemove[:index]

		removed, _ := t.nodes.Delete(descendant)
		toRemove = append(toRemove, removed.children.keys...)
	}

	n.children = next
	return true
}
