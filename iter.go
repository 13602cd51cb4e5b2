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

// Keys returns the keys of all nodes currently in the tree.  The order
// is unspecified; in particular it is not depth-first, breadth-first or
// sorted.
func (t *Tree[V]) Keys() []Key {
	keys := make([]Key, 0, t.nodes.Len())
	t.nodes.Range(func(key Key, _ *node[V]) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn with a read-only view of every node in the tree until
// fn returns false.  The iteration order is unspecified.  The tree must
// not be mutated during the iteration.
func (t *Tree[V]) Range(fn func(key Key, node Node[V]) bool) {
	t.nodes.Range(func(key Key, n *node[V]) bool {
		return fn(key, Node[V]{
			Value:    n.value,
			Parent:   n.parent,
			Children: n.children.copied(),
			Depth:    n.depth,
		})
	})
}

// RangeMut calls fn with the key and a pointer to the stored value of
// every node in the tree until fn returns false, granting mutable access
// to the values only.  The iteration order is unspecified.  The tree
// structure must not be mutated during the iteration.
func (t *Tree[V]) RangeMut(fn func(key Key, value *V) bool) {
	t.nodes.Range(func(key Key, n *node[V]) bool {
		return fn(key, &n.value)
	})
}
