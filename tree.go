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

// Package arbor implements a mutable, arbitrary-arity in-memory tree.
//
// The tree owns all of its nodes and stores them in a generational slot
// map, so every insertion grants a stable opaque key that identifies the
// inserted value in constant time.  Keys stay valid until their node is
// removed, directly or through the cascading removal of an ancestor;
// afterwards they report absence instead of aliasing a later occupant of
// the recycled slot.
//
// All operations are synchronous and assume a single logical owner; the
// tree performs no internal locking.  Every failure of a public
// operation (an absent key, an invalid parent, a non-subset reorder
// request) is reported through an ok-bool result and leaves the tree
// completely unchanged.
package arbor

import "github.com/9rum/arbor/slot"

// Key identifies a single node in a Tree.  The zero Key is never granted
// and always reports absence.
type Key = slot.Key

// node is the per-node record: the stored value, the parent key (zero
// for the root), the ordered set of child keys and the denormalized
// depth.  The depth of the root is 0 and every structural move keeps
// depth(node) == depth(parent)+1 for all other nodes.
type node[V any] struct {
	value    V
	parent   Key
	children keySet
	depth    int
}

// Tree is a mutable, arbitrary-arity tree holding values of type V.
//
// A Tree must not be mutated concurrently, nor iterated while being
// mutated; callers own synchronization.
type Tree[V any] struct {
	rootKey Key
	nodes   *slot.Map[node[V]]
}

// New creates a new empty tree.
func New[V any]() *Tree[V] {
	return WithCapacity[V](0)
}

// WithCapacity creates a new empty tree with space preallocated for the
// given number of nodes.
func WithCapacity[V any](capacity int) *Tree[V] {
	return &Tree[V]{
		nodes: slot.WithCapacity[node[V]](capacity),
	}
}

// Contains reports whether the given key refers to a live node in this
// tree.  It is safe to call with any key, including the zero Key, keys
// granted by other trees and keys of previously removed nodes.
func (t *Tree[V]) Contains(key Key) bool {
	return t.nodes.Contains(key)
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool {
	return t.nodes.Len() == 0
}

// Len returns the number of nodes currently in the tree.
func (t *Tree[V]) Len() int {
	return t.nodes.Len()
}

// RootKey returns the key of the root node.  The second return value is
// false if the tree is empty.
func (t *Tree[V]) RootKey() (Key, bool) {
	return t.rootKey, !t.rootKey.IsZero()
}

// InsertRoot inserts a new root value.  If the tree already contains a
// root, the entire previous tree is discarded first, invalidating every
// outstanding key.
func (t *Tree[V]) InsertRoot(value V) Key {
	return t.InsertRootWithCapacity(value, 0)
}

// InsertRootWithCapacity inserts a new root value with space
// preallocated for the given number of direct children.  If the tree
// already contains a root, the entire previous tree is discarded first,
// invalidating every outstanding key.
func (t *Tree[V]) InsertRootWithCapacity(value V, capacity int) Key {
	if !t.rootKey.IsZero() {
		t.Clear()
	}

	rootKey := t.nodes.Insert(node[V]{
		value:    value,
		children: newKeySet(capacity),
	})
	t.rootKey = rootKey

	return rootKey
}

// Insert inserts a new value as the last child of the node referred to
// by parentKey.  If parentKey does not refer to a live node in this
// tree, the second return value is false and the tree is unchanged.
func (t *Tree[V]) Insert(value V, parentKey Key) (Key, bool) {
	return t.InsertWithCapacity(value, parentKey, 0)
}

// InsertWithCapacity inserts a new value as the last child of the node
// referred to by parentKey, with space preallocated for the given number
// of direct children.  If parentKey does not refer to a live node in
// this tree, the second return value is false and the tree is unchanged.
func (t *Tree[V]) InsertWithCapacity(value V, parentKey Key, capacity int) (Key, bool) {
	parent, ok := t.nodes.Get(parentKey)
	if !ok {
		return Key{}, false
	}
	depth := parent.depth + 1

	key := t.nodes.Insert(node[V]{
		value:    value,
		parent:   parentKey,
		children: newKeySet(capacity),
		depth:    depth,
	})

	// Inserting may have grown the arena, so the parent pointer must be
	// fetched again before being mutated.
	parent, _ = t.nodes.Get(parentKey)
	parent.children.insert(key)

	return key, true
}

// Remove removes the node referred to by the given key together with its
// entire subtree and returns the removed node's value.  Removing the
// root empties the tree.  If the key does not refer to a live node, the
// second return value is false and the tree is unchanged.
func (t *Tree[V]) Remove(key Key) (V, bool) {
	return t.RemoveWithHint(key, 0)
}

// RemoveWithHint is Remove with a hint for the number of descendants of
// the removed node.  The hint only sizes the scratch traversal buffer
// and has no effect on the result; pass 0 if no hint is available.
func (t *Tree[V]) RemoveWithHint(key Key, sizeHint int) (value V, ok bool) {
	if key == t.rootKey && !key.IsZero() {
		root, _ := t.nodes.Get(key)
		value, ok = root.value, true
		t.Clear()
		return
	}

	removed, ok := t.nodes.Delete(key)
	if !ok {
		return
	}

	if sizeHint <= 0 {
		sizeHint = t.nodes.Len()
	}
	toVisit := make([]Key, 0, sizeHint)
	toVisit = append(toVisit, removed.children.keys...)

	for index := len(toVisit) - 1; 0 <= index; index = len(toVisit) - 1 {
		descendant := toVisit[index]
		toVisit = toVisit[:index]

		n, _ := t.nodes.Delete(descendant)
		toVisit = append(toVisit, n.children.keys...)
	}

	parent, _ := t.nodes.Get(removed.parent)
	parent.children.remove(key)

	return removed.value, true
}

// Clear removes every node from the tree, invalidating all outstanding
// keys.  The allocated storage is kept for reuse.
func (t *Tree[V]) Clear() {
	t.rootKey = Key{}
	t.nodes.Clear()
}

// Node is a read-only view of a single node.
type Node[V any] struct {
	// Value is a copy of the stored value.
	Value V

	// Parent is the key of the parent node.  It is the zero Key iff
	// the node is the root.
	Parent Key

	// Children holds the keys of the direct children in insertion
	// order.  The slice is a copy; mutating it does not affect the
	// tree.
	Children []Key

	// Depth is the number of ancestors between the node and the root.
	Depth int
}

// NodeMut is a view of a single node granting mutable access to the
// stored value.
type NodeMut[V any] struct {
	// Value points at the stored value.  The pointer stays valid only
	// until the next mutation of the tree.
	Value *V

	// Parent is the key of the parent node.  It is the zero Key iff
	// the node is the root.
	Parent Key

	// Children holds the keys of the direct children in insertion
	// order.  The slice is a copy; mutating it does not affect the
	// tree.
	Children []Key

	// Depth is the number of ancestors between the node and the root.
	Depth int
}

// Get returns a read-only view of the node referred to by the given key.
// The second return value is false if the key does not refer to a live
// node in this tree.
func (t *Tree[V]) Get(key Key) (Node[V], bool) {
	n, ok := t.nodes.Get(key)
	if !ok {
		return Node[V]{}, false
	}
	return Node[V]{
		Value:    n.value,
		Parent:   n.parent,
		Children: n.children.copied(),
		Depth:    n.depth,
	}, true
}

// GetMut returns a view of the node referred to by the given key
// granting mutable access to its value.  The second return value is
// false if the key does not refer to a live node in this tree.
func (t *Tree[V]) GetMut(key Key) (NodeMut[V], bool) {
	n, ok := t.nodes.Get(key)
	if !ok {
		return NodeMut[V]{}, false
	}
	return NodeMut[V]{
		Value:    &n.value,
		Parent:   n.parent,
		Children: n.children.copied(),
		Depth:    n.depth,
	}, true
}

// Set replaces the value stored at the given key and returns the
// previous value.  The second return value is false if the key does not
// refer to a live node in this tree.
func (t *Tree[V]) Set(key Key, value V) (previous V, ok bool) {
	n, ok := t.nodes.Get(key)
	if !ok {
		return
	}
	previous = n.value
	n.value = value
	return previous, true
}
