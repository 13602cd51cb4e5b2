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

// Builder stages the shape of a tree before any tree exists.
//
// Building a Tree directly requires threading both the tree and the
// parent keys through every function that wants to add to it.  A Builder
// instead records (value, parent-position) pairs using plain positional
// indices, so tree-shaped results can be assembled and returned by
// functions that never see a Tree, then materialized in a single pass
// with Finish.
//
// Position 0 always refers to the root staged by PushRoot; every Push
// returns the position of the value it staged.
type Builder[V any] struct {
	staged  bool
	root    V
	entries []entry[V]
}

// entry is a staged value together with the position of its parent;
// parent -1 denotes the root.
type entry[V any] struct {
	value  V
	parent int
}

// PushRoot stages the root value, discarding anything staged before, and
// returns its position.
func (b *Builder[V]) PushRoot(value V) int {
	b.staged = true
	b.root = value
	b.entries = b.entries[:0]
	return 0
}

// Push stages a new value as a child of the value at parentPosition and
// returns its position.
//
// Push panics if no root has been staged yet or if parentPosition does
// not refer to a previously staged value; both are programmer errors.
func (b *Builder[V]) Push(value V, parentPosition int) int {
	if !b.staged {
		panic("arbor: push before root")
	}
	b.entries = append(b.entries, entry[V]{
		value:  value,
		parent: toParent(parentPosition, len(b.entries)),
	})
	return len(b.entries)
}

// Extend stages the entire contents of another builder as a subtree
// under the value at parentPosition.  The other builder's root becomes a
// child of that value, and its descendants keep their relative shape.
//
// If the other builder has nothing staged, Extend is a no-op.  If this
// builder has nothing staged, it takes over the other builder's staged
// contents wholesale.
func (b *Builder[V]) Extend(other Builder[V], parentPosition int) {
	if !other.staged {
		return
	}
	if !b.staged {
		*b = other
		b.entries = append([]entry[V](nil), other.entries...)
		return
	}

	offset := len(b.entries)

	b.entries = append(b.entries, entry[V]{
		value:  other.root,
		parent: toParent(parentPosition, offset),
	})
	for _, staged := range other.entries {
		parent := offset
		if 0 <= staged.parent {
			parent = staged.parent + offset + 1
		}
		b.entries = append(b.entries, entry[V]{value: staged.value, parent: parent})
	}
}

// Finish materializes the staged shape into a Tree, inserting the staged
// values in dependency order.  An empty builder yields an empty tree.
func (b *Builder[V]) Finish() *Tree[V] {
	if !b.staged {
		return New[V]()
	}

	tree := WithCapacity[V](len(b.entries) + 1)
	rootKey := tree.InsertRoot(b.root)

	keys := make([]Key, 0, len(b.entries))
	for _, staged := range b.entries {
		parentKey := rootKey
		if 0 <= staged.parent {
			parentKey = keys[staged.parent]
		}
		key, _ := tree.Insert(staged.value, parentKey)
		keys = append(keys, key)
	}

	return tree
}

// toParent converts a caller-facing position into an entry index, with
// -1 denoting the root.  length is the number of entries staged so far.
func toParent(position, length int) int {
	switch {
	case position == 0:
		return -1
	case 0 < position && position <= length:
		return position - 1
	default:
		panic("arbor: parent position out of range")
	}
}
