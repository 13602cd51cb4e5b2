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

// Package treetest converts between a plain labeled description of a
// tree and a live arbor.Tree, so tests can declare tree shapes literally
// and compare the shapes that operations produce.
//
// A description labels every node with a caller-chosen ID.  Building a
// description yields the live tree together with an ID-to-key map, since
// keys are only granted at insertion time; snapshotting a live tree
// turns it back into a description using the inverse map.
package treetest

import (
	"fmt"

	"github.com/9rum/arbor"
)

// Node is a labeled description of a single node and its children.
type Node[K comparable, V any] struct {
	ID       K
	Value    V
	Children []*Node[K, V]
}

// N constructs a description node whose value equals its ID, the common
// case in table-driven tests.
func N[K comparable](id K, children ...*Node[K, K]) *Node[K, K] {
	return &Node[K, K]{ID: id, Value: id, Children: children}
}

// Fixture couples a live tree with the mapping between description IDs
// and the keys the tree granted for them.
type Fixture[K comparable, V any] struct {
	Tree *arbor.Tree[V]
	keys map[K]arbor.Key
}

// Build materializes the given description into a live tree, inserting
// the root first and then every child in declared order.  A nil root
// yields an empty tree.  Build panics if the description reuses an ID.
func Build[K comparable, V any](root *Node[K, V]) *Fixture[K, V] {
	fixture := &Fixture[K, V]{
		Tree: arbor.New[V](),
		keys: make(map[K]arbor.Key),
	}
	if root == nil {
		return fixture
	}

	rootKey := fixture.Tree.InsertRoot(root.Value)
	fixture.Record(root.ID, rootKey)

	type frame struct {
		node      *Node[K, V]
		parentKey arbor.Key
	}
	pending := make([]frame, 0, len(root.Children))
	for index := len(root.Children) - 1; 0 <= index; index-- {
		pending = append(pending, frame{node: root.Children[index], parentKey: rootKey})
	}

	for index := len(pending) - 1; 0 <= index; index = len(pending) - 1 {
		current := pending[index]
		pending = pending[:index]

		key, ok := fixture.Tree.Insert(current.node.Value, current.parentKey)
		if !ok {
			panic("treetest: parent vanished during build")
		}
		fixture.Record(current.node.ID, key)

		for child := len(current.node.Children) - 1; 0 <= child; child-- {
			pending = append(pending, frame{node: current.node.Children[child], parentKey: key})
		}
	}

	return fixture
}

// Key returns the key granted for the given ID.  Unknown IDs yield the
// zero key, which every tree operation reports as absent.
func (f *Fixture[K, V]) Key(id K) arbor.Key {
	return f.keys[id]
}

// Snapshot converts the live tree back into a description, walking the
// tree from the root through the child orders.  It panics if the tree
// holds a node whose key was never recorded, or if a child's parent
// back-pointer disagrees with the walk; both mean the tree and the
// fixture have diverged.
func (f *Fixture[K, V]) Snapshot() *Node[K, V] {
	rootKey, ok := f.Tree.RootKey()
	if !ok {
		return nil
	}

	inverse := make(map[arbor.Key]K, len(f.keys))
	for id, key := range f.keys {
		inverse[key] = id
	}

	return f.snapshot(inverse, rootKey, arbor.Key{})
}

func (f *Fixture[K, V]) snapshot(inverse map[arbor.Key]K, key, parentKey arbor.Key) *Node[K, V] {
	n, ok := f.Tree.Get(key)
	if !ok {
		panic(fmt.Sprintf("treetest: key %v not in tree", key))
	}
	if n.Parent != parentKey {
		panic(fmt.Sprintf("treetest: parent of %v is %v, reached from %v", key, n.Parent, parentKey))
	}

	id, ok := inverse[key]
	if !ok {
		panic(fmt.Sprintf("treetest: key %v was never recorded", key))
	}

	description := &Node[K, V]{ID: id, Value: n.Value}
	for _, childKey := range n.Children {
		description.Children = append(description.Children, f.snapshot(inverse, childKey, key))
	}

	return description
}

// Record registers the key granted for a newly inserted ID, so later
// snapshots can label the node.  It panics if the ID is already taken.
func (f *Fixture[K, V]) Record(id K, key arbor.Key) {
	if _, ok := f.keys[id]; ok {
		panic(fmt.Sprintf("treetest: duplicate ID %v", id))
	}
	f.keys[id] = key
}
