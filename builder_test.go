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

package arbor_test

import (
	"testing"

	"github.com/9rum/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// values walks the built tree from the root and returns parent-value to
// child-values edges, which is enough to pin the staged shape.
func edges(t *testing.T, tree *arbor.Tree[int]) map[int][]int {
	t.Helper()

	out := make(map[int][]int)
	tree.Range(func(_ arbor.Key, node arbor.Node[int]) bool {
		children := make([]int, 0, len(node.Children))
		for _, childKey := range node.Children {
			child, ok := tree.Get(childKey)
			require.True(t, ok)
			children = append(children, child.Value)
		}
		out[node.Value] = children
		return true
	})
	return out
}

func TestBuilderEmpty(t *testing.T) {
	var builder arbor.Builder[int]

	tree := builder.Finish()
	assert.True(t, tree.IsEmpty())
}

func TestBuilderFinish(t *testing.T) {
	var builder arbor.Builder[int]

	rootPosition := builder.PushRoot(0)
	assert.Equal(t, 0, rootPosition)

	builder.Push(1, rootPosition)
	second := builder.Push(2, rootPosition)
	third := builder.Push(3, second)
	builder.Push(4, third)

	tree := builder.Finish()

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, map[int][]int{
		0: {1, 2},
		1: {},
		2: {3},
		3: {4},
		4: {},
	}, edges(t, tree))

	rootKey, ok := tree.RootKey()
	require.True(t, ok)
	root, _ := tree.Get(rootKey)
	assert.Equal(t, 0, root.Value)
}

func TestBuilderPushRootResets(t *testing.T) {
	var builder arbor.Builder[int]

	rootPosition := builder.PushRoot(0)
	builder.Push(1, rootPosition)

	rootPosition = builder.PushRoot(10)
	builder.Push(11, rootPosition)

	tree := builder.Finish()
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, map[int][]int{10: {11}, 11: {}}, edges(t, tree))
}

func TestBuilderExtend(t *testing.T) {
	var subtree arbor.Builder[int]
	subtreeRoot := subtree.PushRoot(2)
	position := subtree.Push(3, subtreeRoot)
	subtree.Push(4, position)

	var builder arbor.Builder[int]
	rootPosition := builder.PushRoot(0)
	position = builder.Push(1, rootPosition)
	builder.Extend(subtree, position)

	tree := builder.Finish()

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, map[int][]int{
		0: {1},
		1: {2},
		2: {3},
		3: {4},
		4: {},
	}, edges(t, tree))
}

func TestBuilderExtendIntoEmpty(t *testing.T) {
	var subtree arbor.Builder[int]
	subtreeRoot := subtree.PushRoot(0)
	subtree.Push(1, subtreeRoot)

	var builder arbor.Builder[int]
	builder.Extend(subtree, 0)

	tree := builder.Finish()
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, map[int][]int{0: {1}, 1: {}}, edges(t, tree))
}

func TestBuilderExtendEmptyOther(t *testing.T) {
	var builder arbor.Builder[int]
	rootPosition := builder.PushRoot(0)
	builder.Push(1, rootPosition)

	builder.Extend(arbor.Builder[int]{}, rootPosition)

	tree := builder.Finish()
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, map[int][]int{0: {1}, 1: {}}, edges(t, tree))
}

func TestBuilderMisuse(t *testing.T) {
	assert.Panics(t, func() {
		var builder arbor.Builder[int]
		builder.Push(1, 0)
	})

	assert.Panics(t, func() {
		var builder arbor.Builder[int]
		builder.PushRoot(0)
		builder.Push(1, 7)
	})

	assert.Panics(t, func() {
		var builder arbor.Builder[int]
		builder.PushRoot(0)
		builder.Push(1, -3)
	})

	assert.Panics(t, func() {
		var subtree arbor.Builder[int]
		subtree.PushRoot(2)

		var builder arbor.Builder[int]
		builder.PushRoot(0)
		builder.Extend(subtree, -1)
	})
}

func TestBuilderExtendIntoEmptyDetaches(t *testing.T) {
	// Restaging the root keeps the entry storage allocated, so the spare
	// capacity would be shared if Extend handed it over without copying.
	var subtree arbor.Builder[int]
	subtreeRoot := subtree.PushRoot(0)
	subtree.Push(1, subtreeRoot)
	subtree.Push(2, subtreeRoot)

	subtreeRoot = subtree.PushRoot(0)
	subtree.Push(1, subtreeRoot)

	var builder arbor.Builder[int]
	builder.Extend(subtree, 0)

	// Staging onto either builder must not leak into the other.
	subtree.Push(2, subtreeRoot)
	builder.Push(3, 0)

	assert.Equal(t, map[int][]int{0: {1, 2}, 1: {}, 2: {}}, edges(t, subtree.Finish()))
	assert.Equal(t, map[int][]int{0: {1, 3}, 1: {}, 3: {}}, edges(t, builder.Finish()))
}
