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
	"fmt"

	"github.com/9rum/arbor"
)

func ExampleNew() {
	tree := arbor.New[int]()
	fmt.Println(tree.IsEmpty())
	// Output: true
}

func ExampleTree_Insert() {
	tree := arbor.New[int]()

	rootKey := tree.InsertRoot(0)
	childKey1, _ := tree.Insert(1, rootKey)
	childKey2, _ := tree.Insert(2, rootKey)
	childKey3, _ := tree.Insert(3, rootKey)

	root, _ := tree.Get(rootKey)
	fmt.Println(root.Children[0] == childKey1)
	fmt.Println(root.Children[1] == childKey2)
	fmt.Println(root.Children[2] == childKey3)

	child, _ := tree.Get(childKey2)
	fmt.Println(child.Value, child.Parent == rootKey, child.Depth)
	// Output:
	// true
	// true
	// true
	// 2 true 1
}

func ExampleTree_Rebase() {
	tree := arbor.New[int]()

	rootKey := tree.InsertRoot(0)
	childKey1, _ := tree.Insert(1, rootKey)
	childKey2, _ := tree.Insert(2, rootKey)

	tree.Insert(3, childKey1)
	childKey4, _ := tree.Insert(4, childKey1)
	tree.Insert(5, childKey4)
	tree.Insert(6, childKey2)
	tree.Insert(7, childKey2)

	// Move the subtree rooted at 4 underneath 2; it becomes a sibling
	// of 6 and 7.
	fmt.Println(tree.Rebase(childKey4, childKey2))

	node, _ := tree.Get(childKey4)
	fmt.Println(node.Parent == childKey2, node.Depth)
	// Output:
	// true
	// true 2
}

func ExampleTree_GetMut() {
	tree := arbor.New[int]()

	rootKey := tree.InsertRoot(0)
	childKey, _ := tree.Insert(1, rootKey)

	node, _ := tree.GetMut(childKey)
	*node.Value = 100

	child, _ := tree.Get(childKey)
	fmt.Println(child.Value)
	// Output: 100
}
