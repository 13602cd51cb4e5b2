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

// Rebase relocates the subtree rooted at key to become a child of the
// node referred to by newParentKey.
//
// Rebasing works for any pair of live keys, including rebasing a node
// onto one of its own descendants: the descendant's subtree is first
// rotated out of the node's lineage so that the result is still a tree.
// Rebasing the root onto a descendant makes that descendant the new
// root.
//
// Rebase returns false without touching the tree if either key does not
// refer to a live node or if both keys are the same; otherwise it
// performs the relocation and returns true.
func (t *Tree[V]) Rebase(key, newParentKey Key) bool {
	return t.RebaseWithHint(key, newParentKey, 0)
}

// RebaseWithHint is Rebase with a hint for the number of descendants of
// the relocated node.  The hint only sizes the scratch buffer used to
// re-stamp node depths and has no effect on the result; pass 0 if no
// hint is available.
func (t *Tree[V]) RebaseWithHint(key, newParentKey Key, sizeHint int) bool {
	relationship, ok := t.GetRelationship(key, newParentKey)
	if !ok {
		return false
	}

	switch relationship.Relation {
	case Same:
		return false
	case Ancestral:
		if relationship.Descendant == newParentKey {
			t.rebaseOntoDescendant(key, newParentKey, sizeHint)
		} else {
			t.rebaseDetached(key, newParentKey, sizeHint)
		}
		return true
	default:
		t.rebaseDetached(key, newParentKey, sizeHint)
		return true
	}
}

// rebaseDetached moves key under newParentKey when newParentKey is not a
// descendant of key, i.e. when newParentKey is an ancestor of key or the
// two are siblings.  In both cases key cannot be the root, so it has a
// current parent to be detached from.
func (t *Tree[V]) rebaseDetached(key, newParentKey Key, sizeHint int) {
	n, _ := t.nodes.Get(key)
	currentParentKey := n.parent

	if currentParentKey != newParentKey {
		n.parent = newParentKey

		currentParent, _ := t.nodes.Get(currentParentKey)
		currentParent.children.remove(key)

		newParent, _ := t.nodes.Get(newParentKey)
		newParent.children.insert(key)

		if depth := newParent.depth + 1; depth != n.depth {
			t.restampDepths(key, depth, sizeHint)
		}
	}
}

// rebaseOntoDescendant moves key under one of its own descendants.  The
// subtree rooted at the descendant is rotated out of key's lineage to
// take key's place (under key's parent, or as the new root if key was
// the root), and key becomes a child of the descendant.
func (t *Tree[V]) rebaseOntoDescendant(key, newParentKey Key, sizeHint int) {
	n, _ := t.nodes.Get(key)
	parentKey := n.parent

	descendant, _ := t.nodes.Get(newParentKey)
	descendantParentKey := descendant.parent

	n.parent = newParentKey
	descendant.parent = parentKey
	descendant.children.insert(key)

	if parentKey.IsZero() {
		t.rootKey = newParentKey
	} else {
		parent, _ := t.nodes.Get(parentKey)
		parent.children.replace(key, newParentKey)
	}

	// The descendant's original parent lies on the path from key to the
	// descendant and is now below the descendant again, via key.
	descendantParent, _ := t.nodes.Get(descendantParentKey)
	descendantParent.children.remove(newParentKey)

	// The descendant took key's place, so its whole subtree (which now
	// includes key) changed its depth reference point.
	depth := 0
	if !parentKey.IsZero() {
		parent, _ := t.nodes.Get(parentKey)
		depth = parent.depth + 1
	}
	t.restampDepths(newParentKey, depth, sizeHint)
}

// restampDepths assigns the given depth to the node referred to by key
// and re-derives the depth of its entire subtree with an iterative
// pre-order walk.  Recursion is avoided since the subtree depth is
// caller-controlled and unbounded.
func (t *Tree[V]) restampDepths(key Key, depth int, sizeHint int) {
	if sizeHint <= 0 {
		sizeHint = t.nodes.Len()
	}

	n, _ := t.nodes.Get(key)
	n.depth = depth

	toVisit := make([]Key, 0, sizeHint)
	toVisit = append(toVisit, key)

	for index := len(toVisit) - 1; 0 <= index; index = len(toVisit) - 1 {
		parentKey := toVisit[index]
		toVisit = toVisit[:index]

		parent, _ := t.nodes.Get(parentKey)
		for _, childKey := range parent.children.keys {
			child, _ := t.nodes.Get(childKey)
			child.depth = parent.depth + 1
			toVisit = append(toVisit, childKey)
		}
	}
}
