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

// Relation enumerates the possible relationships between two keys in a
// tree.
type Relation int

const (
	// Same means the two keys are the exact same.
	Same Relation = iota

	// Ancestral means one key lies on the other's parent chain.
	Ancestral

	// Siblings means neither key is an ancestor of the other; they
	// are related only through a common ancestor.
	Siblings
)

// Relationship describes how two keys in a tree relate to each other.
type Relationship struct {
	// Relation selects which of the remaining fields are meaningful.
	Relation Relation

	// Ancestor and Descendant are set when Relation is Ancestral: the
	// ancestor is found by walking up the descendant's parent chain.
	Ancestor   Key
	Descendant Key

	// CommonAncestor is set when Relation is Siblings.  It is the
	// lowest ancestor shared by both keys.
	CommonAncestor Key
}

// GetRelationship determines the relationship between the nodes referred
// to by the two given keys.  The second return value is false if either
// key does not refer to a live node in this tree.
//
// The relationship is symmetric: swapping the arguments reports the same
// ancestor/descendant pair and the same common ancestor.  The cost is
// O(depth(key1) + depth(key2)).
func (t *Tree[V]) GetRelationship(key1, key2 Key) (Relationship, bool) {
	if !t.nodes.Contains(key1) || !t.nodes.Contains(key2) {
		return Relationship{}, false
	}

	if key1 == key2 {
		return Relationship{Relation: Same}, true
	}

	// Walk key1's parent chain root-ward.  Finding key2 on it settles
	// the ancestral case; otherwise remember every visited ancestor.
	visited := make(map[Key]struct{})
	for current := t.parentOf(key1); !current.IsZero(); current = t.parentOf(current) {
		if current == key2 {
			return Relationship{
				Relation:   Ancestral,
				Ancestor:   key2,
				Descendant: key1,
			}, true
		}
		visited[current] = struct{}{}
	}

	// Walk key2's parent chain root-ward.  Since key1's chain was
	// recorded in root-ward order and this walk also proceeds
	// root-ward, the first ancestor found in the visited set is the
	// lowest common ancestor.
	for current := t.parentOf(key2); !current.IsZero(); current = t.parentOf(current) {
		if current == key1 {
			return Relationship{
				Relation:   Ancestral,
				Ancestor:   key1,
				Descendant: key2,
			}, true
		}
		if _, ok := visited[current]; ok {
			return Relationship{
				Relation:       Siblings,
				CommonAncestor: current,
			}, true
		}
	}

	// Both parent chains terminate at the root, which key1's walk has
	// visited, so key2's walk cannot fall through.
	panic("arbor: parent chains never met")
}

// parentOf returns the parent key of the node referred to by the given
// key, which must be live.
func (t *Tree[V]) parentOf(key Key) Key {
	n, _ := t.nodes.Get(key)
	return n.parent
}
