// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package patchwork

// ApplyTree folds changes into old and returns the reconstructed tree. For any old and new that
// share the same overall shape at every level except where a SequenceChange, Added/Removed, or
// NodeAdded/NodeRemoved change intervenes, ApplyTree(old, DiffTree(old, new)) reproduces new.
//
// A change whose path or kind doesn't match the shape of the tree it's folded into is a
// programmer-logic error in the caller (for instance, a SequenceChange addressed at a path that
// resolves to a Leaf) and ApplyTree panics rather than trying to recover from it.
func ApplyTree[P comparable](old Node[P], changes []Change[P]) Node[P] {
	cur := old
	for _, c := range changes {
		cur = applyChange(cur, c.Path, c.Kind)
	}
	return cur
}

func applyChange[P comparable](node Node[P], path []PathSegment, kind ChangeKind[P]) Node[P] {
	if len(path) == 0 {
		return applyAtNode(node, kind)
	}
	if node.Kind != MapKind {
		panic("patchwork: change path does not match tree shape: non-empty path at a non-map node")
	}
	seg := path[0]
	if seg.Kind != KeySegment {
		panic("patchwork: change path does not match tree shape: expected a map key segment")
	}

	newMap := make(map[string]Node[P], len(node.Map))
	for k, v := range node.Map {
		newMap[k] = v
	}
	if len(path) > 1 {
		newMap[seg.Key] = applyChange(newMap[seg.Key], path[1:], kind)
	} else {
		switch kind.Op {
		case Added, ModifiedLeaf:
			newMap[seg.Key] = Leaf(kind.Leaf)
		case NodeAdded:
			newMap[seg.Key] = kind.SubNode
		case Removed, NodeRemoved:
			delete(newMap, seg.Key)
		case SequenceChange:
			newMap[seg.Key] = applyAtNode(newMap[seg.Key], kind)
		default:
			panic("patchwork: invalid change kind for a map key")
		}
	}
	return Node[P]{Kind: MapKind, Map: newMap}
}

// applyAtNode handles a change whose path has been fully consumed: it applies directly to node
// itself, which covers both the ordinary Sequence/Leaf cases and the root-level type-mismatch pair
// (NodeRemoved followed by NodeAdded at the empty path).
func applyAtNode[P comparable](node Node[P], kind ChangeKind[P]) Node[P] {
	switch kind.Op {
	case SequenceChange:
		if node.Kind != SequenceKind {
			panic("patchwork: change path does not match tree shape: SequenceChange at a non-sequence node")
		}
		return rebuildSequence(kind.Edits)
	case ModifiedLeaf:
		if node.Kind != LeafKind {
			panic("patchwork: change path does not match tree shape: ModifiedLeaf at a non-leaf node")
		}
		return Leaf(kind.Leaf)
	case NodeAdded:
		return kind.SubNode
	case NodeRemoved:
		// Always paired with a NodeAdded change at the same path; leave node untouched until that
		// change arrives.
		return node
	default:
		panic("patchwork: invalid change kind at an empty path")
	}
}

func rebuildSequence[P comparable](edits []Edit[Node[P]]) Node[P] {
	items := make([]Node[P], 0, len(edits))
	for _, e := range edits {
		if e.Op != Delete {
			items = append(items, e.Val)
		}
	}
	return Node[P]{Kind: SequenceKind, Seq: items}
}
