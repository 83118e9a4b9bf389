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

import "sort"

// DiffTree recursively compares old and new and returns a flat, path-addressed list of the
// structural differences between them.
//
// Dispatch at each pair of nodes visited:
//   - Leaf vs Leaf: nothing if equal, else a single ModifiedLeaf change.
//   - Sequence vs Sequence: Myers' algorithm runs over the child nodes; an all-Equal script emits
//     nothing, anything else emits a single SequenceChange carrying the full script. This package
//     never descends into sequence elements individually: once a sequence differs, the edit script
//     is the complete record of the difference at that path.
//   - Map vs Map: every key present in either map is visited; keys in both recurse, keys in only
//     one side produce an Added/Removed (leaf) or NodeAdded/NodeRemoved (subtree) change.
//   - Mismatched kinds (e.g. a map replaced by a sequence): two changes at the same path, a
//     NodeRemoved for the old subtree followed by a NodeAdded for the new one.
//
// Map keys are visited in sorted order, so the returned list is deterministic regardless of the
// iteration order of Go's native maps.
func DiffTree[P comparable](old, new Node[P]) []Change[P] {
	return diffNode(nil, old, new)
}

func diffNode[P comparable](path []PathSegment, old, new Node[P]) []Change[P] {
	if old.Kind != new.Kind {
		return []Change[P]{
			{Path: clonePath(path), Kind: ChangeKind[P]{Op: NodeRemoved, SubNode: old}},
			{Path: clonePath(path), Kind: ChangeKind[P]{Op: NodeAdded, SubNode: new}},
		}
	}

	switch old.Kind {
	case LeafKind:
		if old.Leaf == new.Leaf {
			return nil
		}
		return []Change[P]{{Path: clonePath(path), Kind: ChangeKind[P]{Op: ModifiedLeaf, OldLeaf: old.Leaf, Leaf: new.Leaf}}}

	case SequenceKind:
		edits := DiffFunc(old.Seq, new.Seq, nodesEqual)
		for _, e := range edits {
			if e.Op != Equal {
				return []Change[P]{{Path: clonePath(path), Kind: ChangeKind[P]{Op: SequenceChange, Edits: edits}}}
			}
		}
		return nil

	case MapKind:
		keys := make(map[string]struct{}, len(old.Map)+len(new.Map))
		for k := range old.Map {
			keys[k] = struct{}{}
		}
		for k := range new.Map {
			keys[k] = struct{}{}
		}
		sorted := make([]string, 0, len(keys))
		for k := range keys {
			sorted = append(sorted, k)
		}
		sort.Strings(sorted)

		var changes []Change[P]
		for _, k := range sorted {
			childPath := appendSeg(path, Key(k))
			ov, oIn := old.Map[k]
			nv, nIn := new.Map[k]
			switch {
			case oIn && nIn:
				changes = append(changes, diffNode(childPath, ov, nv)...)
			case oIn && !nIn:
				changes = append(changes, removalChange(childPath, ov))
			case !oIn && nIn:
				changes = append(changes, additionChange(childPath, nv))
			}
		}
		return changes

	default:
		panic("patchwork: invalid node kind")
	}
}

func removalChange[P comparable](path []PathSegment, v Node[P]) Change[P] {
	if v.Kind == LeafKind {
		return Change[P]{Path: path, Kind: ChangeKind[P]{Op: Removed, Leaf: v.Leaf}}
	}
	return Change[P]{Path: path, Kind: ChangeKind[P]{Op: NodeRemoved, SubNode: v}}
}

func additionChange[P comparable](path []PathSegment, v Node[P]) Change[P] {
	if v.Kind == LeafKind {
		return Change[P]{Path: path, Kind: ChangeKind[P]{Op: Added, Leaf: v.Leaf}}
	}
	return Change[P]{Path: path, Kind: ChangeKind[P]{Op: NodeAdded, SubNode: v}}
}

// nodesEqual is a deep structural equality check for Node[P]; Node can't use == directly because
// it embeds a map.
func nodesEqual[P comparable](a, b Node[P]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case LeafKind:
		return a.Leaf == b.Leaf
	case SequenceKind:
		if len(a.Seq) != len(b.Seq) {
			return false
		}
		for i := range a.Seq {
			if !nodesEqual(a.Seq[i], b.Seq[i]) {
				return false
			}
		}
		return true
	case MapKind:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for k, av := range a.Map {
			bv, ok := b.Map[k]
			if !ok || !nodesEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// appendSeg returns path with seg appended, without risking aliasing the caller's backing array
// across sibling recursive calls.
func appendSeg(path []PathSegment, seg PathSegment) []PathSegment {
	out := make([]PathSegment, len(path)+1)
	copy(out, path)
	out[len(path)] = seg
	return out
}

func clonePath(path []PathSegment) []PathSegment {
	if path == nil {
		return nil
	}
	out := make([]PathSegment, len(path))
	copy(out, path)
	return out
}
