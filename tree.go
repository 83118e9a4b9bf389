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

import "fmt"

// NodeKind identifies which case of [Node] is populated.
type NodeKind int

const (
	// LeafKind marks a Node holding a single value of type P.
	LeafKind NodeKind = iota
	// SequenceKind marks a Node holding an ordered list of child Nodes.
	SequenceKind
	// MapKind marks a Node holding a string-keyed mapping of child Nodes.
	MapKind
)

func (k NodeKind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case SequenceKind:
		return "sequence"
	case MapKind:
		return "map"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Node is the uniform tree shape [DiffTree] and [ApplyTree] operate on: a leaf value, an ordered
// sequence of child nodes, or a string-keyed map of child nodes. P is any comparable leaf payload
// type; this package does not support floating-point leaves since they lack total equality.
type Node[P comparable] struct {
	Kind NodeKind
	Leaf P
	Seq  []Node[P]
	Map  map[string]Node[P]
}

// Leaf wraps a single value as a leaf Node.
func Leaf[P comparable](v P) Node[P] {
	return Node[P]{Kind: LeafKind, Leaf: v}
}

// Sequence wraps an ordered list of child nodes as a Node. items is not retained; the returned
// Node holds its own copy.
func Sequence[P comparable](items []Node[P]) Node[P] {
	seq := make([]Node[P], len(items))
	copy(seq, items)
	return Node[P]{Kind: SequenceKind, Seq: seq}
}

// Map wraps a string-keyed mapping of child nodes as a Node. m is not retained; the returned Node
// holds its own copy.
func Map[P comparable](m map[string]Node[P]) Node[P] {
	cp := make(map[string]Node[P], len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Node[P]{Kind: MapKind, Map: cp}
}

// Diffable is the capability a type provides to participate in structural diffing: converting
// itself to the uniform [Node] representation (ToNode) and reconstructing itself back out of one
// (FromNode), the to_node/from_node pair spec.md requires, with the law
// FromNode(ToNode(x)) == x. As with [encoding.TextUnmarshaler], FromNode takes a pointer receiver
// so it can populate the receiver in place; implementations are expected on *T, not T, which is
// why [MapOf], [SequenceOf], [MapFrom] and [SequenceFrom] below take T and its pointer type as two
// separate type parameters rather than requiring T itself to satisfy Diffable.
type Diffable[P comparable] interface {
	ToNode() Node[P]
	FromNode(Node[P]) error
}

// Primitive wraps a comparable leaf value as a Diffable, the Go shape of the original's blanket
// implementation of the capability for every primitive type (ints, bool, string, ...): the Node
// representation of a primitive is just the value itself, so ToNode/FromNode only cross the Node
// boundary and back.
type Primitive[P comparable] struct {
	V P
}

// ToNode implements [Diffable].
func (p *Primitive[P]) ToNode() Node[P] { return Leaf(p.V) }

// FromNode implements [Diffable].
func (p *Primitive[P]) FromNode(n Node[P]) error {
	if n.Kind != LeafKind {
		return fmt.Errorf("patchwork: Primitive.FromNode: expected a leaf node, got %v", n.Kind)
	}
	p.V = n.Leaf
	return nil
}

// MapOf builds a Map node from a string-keyed map of Diffable values, the common case of "a
// mapping keyed by string" called out as needing the capability in its own right.
func MapOf[P comparable, T any, PT interface {
	*T
	Diffable[P]
}](m map[string]T) Node[P] {
	nodes := make(map[string]Node[P], len(m))
	for k, v := range m {
		nodes[k] = PT(&v).ToNode()
	}
	return Map(nodes)
}

// MapFrom reconstructs the string-keyed map of T values that produced n via [MapOf], the
// from_node half of that capability. It fails if n is not a Map node or if any child's FromNode
// fails.
func MapFrom[P comparable, T any, PT interface {
	*T
	Diffable[P]
}](n Node[P]) (map[string]T, error) {
	if n.Kind != MapKind {
		return nil, fmt.Errorf("patchwork: MapFrom: expected a map node, got %v", n.Kind)
	}
	out := make(map[string]T, len(n.Map))
	for k, child := range n.Map {
		var v T
		if err := PT(&v).FromNode(child); err != nil {
			return nil, fmt.Errorf("patchwork: MapFrom: key %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// SequenceOf builds a Sequence node from an ordered list of Diffable values.
func SequenceOf[P comparable, T any, PT interface {
	*T
	Diffable[P]
}](items []T) Node[P] {
	nodes := make([]Node[P], len(items))
	for i := range items {
		nodes[i] = PT(&items[i]).ToNode()
	}
	return Sequence(nodes)
}

// SequenceFrom reconstructs the ordered list of T values that produced n via [SequenceOf], the
// from_node half of that capability. It fails if n is not a Sequence node or if any element's
// FromNode fails.
func SequenceFrom[P comparable, T any, PT interface {
	*T
	Diffable[P]
}](n Node[P]) ([]T, error) {
	if n.Kind != SequenceKind {
		return nil, fmt.Errorf("patchwork: SequenceFrom: expected a sequence node, got %v", n.Kind)
	}
	out := make([]T, len(n.Seq))
	for i, child := range n.Seq {
		if err := PT(&out[i]).FromNode(child); err != nil {
			return nil, fmt.Errorf("patchwork: SequenceFrom: index %d: %w", i, err)
		}
	}
	return out, nil
}

// SegmentKind identifies which case of [PathSegment] is populated.
type SegmentKind int

const (
	// KeySegment marks a PathSegment naming a map key.
	KeySegment SegmentKind = iota
	// IndexSegment marks a PathSegment naming a sequence index.
	IndexSegment
)

// PathSegment is one step of a [Change]'s path: either a map key or a sequence index.
type PathSegment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// Key builds a map-key path segment.
func Key(k string) PathSegment { return PathSegment{Kind: KeySegment, Key: k} }

// Index builds a sequence-index path segment.
func Index(i int) PathSegment { return PathSegment{Kind: IndexSegment, Index: i} }

func (s PathSegment) String() string {
	switch s.Kind {
	case KeySegment:
		return s.Key
	case IndexSegment:
		return fmt.Sprintf("[%d]", s.Index)
	default:
		return "<invalid path segment>"
	}
}

// ChangeOp identifies which case of [ChangeKind] is populated.
type ChangeOp int

const (
	// Added marks a leaf inserted at a map key.
	Added ChangeOp = iota
	// Removed marks a leaf removed from a map key.
	Removed
	// ModifiedLeaf marks a leaf value replaced in place.
	ModifiedLeaf
	// NodeAdded marks a non-leaf subtree inserted at a map key.
	NodeAdded
	// NodeRemoved marks a non-leaf subtree removed from a map key.
	NodeRemoved
	// SequenceChange marks a full edit script applied to a sequence.
	SequenceChange
)

// ChangeKind is the payload of a [Change]: a tagged variant selected by Op.
//
//   - Added / Removed: Leaf holds the added (or, for Removed, the removed) value.
//   - ModifiedLeaf: OldLeaf and Leaf hold the value before and after.
//   - NodeAdded / NodeRemoved: SubNode holds the added (or removed) subtree.
//   - SequenceChange: Edits holds the Myers edit script over child nodes.
type ChangeKind[P comparable] struct {
	Op      ChangeOp
	Leaf    P
	OldLeaf P
	SubNode Node[P]
	Edits   []Edit[Node[P]]
}

// Change is a single structural difference between two trees, addressed by path.
type Change[P comparable] struct {
	Path []PathSegment
	Kind ChangeKind[P]
}
