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

import (
	"strings"

	"github.com/sphaso/patchwork/internal/myers"
)

// Op describes what happened to an element of a sequence diff.
type Op int

const (
	// Equal marks an element present, unchanged, in both old and new.
	Equal Op = Op(myers.Equal)
	// Insert marks an element present only in new.
	Insert Op = Op(myers.Insert)
	// Delete marks an element present only in old.
	Delete Op = Op(myers.Delete)
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "invalid"
	}
}

// Edit is a single step of an edit script: an element tagged with what happened to it.
type Edit[T any] struct {
	Op  Op
	Val T
}

func fromMyers[T any](edits []myers.Edit[T]) []Edit[T] {
	if edits == nil {
		return nil
	}
	out := make([]Edit[T], len(edits))
	for i, e := range edits {
		out[i] = Edit[T]{Op: Op(e.Op), Val: e.Val}
	}
	return out
}

func toMyers[T any](edits []Edit[T]) []myers.Edit[T] {
	if edits == nil {
		return nil
	}
	out := make([]myers.Edit[T], len(edits))
	for i, e := range edits {
		out[i] = myers.Edit[T]{Op: myers.Op(e.Op), Val: e.Val}
	}
	return out
}

// Diff compares old and new and returns a minimal edit script, using == as the equality relation.
//
// The script is computed with a direct, trace-preserving implementation of Myers' algorithm: no
// heuristics, always the shortest possible edit script. When an insertion and a deletion could both
// extend the current path, the deletion is preferred, which is what makes a diff of two completely
// disjoint sequences come out as all insertions followed by all deletions.
func Diff[T comparable](old, new []T) []Edit[T] {
	return fromMyers(myers.Diff(old, new))
}

// DiffFunc compares old and new using eq as the equality relation and returns a minimal edit
// script. See [Diff] for the algorithm used.
func DiffFunc[T any](old, new []T, eq func(a, b T) bool) []Edit[T] {
	return fromMyers(myers.DiffFunc(old, new, eq))
}

// DiffLines splits old and new on "\n" and returns the line-level edit script between them.
//
// Splitting uses a plain "\n" delimiter, not universal-newline handling: a trailing "\r" is kept as
// part of the line it terminates, so diffing and re-joining text that uses CRLF line endings round
// trips.
func DiffLines(old, new string) []Edit[string] {
	return Diff(strings.Split(old, "\n"), strings.Split(new, "\n"))
}
