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
	"github.com/sphaso/patchwork/internal/config"
	"github.com/sphaso/patchwork/internal/hunk"
)

// Hunk is a contiguous region of an edit script with bounded leading/trailing context.
//
// OldStart and NewStart are the indices in old and new, respectively, of the first element this
// hunk applies to, counting from the start of any leading context.
type Hunk[T any] struct {
	OldStart, NewStart int
	Changes            []Edit[T]
}

// OldCount returns the number of elements this hunk consumes from the original sequence: every
// Equal and Delete change.
func (h Hunk[T]) OldCount() int {
	n := 0
	for _, c := range h.Changes {
		if c.Op != Insert {
			n++
		}
	}
	return n
}

// NewCount returns the number of elements this hunk produces in the new sequence: every Equal and
// Insert change.
func (h Hunk[T]) NewCount() int {
	n := 0
	for _, c := range h.Changes {
		if c.Op != Delete {
			n++
		}
	}
	return n
}

// Hunks groups an edit script into hunks, carrying up to [Context] matching elements as leading and
// trailing context around each contiguous change region. Two changes separated by fewer matching
// elements than the context window end up in a single hunk; consecutive hunks never overlap. An
// edit script made entirely of Equal edits yields an empty hunk list.
func Hunks[T any](edits []Edit[T], opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts)
	hs := hunk.Build(toMyers(edits), cfg)
	if hs == nil {
		return nil
	}
	out := make([]Hunk[T], len(hs))
	for i, h := range hs {
		out[i] = Hunk[T]{
			OldStart: h.OldStart,
			NewStart: h.NewStart,
			Changes:  fromMyers(h.Changes),
		}
	}
	return out
}
