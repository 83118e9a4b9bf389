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

// Package hunk contains the internal streaming hunk builder: it groups an edit script into
// contiguous change regions bounded by a configurable amount of leading/trailing context.
package hunk

import (
	"github.com/sphaso/patchwork/internal/config"
	"github.com/sphaso/patchwork/internal/myers"
)

// Hunk is a contiguous region of an edit script, with bounded context around the changes.
type Hunk[T any] struct {
	OldStart, NewStart int
	Changes            []myers.Edit[T]
}

// Build streams edits once and groups them into hunks per cfg.Context.
//
// While no hunk is open, a sliding window of up to cfg.Context trailing Equal edits is kept; it
// is drained into a new hunk's leading context the moment a change is seen. Once a hunk is open,
// it stays open through any Insert/Delete and is only closed after cfg.Context consecutive Equal
// edits have been appended as trailing context, so two changes separated by fewer than
// cfg.Context Equal edits end up in a single hunk. Equal edits taken as trailing context are not
// reused as leading context, so consecutive hunks never overlap.
func Build[T any](edits []myers.Edit[T], cfg config.Config) []Hunk[T] {
	var (
		oldLine, newLine int
		current          *Hunk[T]
		trailingEqual    int
		contextBuf       []myers.Edit[T]
		hunks            []Hunk[T]
	)

	for _, e := range edits {
		if e.Op == myers.Equal {
			if current != nil {
				if trailingEqual < cfg.Context {
					current.Changes = append(current.Changes, e)
					trailingEqual++
				}
				if trailingEqual >= cfg.Context {
					hunks = append(hunks, *current)
					current = nil
				}
			} else {
				contextBuf = append(contextBuf, e)
				if len(contextBuf) > cfg.Context {
					contextBuf = contextBuf[1:]
				}
			}
			oldLine++
			newLine++
			continue
		}

		trailingEqual = 0
		if current != nil {
			current.Changes = append(current.Changes, e)
		} else {
			changes := make([]myers.Edit[T], len(contextBuf), len(contextBuf)+1)
			copy(changes, contextBuf)
			changes = append(changes, e)
			current = &Hunk[T]{
				OldStart: oldLine - len(contextBuf),
				NewStart: newLine - len(contextBuf),
				Changes:  changes,
			}
			contextBuf = nil
		}
		if e.Op == myers.Insert {
			newLine++
		} else {
			oldLine++
		}
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}
