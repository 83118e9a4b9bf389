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

// Package unifieddiff encodes and decodes hunk lists over string elements in the classical unified
// diff text format used by patch(1) and git diff.
package unifieddiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sphaso/patchwork"
)

const (
	prefixEqual  = ' '
	prefixDelete = '-'
	prefixInsert = '+'
)

// ToPatch renders hunks as a unified diff. oldName and newName, if non-empty, are used as the
// "---"/"+++" file labels; otherwise "old" and "new" are used. An empty hunk list renders to the
// empty string.
func ToPatch(hunks []patchwork.Hunk[string], oldName, newName string) string {
	if len(hunks) == 0 {
		return ""
	}
	if oldName == "" {
		oldName = "old"
	}
	if newName == "" {
		newName = "new"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart+1, h.OldCount(), h.NewStart+1, h.NewCount())
		for _, c := range h.Changes {
			var prefix byte
			switch c.Op {
			case patchwork.Equal:
				prefix = prefixEqual
			case patchwork.Insert:
				prefix = prefixInsert
			case patchwork.Delete:
				prefix = prefixDelete
			}
			b.WriteByte(prefix)
			b.WriteString(c.Val)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FromPatch parses a unified diff produced by [ToPatch] (or a compatible tool) back into a hunk
// list.
//
// Parsing splits the input on "\n" only; a "\r" that precedes it is kept as part of the payload it
// terminates, which is what lets text that uses CRLF line endings round trip through ToPatch and
// FromPatch unchanged.
func FromPatch(s string) ([]patchwork.Hunk[string], error) {
	if s == "" {
		return nil, nil
	}
	lines := strings.Split(s, "\n")
	// strings.Split("a\n", "\n") -> ["a", ""]; drop the trailing empty element produced by a final
	// newline, it isn't a line of the patch.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, newInvalidFormat(0, "patch too short: missing --- and +++ headers")
	}
	if !strings.HasPrefix(lines[0], "---") {
		return nil, newInvalidFormat(0, "expected line to start with '---', got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "+++") {
		return nil, newInvalidFormat(1, "expected line to start with '+++', got %q", lines[1])
	}

	var hunks []patchwork.Hunk[string]
	var current *patchwork.Hunk[string]
	for i := 2; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, "@@") {
			if current != nil {
				hunks = append(hunks, *current)
			}
			oldStart, newStart, err := parseHunkHeader(line)
			if err != nil {
				return nil, &patchwork.PatchError{Kind: patchwork.InvalidFormat, Line: i, Detail: err.Error()}
			}
			current = &patchwork.Hunk[string]{OldStart: oldStart, NewStart: newStart}
			continue
		}
		if current == nil {
			return nil, newInvalidFormat(i, "edit line before any '@@' hunk header")
		}
		if line == "" {
			return nil, newUnexpectedToken(i, "empty line is not a valid edit line")
		}
		var op patchwork.Op
		switch line[0] {
		case prefixEqual:
			op = patchwork.Equal
		case prefixInsert:
			op = patchwork.Insert
		case prefixDelete:
			op = patchwork.Delete
		default:
			return nil, newUnexpectedToken(i, "line starts with %q, want one of ' ', '+', '-'", line[0])
		}
		current.Changes = append(current.Changes, patchwork.Edit[string]{Op: op, Val: line[1:]})
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks, nil
}

// parseHunkHeader strips the "@@ " / " @@" delimiters from a hunk header line, splits on the space
// between the two halves, and parses each half's leading signed integer up to the comma, e.g.
// "@@ -1,3 +1,4 @@" -> (0, 0) for the 0-based old and new start positions.
func parseHunkHeader(line string) (oldStart, newStart int, err error) {
	line = strings.TrimPrefix(line, "@@ ")
	line = strings.TrimSuffix(line, " @@")
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed hunk header: %q", line)
	}
	old, err := parseRange(fields[0], '-')
	if err != nil {
		return 0, 0, fmt.Errorf("malformed hunk header: %w", err)
	}
	new, err := parseRange(fields[1], '+')
	if err != nil {
		return 0, 0, fmt.Errorf("malformed hunk header: %w", err)
	}
	return old - 1, new - 1, nil
}

func parseRange(field string, want byte) (int, error) {
	if len(field) == 0 || field[0] != want {
		return 0, fmt.Errorf("expected %q prefix, got %q", want, field)
	}
	field = field[1:]
	if i := strings.IndexByte(field, ','); i >= 0 {
		field = field[:i]
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid line number %q: %w", field, err)
	}
	return n, nil
}

func newInvalidFormat(line int, format string, args ...any) *patchwork.PatchError {
	return &patchwork.PatchError{Kind: patchwork.InvalidFormat, Line: line, Detail: fmt.Sprintf(format, args...)}
}

func newUnexpectedToken(line int, format string, args ...any) *patchwork.PatchError {
	return &patchwork.PatchError{Kind: patchwork.UnexpectedToken, Line: line, Detail: fmt.Sprintf(format, args...)}
}
