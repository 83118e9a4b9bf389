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

package unifieddiff_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/sphaso/patchwork"
	"github.com/sphaso/patchwork/internal/refpatch"
	"github.com/sphaso/patchwork/unifieddiff"
)

func TestToPatch(t *testing.T) {
	hunks := []patchwork.Hunk[string]{
		{
			OldStart: 0,
			NewStart: 0,
			Changes: []patchwork.Edit[string]{
				{Op: patchwork.Equal, Val: "hello"},
				{Op: patchwork.Delete, Val: "world"},
				{Op: patchwork.Insert, Val: "rust"},
				{Op: patchwork.Equal, Val: "foo"},
			},
		},
	}
	want := "--- old\n+++ new\n@@ -1,3 +1,3 @@\n hello\n-world\n+rust\n foo\n"
	if got := unifieddiff.ToPatch(hunks, "", ""); got != want {
		t.Errorf("ToPatch(...) = %q, want %q", got, want)
	}
}

func TestToPatchEmpty(t *testing.T) {
	if got := unifieddiff.ToPatch(nil, "", ""); got != "" {
		t.Errorf("ToPatch(nil, ...) = %q, want empty string", got)
	}
}

func TestToPatchNames(t *testing.T) {
	hunks := []patchwork.Hunk[string]{
		{OldStart: 0, NewStart: 0, Changes: []patchwork.Edit[string]{{Op: patchwork.Delete, Val: "x"}}},
	}
	got := unifieddiff.ToPatch(hunks, "a.txt", "b.txt")
	if !strings.HasPrefix(got, "--- a.txt\n+++ b.txt\n") {
		t.Errorf("ToPatch(...) = %q, want headers naming a.txt/b.txt", got)
	}
}

func TestFromPatch(t *testing.T) {
	patch := "--- old\n+++ new\n@@ -1,3 +1,3 @@\n hello\n-world\n+rust\n foo\n"
	want := []patchwork.Hunk[string]{
		{
			OldStart: 0,
			NewStart: 0,
			Changes: []patchwork.Edit[string]{
				{Op: patchwork.Equal, Val: "hello"},
				{Op: patchwork.Delete, Val: "world"},
				{Op: patchwork.Insert, Val: "rust"},
				{Op: patchwork.Equal, Val: "foo"},
			},
		},
	}
	got, err := unifieddiff.FromPatch(patch)
	if err != nil {
		t.Fatalf("FromPatch(...) returned error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromPatch(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPatchEmpty(t *testing.T) {
	got, err := unifieddiff.FromPatch("")
	if err != nil {
		t.Fatalf("FromPatch(\"\") returned error: %v", err)
	}
	if got != nil {
		t.Errorf("FromPatch(\"\") = %v, want nil", got)
	}
}

func TestFromPatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		patch   string
		wantErr patchwork.ErrorKind
	}{
		{
			name:    "missing-headers",
			patch:   "@@ -1,1 +1,1 @@\n hi\n",
			wantErr: patchwork.InvalidFormat,
		},
		{
			name:    "missing-plus-plus-plus",
			patch:   "--- old\nnot a header\n@@ -1,1 +1,1 @@\n hi\n",
			wantErr: patchwork.InvalidFormat,
		},
		{
			name:    "bad-token",
			patch:   "--- old\n+++ new\n@@ -1,1 +1,1 @@\n*oops\n",
			wantErr: patchwork.UnexpectedToken,
		},
		{
			name:    "edit-before-header",
			patch:   "--- old\n+++ new\n hello\n",
			wantErr: patchwork.InvalidFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unifieddiff.FromPatch(tt.patch)
			if err == nil {
				t.Fatalf("FromPatch(%q) succeeded, want error", tt.patch)
			}
			var perr *patchwork.PatchError
			if !errors.As(err, &perr) {
				t.Fatalf("FromPatch(%q) returned %T, want *patchwork.PatchError", tt.patch, err)
			}
			if perr.Kind != tt.wantErr {
				t.Errorf("FromPatch(%q) error kind = %v, want %v", tt.patch, perr.Kind, tt.wantErr)
			}
		})
	}
}

// TestRoundTrip checks property 8: from_patch(to_patch(hs)) == hs.
func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		old := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,4}`)).Draw(t, "old")
		new := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,4}`)).Draw(t, "new")
		hunks := patchwork.Hunks(patchwork.Diff(old, new))

		patch := unifieddiff.ToPatch(hunks, "", "")
		got, err := unifieddiff.FromPatch(patch)
		if err != nil {
			t.Fatalf("FromPatch(ToPatch(hunks)) returned error: %v", err)
		}
		if diff := cmp.Diff(hunks, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestHeaderLayout checks property 9: every "@@ ..." header occupies its own line.
func TestHeaderLayout(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		old := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,4}`)).Draw(t, "old")
		new := rapid.SliceOf(rapid.StringMatching(`[a-z]{0,4}`)).Draw(t, "new")
		hunks := patchwork.Hunks(patchwork.Diff(old, new))
		patch := unifieddiff.ToPatch(hunks, "", "")
		for _, line := range strings.Split(patch, "\n") {
			if strings.Contains(line, "@@") && !strings.HasPrefix(line, "@@") {
				t.Fatalf("'@@' header not alone on its line: %q", line)
			}
		}
	})
}

// TestAgainstUnixPatch cross-checks ToPatch's output against the system patch(1) tool.
func TestAgainstUnixPatch(t *testing.T) {
	old := "hello\nworld\nfoo"
	new := "hello\nrust\nfoo"
	hunks := patchwork.Hunks(patchwork.DiffLines(old, new))

	got, err := refpatch.Apply(old, hunks)
	if err != nil {
		t.Fatalf("refpatch.Apply(...) returned error: %v", err)
	}
	// This package doesn't emit a "\ No newline at end of file" marker, so patch(1) assumes every
	// hunk line is newline-terminated; trim before comparing since the trailing newline isn't what's
	// under test here.
	if strings.TrimRight(got, "\n") != strings.TrimRight(new, "\n") {
		t.Errorf("refpatch.Apply(...) = %q, want %q", got, new)
	}
}
