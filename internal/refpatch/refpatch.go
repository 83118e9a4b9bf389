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

// Package refpatch cross-checks this module's own Hunk[string] values against the system patch(1)
// tool, an independent, battle-tested implementation of the unified diff format.
//
// This package is only for testing.
package refpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sphaso/patchwork"
	"github.com/sphaso/patchwork/unifieddiff"
)

// Apply serializes hunks with unifieddiff.ToPatch and runs the system patch(1) tool to apply the
// result to orig, returning the resulting text. It is used by tests to confirm that hunks produced
// by this module are interoperable with the standard unified diff tooling, not as a production
// code path.
//
// A failure of the system patch(1) tool itself (malformed hunks, context that doesn't apply) is
// reported as a *[patchwork.PatchError] of kind [patchwork.InvalidFormat], the same error this module's own
// [patchwork.Apply] would raise for an equivalent mismatch; failures to drive the external tool
// (missing temp directory, unreadable binary) are plain errors, since they aren't part of the
// patch format this package exists to validate.
func Apply(orig string, hunks []patchwork.Hunk[string]) (string, error) {
	diff := unifieddiff.ToPatch(hunks, "", "")
	if diff == "" {
		return orig, nil
	}

	dir, err := os.MkdirTemp("", "patch-*")
	if err != nil {
		return "", fmt.Errorf("refpatch: failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	patchfile := filepath.Join(dir, "patch")
	origfile := filepath.Join(dir, "orig")
	outfile := filepath.Join(dir, "out")

	if err := os.WriteFile(patchfile, []byte(diff), 0o644); err != nil {
		return "", fmt.Errorf("refpatch: failed to write patch file: %v", err)
	}
	if err := os.WriteFile(origfile, []byte(orig), 0o644); err != nil {
		return "", fmt.Errorf("refpatch: failed to write orig file: %v", err)
	}

	cmd := exec.Command("patch", "-u", "-i", patchfile, "-o", outfile, origfile)
	if out, err := cmd.CombinedOutput(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", fmt.Errorf("refpatch: failed to run patch: %v", err)
		}
		return "", &patchwork.PatchError{
			Kind: patchwork.InvalidFormat,
			Line: -1,
			Detail: fmt.Sprintf("system patch(1) rejected hunks (%s): %v\n%s",
				strings.Join(cmd.Args, " "), err, out),
		}
	}

	got, err := os.ReadFile(outfile)
	if err != nil {
		return "", fmt.Errorf("refpatch: failed to read outfile: %v", err)
	}
	return string(got), nil
}
