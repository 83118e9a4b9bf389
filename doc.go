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

// Package patchwork computes, represents, serializes, and applies differences between two values.
//
// It covers two related problems: diffing two flat sequences of comparable elements into a minimal
// edit script ([Diff], [DiffFunc], [DiffLines]), and diffing two arbitrarily nested tree-shaped
// values made of leaves, ordered sequences, and keyed maps into a structural change list
// ([DiffTree]). Both kinds of output can be folded into hunks with bounded context ([Hunks]),
// applied back onto an original value to reconstruct the target ([Apply], [ApplyTree]), and, for
// sequence diffs, serialized to and parsed from the classical unified-diff text format by the
// sibling [github.com/sphaso/patchwork/unifieddiff] package.
//
// Performance: the sequence engine is a direct, unoptimized implementation of Myers' algorithm with
// O((N+M)·D) time and memory, where N and M are the input lengths and D is the length of the edit
// script. There are no heuristics that trade optimality for speed on large inputs; every edit script
// this package returns is of minimal length.
package patchwork
