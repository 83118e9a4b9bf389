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

// Package myers contains an implementation of Myers' algorithm.
//
// Unlike a linear-space divide-and-conquer variant, this package keeps the full forward trace (one
// V array per value of d) so the back-trace can recover the exact path the forward search took.
// This costs O((N+M)·D) memory instead of O(N+M), but it makes the implementation a direct,
// auditable transcription of the greedy algorithm with no heuristics and a single, well-defined
// tie-break rule. Time complexity is O((N+M)·D); there are no shortcuts for large inputs.
//
// First some nomenclature: x and y are the horizontal and vertical coordinates and k is the
// diagonal x-y. A D-path is a path in the edit graph with exactly D non-diagonal edges. The
// algorithm finds, for increasing d, the furthest-reaching point on every diagonal reachable with a
// d-path, until the bottom right corner (N, M) is reached.
//
// # Tie-break
//
// When extending a (d-1)-path to diagonal k, there are two candidate predecessors: diagonal k-1
// (followed by a horizontal edge, i.e. a deletion) and diagonal k+1 (followed by a vertical edge,
// i.e. an insertion). When both are equally good, this implementation always prefers the deletion,
// i.e. the predecessor on k-1. This tie-break is what makes two completely disjoint sequences diff
// as "all insertions, then all deletions" rather than some interleaving, and callers that need a
// reproducible script rely on it.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
