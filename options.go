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

import "github.com/sphaso/patchwork/internal/config"

// Option configures the behavior of the hunk-building functions in this package.
type Option = config.Option

// Context sets the number of matching elements to include as leading and trailing context around
// each hunk returned by [Hunks]. Negative values are clamped to 0. The default is 3, matching the
// unified-diff ecosystem's convention.
func Context(n int) Option {
	return func(cfg *config.Config) {
		cfg.Context = max(0, n)
	}
}
