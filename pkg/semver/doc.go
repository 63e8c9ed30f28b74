// Copyright (c) 2026, the tagger authors.  All rights reserved.
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

// Package semver implements the semantic-version model used to compute
// the next tag for a repository: tag-name normalization and coercion,
// total-order comparison with prerelease precedence, descending sort,
// and the bump-rule increment.
//
// # Normalization
//
// Tag names arrive in many shapes: "1.2.3", "v1.2.3", "refs/tags/v1.2.3",
// or with a prerelease suffix attached by "-" or ".". Normalize coerces
// all of these into the canonical "v{major}.{minor}.{patch}[-{prerelease}]"
// form and reports false for anything that is not a version tag. Callers
// filtering candidate tags skip non-matches; callers that require a version
// (an explicit override, an increment target) use Parse, which returns
// ErrInvalidVersion instead.
//
// # Ordering
//
// Compare is self-contained and fully specified: the numeric triple first,
// then standard prerelease precedence (a release outranks any prerelease
// of the same triple; numeric prerelease identifiers compare numerically
// and rank below alphanumeric ones). The order is total, so descending
// sort is stable and deterministic.
//
// # Increment
//
// Increment is a pure function over an immutable Version. The prerelease
// rule is governed by a Policy: an existing matching label has its trailing
// numeric segment advanced; otherwise a new "{identifier}.1" label is
// started when the policy is enabled, and a plain patch bump happens when
// it is not. Unknown rules deliberately fall back to a patch bump.
package semver
