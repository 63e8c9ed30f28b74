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

package semver

import (
	"slices"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two versions per semantic-versioning
// precedence: -1 if a < b, 0 if a == b, 1 if a > b.
//
// The numeric triple is compared first. At an equal triple, a release
// version (no prerelease label) ranks strictly above the same version with
// a prerelease label. Two prerelease labels are compared identifier by
// identifier: numeric identifiers compare numerically and rank below
// alphanumeric identifiers; alphanumeric identifiers compare in ASCII
// order; when one label is a prefix of the other, the longer label ranks
// higher. The resulting order is total.
func Compare(a, b Version) int {
	if c := compareInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareInt(a.Patch, b.Patch); c != 0 {
		return c
	}
	return comparePrerelease(a.Prerelease, b.Prerelease)
}

// SortDescending stable-sorts versions in place, highest first.
// An empty slice is a no-op.
func SortDescending(versions []Version) {
	slices.SortStableFunc(versions, func(a, b Version) int {
		return Compare(b, a)
	})
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease orders prerelease labels. The empty label (a release)
// ranks above any non-empty label.
func comparePrerelease(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}

	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if c := compareIdentifier(aParts[i], bParts[i]); c != 0 {
			return c
		}
	}

	// Equal prefix: the label with more identifiers ranks higher
	// (1.0.0-alpha < 1.0.0-alpha.1).
	return compareInt(len(aParts), len(bParts))
}

// compareIdentifier orders a single dot-separated prerelease identifier.
// Numeric identifiers compare numerically and always rank below
// alphanumeric ones.
func compareIdentifier(a, b string) int {
	aNum, aErr := strconv.Atoi(a)
	bNum, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		return compareInt(aNum, bNum)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
