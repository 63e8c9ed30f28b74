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
	"strconv"
	"strings"
)

// Rule selects which component of a Version an increment bumps.
type Rule string

const (
	// RuleMajor bumps the major component and zeroes minor and patch.
	RuleMajor Rule = "major"
	// RuleMinor bumps the minor component and zeroes patch.
	RuleMinor Rule = "minor"
	// RulePatch bumps the patch component.
	RulePatch Rule = "patch"
	// RulePrerelease advances the prerelease label per the Policy.
	RulePrerelease Rule = "prerelease"
)

// IsValid reports whether the rule is one of the four supported bump rules.
// Increment treats any other value as a patch bump; callers may want to
// warn before relying on that fallback.
func (r Rule) IsValid() bool {
	switch r {
	case RuleMajor, RuleMinor, RulePatch, RulePrerelease:
		return true
	default:
		return false
	}
}

// SupportedRules returns the supported bump rule names.
func SupportedRules() []string {
	return []string{
		string(RuleMajor),
		string(RuleMinor),
		string(RulePatch),
		string(RulePrerelease),
	}
}

// DefaultPrereleaseIdentifier is the prerelease label root used when no
// custom identifier is configured.
const DefaultPrereleaseIdentifier = "prerelease"

// Policy governs how the prerelease rule behaves. Identifier is the
// prerelease label root (e.g. "beta"); Enabled controls whether a version
// without a matching prerelease label starts a new one or falls through
// to a patch bump.
type Policy struct {
	Identifier string
	Enabled    bool
}

// Increment applies a bump rule to a version and returns the new version.
// It is a pure function: cur is never mutated and identical inputs always
// produce identical outputs.
//
// For the prerelease rule:
//   - if cur already carries a prerelease label containing pol.Identifier,
//     the label's trailing numeric dot-segment is incremented; a
//     non-numeric trailing segment gets a new ".1" segment appended;
//   - otherwise, if pol.Enabled, the label becomes "{Identifier}.1" with
//     the numeric triple unchanged;
//   - otherwise the call behaves as a patch bump.
//
// A rule outside the four supported values also behaves as a patch bump.
func Increment(cur Version, rule Rule, pol Policy) Version {
	switch rule {
	case RuleMajor:
		return Version{Major: cur.Major + 1}
	case RuleMinor:
		return Version{Major: cur.Major, Minor: cur.Minor + 1}
	case RulePrerelease:
		if cur.Prerelease != "" && strings.Contains(cur.Prerelease, pol.Identifier) {
			return Version{
				Major:      cur.Major,
				Minor:      cur.Minor,
				Patch:      cur.Patch,
				Prerelease: advanceLabel(cur.Prerelease),
			}
		}
		if pol.Enabled {
			return Version{
				Major:      cur.Major,
				Minor:      cur.Minor,
				Patch:      cur.Patch,
				Prerelease: pol.Identifier + ".1",
			}
		}
		return Version{Major: cur.Major, Minor: cur.Minor, Patch: cur.Patch + 1}
	default:
		// RulePatch and the deliberate fallback for unknown rules.
		return Version{Major: cur.Major, Minor: cur.Minor, Patch: cur.Patch + 1}
	}
}

// advanceLabel increments the trailing numeric dot-segment of a prerelease
// label ("beta.1" -> "beta.2"), or appends "1" when the trailing segment
// is not numeric ("beta" -> "beta.1").
func advanceLabel(label string) string {
	parts := strings.Split(label, ".")
	last := parts[len(parts)-1]
	if n, err := strconv.Atoi(last); err == nil {
		parts[len(parts)-1] = strconv.Itoa(n + 1)
	} else {
		parts = append(parts, "1")
	}
	return strings.Join(parts, ".")
}
