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
	"errors"
	"fmt"
)

// ErrInvalidVersion is returned when a string cannot be coerced into a
// semantic version. It is fatal only when the string is the explicit
// computation target (an override tag or the version being incremented);
// candidate tags that fail to coerce are silently skipped instead.
var ErrInvalidVersion = errors.New("invalid semantic version")

// Version represents a semantic version: a numeric major.minor.patch triple
// plus an optional prerelease label (dot-separated identifiers, e.g. "beta.1").
// A Version is an immutable value; Increment produces a new Version rather
// than mutating its input.
type Version struct {
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
}

// NewVersion creates a release Version (no prerelease label) with the
// specified major, minor, and patch values.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// String returns the bare version string without the "v" prefix,
// e.g. "1.2.3" or "1.2.3-beta.1".
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		return base + "-" + v.Prerelease
	}
	return base
}

// Tag returns the canonical tag form of the version with the "v" prefix,
// e.g. "v1.2.3" or "v1.2.3-beta.1".
func (v Version) Tag() string {
	return "v" + v.String()
}

// IsPrerelease reports whether the version carries a prerelease label.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// IsValid reports whether all numeric components are non-negative.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0
}

// Parse coerces a raw tag string into a Version. It accepts the same inputs
// as Normalize ("1.2.3", "v1.2.3", "refs/tags/v1.2.3-rc.1", ...) but returns
// an error wrapping ErrInvalidVersion instead of a boolean, for callers
// where a non-version string is fatal rather than filterable.
func Parse(raw string) (Version, error) {
	v, ok := coerce(raw)
	if !ok {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}
	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}
