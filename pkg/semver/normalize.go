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
	"regexp"
	"strconv"
	"strings"
)

// refPrefix is the fully-qualified git reference prefix stripped from
// tag names that arrive in "refs/tags/v1.2.3" form.
const refPrefix = "refs/tags/"

// tagPattern matches a coercible version head: three dot-separated numeric
// components, optionally followed by a prerelease separator ("-" or ".")
// and a free-form identifier. The match is anchored at the start only;
// anything after a coercible head is ignored.
var tagPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:[-.]?([0-9A-Za-z.-]+))?`)

// Normalize coerces a raw tag name into the canonical
// "v{major}.{minor}.{patch}[-{prerelease}]" form. It strips a leading
// "refs/tags/" segment and a single leading "v", re-emits the numeric
// components as integers (dropping leading zeros), and reattaches any
// prerelease identifier verbatim, always separated by a single "-".
//
// A raw string that does not contain a coercible version head yields
// ("", false), never an error: callers treat it as "not a version tag"
// and skip it.
func Normalize(raw string) (string, bool) {
	v, ok := coerce(raw)
	if !ok {
		return "", false
	}
	return v.Tag(), true
}

// coerce is the single parsing path behind Normalize and Parse.
func coerce(raw string) (Version, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, refPrefix)
	s = strings.TrimPrefix(s, "v")

	m := tagPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, false
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, false
	}

	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: m[4]}, true
}
