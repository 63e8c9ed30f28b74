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

package resolver

import (
	"strings"

	"github.com/gitops-tools/tagger/pkg/errors"
	"github.com/gitops-tools/tagger/pkg/semver"
)

// initialTag is the base tag used when a repository has no version tags yet.
const initialTag = "v1.0.0"

// suffixPrereleaseLiteral is the one suffix value that is never appended.
// Historical external contract: a suffix equal to "prerelease" is a no-op.
const suffixPrereleaseLiteral = "prerelease"

// Decoration holds optional prefix and suffix text applied to the computed
// tag. Decoration is purely textual: it is applied after all version
// arithmetic and is never parsed back into the version model.
type Decoration struct {
	Prefix string
	Suffix string
}

// Result is the outcome of tag resolution: the final tag string and the
// bare version value reported alongside it.
type Result struct {
	Tag     string `json:"tag" yaml:"tag"`
	Version string `json:"version" yaml:"version"`
}

// Resolve determines the next tag for a repository.
//
// When override is non-empty it bypasses all version computation and is used
// verbatim as the base tag; it must still coerce to a semantic version, and
// failing that is the one place bad version syntax is fatal. Otherwise every
// existing tag is normalized (non-versions are silently discarded), the
// highest surviving version is incremented per rule and policy, and an empty
// candidate set yields the literal initial tag "v1.0.0".
//
// The reported version is the base tag with a single leading "v" stripped.
// A suffix decorates the tag only — the version value never carries it — and
// the literal suffix "prerelease" is skipped entirely. A prefix decorates
// both the tag and the version.
func Resolve(existing []string, override string, rule semver.Rule, pol semver.Policy, dec Decoration) (Result, error) {
	base, err := baseTag(existing, override, rule, pol)
	if err != nil {
		return Result{}, err
	}

	version := strings.TrimPrefix(base, "v")
	tag := base

	if dec.Suffix != "" && dec.Suffix != suffixPrereleaseLiteral {
		tag += "-" + dec.Suffix
	}
	if dec.Prefix != "" {
		tag = dec.Prefix + "-" + tag
		version = dec.Prefix + "-" + version
	}

	return Result{Tag: tag, Version: version}, nil
}

func baseTag(existing []string, override string, rule semver.Rule, pol semver.Policy) (string, error) {
	if override != "" {
		if _, err := semver.Parse(override); err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidRequest, "invalid override tag", err)
		}
		return override, nil
	}

	versions := make([]semver.Version, 0, len(existing))
	for _, raw := range existing {
		if v, ok := normalizeCandidate(raw); ok {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		return initialTag, nil
	}

	semver.SortDescending(versions)
	next := semver.Increment(versions[0], rule, pol)
	return next.Tag(), nil
}

// normalizeCandidate parses one candidate tag; a miss means "not a version
// tag", never an error.
func normalizeCandidate(raw string) (semver.Version, bool) {
	v, err := semver.Parse(raw)
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}
