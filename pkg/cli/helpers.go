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

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gitops-tools/tagger/pkg/errors"
	"github.com/gitops-tools/tagger/pkg/semver"
	"github.com/gitops-tools/tagger/pkg/serializer"
)

// Shared flags across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the result to a file instead of stdout",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatYAML),
	}
)

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// parseBoolish interprets the truthy value set used by CI environment
// variables: "1", "true", "yes", and "on" (case-insensitive) are true,
// everything else is false.
func parseBoolish(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// parsePrereleasePolicy maps the prerelease identifier setting to a policy.
// The literals "true" and "false" (case-insensitive) toggle the default
// "prerelease" identifier; any other non-empty value is used as a custom
// identifier with prerelease bumping enabled.
func parsePrereleasePolicy(raw string) semver.Policy {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "", "true":
		return semver.Policy{Identifier: semver.DefaultPrereleaseIdentifier, Enabled: true}
	case "false":
		return semver.Policy{Identifier: semver.DefaultPrereleaseIdentifier, Enabled: false}
	default:
		return semver.Policy{Identifier: trimmed, Enabled: true}
	}
}

// bumpConfig holds the parsed and validated configuration for the bump
// command.
type bumpConfig struct {
	repository   string
	sha          string
	token        string
	userTag      string
	bump         string
	prefix       string
	suffix       string
	prerelease   string
	apiURL       string
	githubOutput string
	fetchAllTags bool
	dryRun       bool
}

func parseBumpConfig(cmd *cli.Command) (*bumpConfig, error) {
	cfg := &bumpConfig{
		repository:   strings.TrimSpace(cmd.String("repository")),
		sha:          strings.TrimSpace(cmd.String("sha")),
		token:        strings.TrimSpace(cmd.String("token")),
		userTag:      strings.TrimSpace(cmd.String("tag")),
		bump:         strings.TrimSpace(cmd.String("bump")),
		prefix:       cmd.String("prefix"),
		suffix:       cmd.String("suffix"),
		prerelease:   cmd.String("prerelease-identifier"),
		apiURL:       strings.TrimSpace(cmd.String("api-url")),
		githubOutput: cmd.String("github-output"),
		fetchAllTags: parseBoolish(cmd.String("fetch-all-tags")),
		dryRun:       parseBoolish(cmd.String("dry-run")),
	}

	if cfg.repository == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "repository is required (set --repository or GITHUB_REPOSITORY)")
	}
	if cfg.sha == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "commit SHA is required (set --sha or GITHUB_SHA)")
	}
	if cfg.token == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "GitHub token is required (set --token or INPUT_GITHUB_TOKEN)")
	}
	return cfg, nil
}
