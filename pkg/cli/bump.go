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
	"context"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gitops-tools/tagger/pkg/actions"
	"github.com/gitops-tools/tagger/pkg/github"
	"github.com/gitops-tools/tagger/pkg/resolver"
	"github.com/gitops-tools/tagger/pkg/semver"
	"github.com/gitops-tools/tagger/pkg/serializer"
)

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		Aliases:               []string{"run"},
		EnableShellCompletion: true,
		Usage:                 "Compute the next tag from existing repository tags and publish it",
		Description: `Compute the next semantic version tag for a repository and, unless running
in dry-run mode, create it on GitHub.

The command lists the repository's existing tags, discards any that are not
coercible to a semantic version, picks the highest remaining version, and
increments it per the bump rule (major, minor, patch, or prerelease). A
repository with no version tags starts at v1.0.0. An explicit --tag value
bypasses the computation entirely and is published verbatim.

The resolved tag and version are appended to the GitHub Actions output file
(GITHUB_OUTPUT) as "tag=" and "version=" lines, and the result is written to
stdout (or --output) in JSON, YAML, or table format.

# Examples

Compute and publish the next patch tag:
  tagger bump

Preview the next minor tag without creating anything:
  INPUT_IS_DRY_RUN=true INPUT_DEFAULT_BUMP=minor tagger bump

Start or advance a beta prerelease line:
  tagger bump --bump prerelease --prerelease-identifier beta

Publish an explicit tag, skipping computation:
  tagger bump --tag v2.0.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tag",
				Usage:   "Explicit tag to publish, bypassing version computation",
				Sources: cli.EnvVars("INPUT_USER_TAG"),
			},
			&cli.StringFlag{
				Name:    "bump",
				Usage:   "Version component to bump (major, minor, patch, prerelease)",
				Sources: cli.EnvVars("INPUT_DEFAULT_BUMP"),
				Value:   string(semver.RulePatch),
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Text prepended to the tag and version (joined with '-')",
				Sources: cli.EnvVars("INPUT_TAG_PREFIX"),
			},
			&cli.StringFlag{
				Name:    "suffix",
				Usage:   "Text appended to the tag (joined with '-'); never applied to the version",
				Sources: cli.EnvVars("INPUT_TAG_SUFFIX"),
			},
			&cli.StringFlag{
				Name:    "prerelease-identifier",
				Usage:   "Prerelease label root, or true/false to toggle the default \"prerelease\" label",
				Sources: cli.EnvVars("INPUT_PRERELEASEIDENTIFIER"),
				Value:   "true",
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "GitHub API token",
				Sources: cli.EnvVars("INPUT_GITHUB_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "fetch-all-tags",
				Usage:   "Page through every repository tag instead of stopping at the first hundred versions (1/true/yes/on)",
				Sources: cli.EnvVars("INPUT_FETCH_ALL_TAGS"),
			},
			&cli.StringFlag{
				Name:    "dry-run",
				Usage:   "Compute and report the next tag without creating it (1/true/yes/on)",
				Sources: cli.EnvVars("INPUT_IS_DRY_RUN"),
			},
			&cli.StringFlag{
				Name:    "repository",
				Usage:   "Target repository in owner/name form",
				Sources: cli.EnvVars("GITHUB_REPOSITORY"),
			},
			&cli.StringFlag{
				Name:    "sha",
				Usage:   "Commit SHA the new tag points at",
				Sources: cli.EnvVars("GITHUB_SHA"),
			},
			&cli.StringFlag{
				Name:    "github-output",
				Usage:   "GitHub Actions output file path",
				Sources: cli.EnvVars("GITHUB_OUTPUT"),
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "GitHub API base URL",
				Sources: cli.EnvVars("GITHUB_API_URL"),
			},
			outputFlag,
			formatFlag,
		},
		Action: runBump,
	}
}

func runBump(ctx context.Context, cmd *cli.Command) error {
	cfg, err := parseBumpConfig(cmd)
	if err != nil {
		return err
	}

	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	rule := semver.Rule(cfg.bump)
	if !rule.IsValid() {
		slog.Warn("unknown bump rule, falling back to patch",
			"rule", cfg.bump,
			"supported", strings.Join(semver.SupportedRules(), ", "))
		rule = semver.RulePatch
	}
	policy := parsePrereleasePolicy(cfg.prerelease)

	client := github.NewClient(
		github.WithToken(cfg.token),
		github.WithBaseURL(cfg.apiURL),
		github.WithUserAgent(name+"/"+version),
	)

	// An explicit tag bypasses computation, so there is no need to list
	// the repository's existing tags.
	var existing []string
	if cfg.userTag == "" {
		existing, err = client.ListTags(ctx, cfg.repository, cfg.fetchAllTags)
		if err != nil {
			return err
		}
		slog.Debug("listed repository tags",
			"repository", cfg.repository,
			"count", len(existing))
	}

	result, err := resolver.Resolve(existing, cfg.userTag, rule, policy, resolver.Decoration{
		Prefix: cfg.prefix,
		Suffix: cfg.suffix,
	})
	if err != nil {
		return err
	}

	slog.Info("resolved next tag",
		"repository", cfg.repository,
		"tag", result.Tag,
		"version", result.Version,
		"rule", rule,
		"dryRun", cfg.dryRun)

	if cfg.dryRun {
		slog.Info("dry run, skipping tag creation", "tag", result.Tag)
	} else {
		if err := client.CreateRef(ctx, cfg.repository, "refs/tags/"+result.Tag, cfg.sha); err != nil {
			return err
		}
		slog.Info("created tag", "tag", result.Tag, "sha", cfg.sha)
	}

	if err := actions.WriteOutputs(actions.OutputPath(cfg.githubOutput), []actions.Output{
		{Key: "tag", Value: result.Tag},
		{Key: "version", Value: result.Version},
	}); err != nil {
		return err
	}

	writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer writer.Close()
	return writer.Serialize(result)
}
