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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitops-tools/tagger/pkg/resolver"
)

// tagServer fakes the two GitHub API endpoints the bump command touches.
type tagServer struct {
	tags       []string
	createdRef string
	createdSHA string
	posts      int
}

func (s *tagServer) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/owner/repo/tags", func(w http.ResponseWriter, r *http.Request) {
		entries := make([]map[string]string, 0, len(s.tags))
		for _, name := range s.tags {
			entries = append(entries, map[string]string{"name": name})
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(entries))
	})
	mux.HandleFunc("POST /repos/owner/repo/git/refs", func(w http.ResponseWriter, r *http.Request) {
		s.posts++
		var req struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		s.createdRef = req.Ref
		s.createdSHA = req.SHA
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"ref":"`+req.Ref+`"}`)
	})
	return mux
}

func runBumpCommand(t *testing.T, srvURL string, extraArgs ...string) (resolver.Result, string) {
	t.Helper()

	dir := t.TempDir()
	githubOutput := filepath.Join(dir, "github_output")
	resultFile := filepath.Join(dir, "result.json")

	args := []string{
		"tagger", "bump",
		"--repository", "owner/repo",
		"--sha", "abc1234",
		"--token", "test-token",
		"--api-url", srvURL,
		"--github-output", githubOutput,
		"--output", resultFile,
		"--format", "json",
	}
	args = append(args, extraArgs...)

	require.NoError(t, New().Run(context.Background(), args))

	data, err := os.ReadFile(resultFile)
	require.NoError(t, err)
	var result resolver.Result
	require.NoError(t, json.Unmarshal(data, &result))

	outputs, err := os.ReadFile(githubOutput)
	require.NoError(t, err)

	return result, string(outputs)
}

func TestBumpCreatesNextPatchTag(t *testing.T) {
	srv := &tagServer{tags: []string{"v1.2.3", "v1.0.0", "not-a-version"}}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	result, outputs := runBumpCommand(t, ts.URL)

	assert.Equal(t, "v1.2.4", result.Tag)
	assert.Equal(t, "1.2.4", result.Version)
	assert.Equal(t, "refs/tags/v1.2.4", srv.createdRef)
	assert.Equal(t, "abc1234", srv.createdSHA)
	assert.Contains(t, outputs, "tag=v1.2.4\n")
	assert.Contains(t, outputs, "version=1.2.4\n")
}

func TestBumpDryRunSkipsCreation(t *testing.T) {
	srv := &tagServer{tags: []string{"v2.0.0"}}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	result, outputs := runBumpCommand(t, ts.URL, "--dry-run", "true", "--bump", "minor")

	assert.Equal(t, "v2.1.0", result.Tag)
	assert.Zero(t, srv.posts, "dry run must not create a reference")
	assert.Contains(t, outputs, "tag=v2.1.0\n")
}

func TestBumpEmptyRepositoryStartsAtInitialTag(t *testing.T) {
	srv := &tagServer{}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	result, _ := runBumpCommand(t, ts.URL, "--dry-run", "1")

	assert.Equal(t, "v1.0.0", result.Tag)
	assert.Equal(t, "1.0.0", result.Version)
}

func TestBumpExplicitTagBypassesListing(t *testing.T) {
	mux := http.NewServeMux()
	var posts int
	mux.HandleFunc("GET /repos/owner/repo/tags", func(w http.ResponseWriter, r *http.Request) {
		t.Error("explicit tag must not list existing tags")
	})
	mux.HandleFunc("POST /repos/owner/repo/git/refs", func(w http.ResponseWriter, r *http.Request) {
		posts++
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{}`)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	result, _ := runBumpCommand(t, ts.URL, "--tag", "v9.9.9")

	assert.Equal(t, "v9.9.9", result.Tag)
	assert.Equal(t, "9.9.9", result.Version)
	assert.Equal(t, 1, posts)
}

func TestBumpInvalidExplicitTagFails(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	args := []string{
		"tagger", "bump",
		"--repository", "owner/repo",
		"--sha", "abc1234",
		"--token", "test-token",
		"--dry-run", "true",
		"--api-url", ts.URL,
		"--tag", "definitely-not-a-version",
		"--github-output", filepath.Join(t.TempDir(), "out"),
	}
	err := New().Run(context.Background(), args)
	assert.Error(t, err)
}

func TestBumpUnknownRuleFallsBackToPatch(t *testing.T) {
	srv := &tagServer{tags: []string{"v1.5.0"}}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	result, _ := runBumpCommand(t, ts.URL, "--dry-run", "true", "--bump", "gigantic")

	assert.Equal(t, "v1.5.1", result.Tag)
}

func TestBumpDecorations(t *testing.T) {
	srv := &tagServer{tags: []string{"v1.0.0"}}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	result, outputs := runBumpCommand(t, ts.URL,
		"--dry-run", "true",
		"--prefix", "app",
		"--suffix", "nightly")

	assert.Equal(t, "app-v1.0.1-nightly", result.Tag)
	assert.Equal(t, "app-1.0.1", result.Version)
	assert.Contains(t, outputs, "tag=app-v1.0.1-nightly\n")
	assert.Contains(t, outputs, "version=app-1.0.1\n")
}

func TestBumpPrereleaseWithCustomIdentifier(t *testing.T) {
	srv := &tagServer{tags: []string{"v1.2.3"}}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	result, _ := runBumpCommand(t, ts.URL,
		"--dry-run", "true",
		"--bump", "prerelease",
		"--prerelease-identifier", "beta")

	assert.Equal(t, "v1.2.3-beta.1", result.Tag)
	assert.Equal(t, "1.2.3-beta.1", result.Version)
}

func TestBumpFlagsReadEnvironment(t *testing.T) {
	srv := &tagServer{tags: []string{"v1.0.0"}}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	dir := t.TempDir()
	githubOutput := filepath.Join(dir, "github_output")
	resultFile := filepath.Join(dir, "result.json")

	t.Setenv("GITHUB_REPOSITORY", "owner/repo")
	t.Setenv("GITHUB_SHA", "env-sha")
	t.Setenv("GITHUB_OUTPUT", githubOutput)
	t.Setenv("GITHUB_API_URL", ts.URL)
	t.Setenv("INPUT_GITHUB_TOKEN", "env-token")
	t.Setenv("INPUT_DEFAULT_BUMP", "major")
	t.Setenv("INPUT_IS_DRY_RUN", "yes")

	args := []string{"tagger", "bump", "--output", resultFile, "--format", "json"}
	require.NoError(t, New().Run(context.Background(), args))

	data, err := os.ReadFile(resultFile)
	require.NoError(t, err)
	var result resolver.Result
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "v2.0.0", result.Tag)
	assert.Zero(t, srv.posts)
}
