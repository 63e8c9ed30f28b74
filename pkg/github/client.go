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

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gitops-tools/tagger/pkg/errors"
	"github.com/gitops-tools/tagger/pkg/semver"
)

const (
	// defaultBaseURL is the production GitHub REST API endpoint.
	defaultBaseURL = "https://api.github.com"

	// defaultPerPage is the number of tags fetched per API page.
	defaultPerPage = 100

	// defaultTagCap bounds how many version-shaped tags a non-exhaustive
	// listing collects before stopping. Listing-level optimization only;
	// the core never depends on it.
	defaultTagCap = 100

	// maxJSONResponseBytes is the upper bound on JSON API response size
	// (10 MB). Prevents unbounded memory consumption from malformed
	// responses.
	maxJSONResponseBytes = 10 << 20

	apiVersionHeader = "2022-11-28"
)

type (
	// Client talks to the GitHub REST API for tag listing and tag-reference
	// creation. It performs no retries: a failed call is a failed run.
	Client struct {
		httpClient *http.Client
		baseURL    string
		token      string
		userAgent  string
	}

	// Option configures a Client during construction.
	Option func(*Client)

	// tagEntry is the JSON wire format for one entry of the tag list API.
	tagEntry struct {
		Name string `json:"name"`
	}

	// refRequest is the JSON wire format for the create-reference API.
	refRequest struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	}
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy
// configurations.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) {
		g.httpClient = c
	}
}

// WithBaseURL overrides the GitHub API base URL (GitHub Enterprise hosts,
// test servers).
func WithBaseURL(base string) Option {
	return func(g *Client) {
		if base != "" {
			g.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithToken sets the access token used for authenticated requests.
func WithToken(token string) Option {
	return func(g *Client) {
		g.token = token
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(g *Client) {
		g.userAgent = ua
	}
}

// NewClient creates a Client with sensible defaults: the production API
// endpoint and http.DefaultClient.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		userAgent:  "tagger",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTags fetches tag names for the "owner/name" repository, following
// Link-header pagination. When fetchAll is false, listing stops once
// defaultTagCap version-shaped tag names have been collected; tags that do
// not look like versions are still returned (the caller filters), they just
// do not count toward the cap.
func (c *Client) ListTags(ctx context.Context, repo string, fetchAll bool) ([]string, error) {
	pageURL := fmt.Sprintf("%s/repos/%s/tags?per_page=%d", c.baseURL, repo, defaultPerPage)

	var names []string
	coerced := 0

	for pageURL != "" {
		resp, err := c.doRequest(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "listing tags", err)
		}

		if err := classifyResponse(resp, http.StatusOK, repo); err != nil {
			resp.Body.Close()
			return nil, err
		}

		var page []tagEntry
		err = json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&page)
		nextURL := parseLinkHeader(resp.Header.Get("Link"))
		resp.Body.Close()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "decoding tag list", err)
		}

		for _, entry := range page {
			names = append(names, entry.Name)
			if _, ok := semver.Normalize(entry.Name); ok {
				coerced++
			}
			if !fetchAll && coerced >= defaultTagCap {
				return names, nil
			}
		}

		pageURL = nextURL
	}

	return names, nil
}

// CreateRef creates the fully-qualified tag reference (e.g.
// "refs/tags/v1.2.3") pointing at the given commit SHA. An already-existing
// reference surfaces as ErrCodeConflict; no retry is attempted.
func (c *Client) CreateRef(ctx context.Context, repo, ref, sha string) error {
	body, err := json.Marshal(refRequest{Ref: ref, SHA: sha})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "encoding reference request", err)
	}

	reqURL := fmt.Sprintf("%s/repos/%s/git/refs", c.baseURL, repo)
	resp, err := c.doRequest(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "creating tag reference", err)
	}
	defer resp.Body.Close()

	return classifyResponse(resp, http.StatusCreated, repo)
}

// doRequest creates and executes an HTTP request with common GitHub API
// headers. The auth token is only attached when the request targets the
// configured API host.
func (c *Client) doRequest(ctx context.Context, method, reqURL string, body io.Reader) (*http.Response, error) {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersionHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" && sameHost(req.URL, c.baseURL) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}

// classifyResponse maps a GitHub API response onto the structured error
// taxonomy. A response with the wanted status yields nil.
func classifyResponse(resp *http.Response, want int, repo string) error {
	if resp.StatusCode == want {
		return nil
	}

	if err := checkRateLimit(resp); err != nil {
		return err
	}

	detail := readErrorDetail(resp.Body)
	ctx := map[string]any{"repository": repo, "status": resp.StatusCode}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.WrapWithContext(errors.ErrCodeUnauthorized, "authentication failed", detail, ctx)
	case http.StatusNotFound:
		return errors.WrapWithContext(errors.ErrCodeNotFound, "repository or reference not found", detail, ctx)
	case http.StatusUnprocessableEntity:
		return errors.WrapWithContext(errors.ErrCodeConflict, "reference is invalid or already exists", detail, ctx)
	default:
		return errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), detail, ctx)
	}
}

// checkRateLimit inspects the X-RateLimit-* response headers and returns a
// structured rate-limit error when the remaining quota is zero.
func checkRateLimit(resp *http.Response) error {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return nil
	}
	rem, err := strconv.Atoi(remaining)
	if err != nil || rem > 0 {
		return nil
	}

	resetUnix, _ := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)
	return errors.NewWithContext(errors.ErrCodeRateLimitExceeded,
		"API rate limit exceeded",
		map[string]any{"resets_at": time.Unix(resetUnix, 0).UTC().Format(time.RFC3339)})
}

// readErrorDetail extracts the "message" field of a GitHub error response,
// best effort.
func readErrorDetail(body io.Reader) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, maxJSONResponseBytes)).Decode(&payload); err != nil || payload.Message == "" {
		return nil
	}
	return fmt.Errorf("%s", payload.Message)
}

// parseLinkHeader extracts the URL for the "next" page from a GitHub API
// Link header. Returns an empty string if no next page exists.
//
// Example header: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func parseLinkHeader(header string) string {
	if header == "" {
		return ""
	}

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}

	return ""
}

// sameHost reports whether reqURL targets the configured API host, so the
// auth token is never leaked to a redirect target on another host.
func sameHost(reqURL *url.URL, baseURL string) bool {
	base, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(reqURL.Host, base.Host)
}
