// File: tidify/database/github.go
package database

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tidify/config"
)

var (
	// ErrNotFound is returned when the requested file does not exist in
	// the repository.
	ErrNotFound = errors.New("file not found")

	// ErrConflict is returned when a write carried a stale sha, meaning
	// another writer updated the file first.
	ErrConflict = errors.New("file sha conflict")
)

// FileContent is a decoded file fetched from the repository, together with
// the blob sha required to overwrite it.
type FileContent struct {
	Content []byte
	SHA     string
}

// Client is a minimal GitHub Contents API client scoped to a single
// repository and branch. All datastore files live in that repository; every
// read returns the current sha and every write must present it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	branch     string
	token      string
}

// NewClient builds a Client against the given API base URL. httpClient may
// be nil, in which case a default with a 15s timeout is used.
func NewClient(httpClient *http.Client, baseURL, owner, repo, branch, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		owner:      owner,
		repo:       repo,
		branch:     branch,
		token:      token,
	}
}

// NewClientFromConfig builds a Client from the loaded application config.
func NewClientFromConfig(cfg *config.Config) *Client {
	return NewClient(nil, cfg.GitHubAPIURL, cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch, cfg.GitHubToken)
}

func (c *Client) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, path)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "tidify-server")
}

// GetFile fetches a file from the repository branch and returns its decoded
// content along with the blob sha. A missing file yields ErrNotFound.
func (c *Client) GetFile(ctx context.Context, path string) (*FileContent, error) {
	u := c.contentsURL(path) + "?ref=" + url.QueryEscape(c.branch)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contents request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return nil, fmt.Errorf("get %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode contents response: %w", err)
	}

	// GitHub wraps base64 payloads with newlines.
	raw, err := base64.StdEncoding.DecodeString(stripWhitespace(payload.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content: %w", err)
	}
	return &FileContent{Content: raw, SHA: payload.SHA}, nil
}

// PutFile writes a file to the repository branch and returns the new blob
// sha. An empty sha creates the file; a non-empty sha must match the
// current blob or the API rejects the write, surfaced here as ErrConflict.
func (c *Client) PutFile(ctx context.Context, path, message string, content []byte, sha string) (string, error) {
	reqBody := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  c.branch,
		SHA:     sha,
	}
	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("contents request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return "", fmt.Errorf("%w: %s", ErrConflict, path)
	default:
		return "", fmt.Errorf("put %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode contents response: %w", err)
	}
	return payload.Content.SHA, nil
}

// Ping verifies the repository is reachable with the configured token.
func (c *Client) Ping(ctx context.Context) error {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("repository unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("repository check returned status %d", resp.StatusCode)
	}
	return nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
}
