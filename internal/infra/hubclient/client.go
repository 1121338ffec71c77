// Package hubclient talks to the Hugging Face Hub dataset API: file
// listings, raw file downloads, and delete commits.
package hubclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/httpclient"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

const (
	defaultBaseURL    = "https://huggingface.co"
	defaultMaxErrBody = 8 * 1024 // error bodies are diagnostics, keep them bounded
	defaultUserAgent  = "dataprep"
	ndjsonContentType = "application/x-ndjson"
)

type Client struct {
	baseURL  string
	repo     string
	revision string
	token    string

	api        *http.Client // listings and commits
	dl         *http.Client // large file transfers
	maxErrBody int64
	userAgent  string
}

type Option func(*Client)

// WithToken sets the bearer token used for authenticated calls.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// WithBaseURL overrides the hub endpoint (useful for tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithClients overrides the underlying HTTP clients.
func WithClients(api, dl *http.Client) Option {
	return func(c *Client) {
		c.api = api
		c.dl = dl
	}
}

func New(repo, revision string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		repo:       repo,
		revision:   revision,
		api:        httpclient.New(httpclient.DefaultConfig()),
		dl:         httpclient.New(httpclient.DownloadConfig()),
		maxErrBody: defaultMaxErrBody,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.revision == "" {
		c.revision = "main"
	}
	return c
}

// HasToken reports whether the client can make authenticated calls.
func (c *Client) HasToken() bool { return c.token != "" }

var (
	_ ports.HubLister     = (*Client)(nil)
	_ ports.HubDownloader = (*Client)(nil)
	_ ports.HubDeleter    = (*Client)(nil)
)

type repoInfo struct {
	Siblings []struct {
		RFilename string `json:"rfilename"`
	} `json:"siblings"`
}

// ListFiles returns every repo-relative file path at the configured revision.
func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	u := fmt.Sprintf("%s/api/datasets/%s/revision/%s",
		c.baseURL, c.repo, url.PathEscape(c.revision))

	req, err := c.newRequest(ctx, http.MethodGet, u, nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return nil, c.remoteErr("hubclient.list", "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusErr("hubclient.list", "", resp)
	}

	var info repoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, c.remoteErr("hubclient.list", "", err)
	}

	out := make([]string, 0, len(info.Siblings))
	for _, s := range info.Siblings {
		if s.RFilename != "" {
			out = append(out, s.RFilename)
		}
	}
	return out, nil
}

// DownloadFile streams one repo file into localPath. The write is atomic
// (tmp file then rename) so partial downloads never land in the dataset.
func (c *Client) DownloadFile(ctx context.Context, repoPath, localPath string) error {
	u := fmt.Sprintf("%s/datasets/%s/resolve/%s/%s",
		c.baseURL, c.repo, url.PathEscape(c.revision), escapeRepoPath(repoPath))

	req, err := c.newRequest(ctx, http.MethodGet, u, nil, "")
	if err != nil {
		return err
	}

	resp, err := c.dl.Do(req)
	if err != nil {
		return c.remoteErr("hubclient.download", repoPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusErr("hubclient.download", repoPath, resp)
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return &domain.OpError{Op: "hubclient.download", Kind: domain.KindExecution, Path: localPath, Err: err}
	}

	tmp := localPath + ".part"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.OpError{Op: "hubclient.download", Kind: domain.KindExecution, Path: tmp, Err: err}
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return c.remoteErr("hubclient.download", repoPath, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "hubclient.download", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, localPath); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "hubclient.download", Kind: domain.KindExecution, Path: localPath, Err: err}
	}
	return nil
}

type commitLine struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// DeleteFiles removes the given repo paths in a single commit.
func (c *Client) DeleteFiles(ctx context.Context, repoPaths []string, summary string) error {
	if len(repoPaths) == 0 {
		return nil
	}
	if !c.HasToken() {
		return &domain.OpError{
			Op:   "hubclient.delete",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("deletion requires a hub token (set HF_TOKEN)"),
		}
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	if err := enc.Encode(commitLine{
		Key:   "header",
		Value: map[string]string{"summary": summary, "description": ""},
	}); err != nil {
		return &domain.OpError{Op: "hubclient.delete", Kind: domain.KindExecution, Err: err}
	}
	for _, p := range repoPaths {
		if err := enc.Encode(commitLine{
			Key:   "deletedFile",
			Value: map[string]string{"path": p},
		}); err != nil {
			return &domain.OpError{Op: "hubclient.delete", Kind: domain.KindExecution, Err: err}
		}
	}

	u := fmt.Sprintf("%s/api/datasets/%s/commit/%s",
		c.baseURL, c.repo, url.PathEscape(c.revision))

	req, err := c.newRequest(ctx, http.MethodPost, u, &body, ndjsonContentType)
	if err != nil {
		return err
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return c.remoteErr("hubclient.delete", "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusErr("hubclient.delete", "", resp)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, u string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &domain.OpError{Op: "hubclient.request", Kind: domain.KindInvalidConfig, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (c *Client) remoteErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindRemote, Path: path, Err: err}
}

func (c *Client) statusErr(op, path string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxErrBody))

	kind := domain.KindRemote
	if resp.StatusCode == http.StatusNotFound {
		kind = domain.KindNotFound
	}
	return &domain.OpError{
		Op:   op,
		Kind: kind,
		Path: path,
		Err:  fmt.Errorf("hub returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
	}
}

// escapeRepoPath escapes each path segment while keeping separators.
func escapeRepoPath(p string) string {
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}
