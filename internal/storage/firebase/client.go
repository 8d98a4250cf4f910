package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/config"
	"github.com/Laura-Munoz/Emergency-coordination-Valencia/pkg/e"
)

const maxResponseBytes = 32 << 20

// Client talks to a Realtime Database style REST endpoint:
// every path is addressed as {base}/{path}.json.
type Client struct {
	baseURL *url.URL
	auth    string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.StoreConfig, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, e.Wrap("firebase.NewClient.Parse", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("firebase.NewClient: unsupported scheme %q", u.Scheme)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: u,
		auth:    cfg.AuthToken,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	segments := make([]string, 0)
	for _, s := range strings.Split(strings.Trim(path, "/"), "/") {
		if s != "" {
			segments = append(segments, url.PathEscape(s))
		}
	}
	u.RawPath = strings.TrimRight(u.EscapedPath(), "/") + "/" + strings.Join(segments, "/") + ".json"
	u.Path, _ = url.PathUnescape(u.RawPath)
	if query == nil {
		query = url.Values{}
	}
	if c.auth != "" {
		query.Set("auth", c.auth)
	}
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if method == http.MethodPut || method == http.MethodPatch {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &e.StoreError{Op: method, Path: path, Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, &e.StoreError{Op: method, Path: path, Err: err}
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("store request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, &e.StoreError{Op: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &e.StoreError{Op: method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("store responded with failure",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(data), 200)),
		)
		return nil, &e.StoreError{Op: method, Path: path, Status: resp.StatusCode}
	}

	c.logger.Debug("store request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, &e.StoreError{Op: method, Path: path, Err: errors.New("malformed JSON response")}
	}
	return data, nil
}

// Get returns the subtree at path, or nil when nothing is stored there.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// Put replaces the subtree at path. A nil value removes it.
func (c *Client) Put(ctx context.Context, path string, value any) error {
	_, err := c.do(ctx, http.MethodPut, path, url.Values{"print": {"silent"}}, value)
	return err
}

// Patch merges the top level fields of value into the subtree at path.
func (c *Client) Patch(ctx context.Context, path string, value any) error {
	_, err := c.do(ctx, http.MethodPatch, path, url.Values{"print": {"silent"}}, value)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// Ping fetches a shallow view of the root.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "", url.Values{"shallow": {"true"}}, nil)
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
