// Package univerdog is the HTTP client for the UniverDog REST API. It
// owns wire-shape normalization and error translation; business state
// lives on the server.
package univerdog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ACHGAR2024/univerdog-client/internal/session"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client

	sessions *session.Manager
	logger   *zap.Logger

	mu                   sync.Mutex
	unauthorizedWatchers []func()
}

func NewClient(baseURL string, timeout time.Duration, sessions *session.Manager, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:  baseURL,
		sessions: sessions,
		logger:   logger,
		HTTP: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// OnUnauthorized registers a watcher invoked after any API call comes
// back 401. The session is already torn down by the time watchers run;
// they exist so the top-level screen router can redirect without the
// client knowing anything about navigation.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorizedWatchers = append(c.unauthorizedWatchers, fn)
}

func (c *Client) notifyUnauthorized() {
	c.mu.Lock()
	watchers := make([]func(), len(c.unauthorizedWatchers))
	copy(watchers, c.unauthorizedWatchers)
	c.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

// do performs one API round-trip. The bearer token is attached whenever
// the session holds one; a 401 response is treated as the authoritative
// expiry signal, forcing a logout before the error is returned.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	credentialed := false
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		credentialed = true
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// A 401 on a credentialed request is the server's authoritative
	// expiry verdict. A 401 on a bare request (failed login attempt) is
	// just a failed request; there is no session to tear down.
	if resp.StatusCode == http.StatusUnauthorized && credentialed {
		c.logger.Info("server rejected credentials, ending session",
			zap.String("path", path))
		if err := c.sessions.Logout(); err != nil {
			c.logger.Error("forced logout failed", zap.Error(err))
		}
		c.notifyUnauthorized()
		return newAPIError(resp.StatusCode, resp.Body)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, resp.Body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
