package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/logging"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL. Every request
// is authenticated with the token tokens returns at send time.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	return newHTTPClient(baseURL, timeout, tokens, log, nil)
}

func newHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger, base http.RoundTripper) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.NewNop()
	}

	return &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(base, tokens),
		},
		log: log,
	}, nil
}

func (c *HTTPClient) CreateSession(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodPost, "sessions", credentials, &session); err != nil {
		return models.Session{}, err
	}
	if session.Token == "" {
		return models.Session{}, fmt.Errorf("%w: empty token", ErrUnexpectedResponse)
	}
	return session, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, data models.SignUpData) error {
	return c.do(ctx, http.MethodPost, "users", data, nil)
}

func (c *HTTPClient) ListProviders(ctx context.Context) ([]models.Provider, error) {
	providers := []models.Provider{}
	if err := c.do(ctx, http.MethodGet, "providers", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// do sends one JSON request and decodes a 2xx body into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var requestID string
	if resp.Request != nil {
		requestID = resp.Request.Header.Get(common.RequestIDHeaderName)
	}
	c.log.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// errorMessage pulls the "message" field the API puts in error bodies.
func errorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return ""
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return ""
	}
	return payload.Message
}
