package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const maxErrorBody = 64 << 10

// Client talks to the inventory REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the API rooted at baseURL, e.g.
// http://localhost:8080/api. timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token sent with subsequent calls. An empty
// token stops sending the header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/produtos", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	var created Product
	err := c.do(ctx, http.MethodPost, "/produtos", in, &created)
	return created, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (Product, error) {
	var updated Product
	err := c.do(ctx, http.MethodPut, productPath(id), in, &updated)
	return updated, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, productPath(id), nil, nil)
}

func productPath(id int64) string {
	return "/produtos/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode body: %v", ErrNotSent, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotSent, err)
	}
	if (req.URL.Scheme != "http" && req.URL.Scheme != "https") || req.URL.Host == "" {
		return fmt.Errorf("%w: invalid base URL %q", ErrNotSent, c.baseURL)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("err", err))
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	slog.Debug("request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readServerError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func readServerError(resp *http.Response) error {
	serverErr := &ServerError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return serverErr
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil {
		serverErr.Message = body.Error
		if serverErr.Message == "" {
			serverErr.Message = body.Message
		}
	}
	return serverErr
}
