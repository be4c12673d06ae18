package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	apiKey     string
	httpClient *http.Client
}

// WithAPIKey sets the bearer token sent with every request.
// Leave unset when the server runs with auth disabled.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithHTTPClient replaces the underlying HTTP client.
// Useful for custom timeouts, proxies, or test transports.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// Client is the intentd SDK entry point.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client for the gateway at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.apiKey,
		httpClient: hc,
	}
}

// Chat sends a message and returns the chat turn result. Invalid input is
// not an error; check result.Valid.
func (c *Client) Chat(ctx context.Context, message string) (ChatResult, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return ChatResult{}, fmt.Errorf("sdk: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return ChatResult{}, fmt.Errorf("sdk: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ChatResult{}, fmt.Errorf("sdk: chat request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ChatResult{}, c.statusError(resp)
	}

	var result ChatResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ChatResult{}, fmt.Errorf("sdk: decode response: %w", err)
	}
	return result, nil
}

// Health fetches the aggregated component health. A degraded report is
// returned without error; only transport failures error.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("sdk: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("sdk: health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("sdk: decode response: %w", err)
	}
	return status, nil
}

// statusError maps a non-200 response to a sentinel error, keeping the
// server's error message when the envelope parses.
func (c *Client) statusError(resp *http.Response) error {
	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	base := ErrServer
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		base = ErrUnauthorized
	case http.StatusBadRequest:
		base = ErrBadRequest
	}

	if envelope.Message != "" {
		return fmt.Errorf("%w: %s", base, envelope.Message)
	}
	return fmt.Errorf("%w: status %d", base, resp.StatusCode)
}
