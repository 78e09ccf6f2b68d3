package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"codeberg.org/branchadmin/server/internal/logger"
	"github.com/tidwall/gjson"
)

const (
	DefaultAuthHeader      = "X-CSRFToken"
	DefaultFallbackMessage = "Network error. Please try again."

	// key every generation endpoint uses for application-level errors
	errorKey = "error"
)

// no overall Timeout: completion is signalled by the transport alone
var defaultHTTPClient = &http.Client{
	Transport: &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// performs generation requests; safe for concurrent use and keeps no per-request state
type Client struct {
	httpClient *http.Client
	authHeader string
	fallback   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// header name the auth token travels under
func WithAuthHeader(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.authHeader = name
		}
	}
}

// message shown when the request fails without a structured error
func WithFallbackMessage(msg string) Option {
	return func(c *Client) {
		if msg != "" {
			c.fallback = msg
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: defaultHTTPClient,
		authHeader: DefaultAuthHeader,
		fallback:   DefaultFallbackMessage,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) FallbackMessage() string {
	return c.fallback
}

// POSTs the payload as JSON and classifies the response.
// An "error" key wins regardless of status; resultKey counts only on 2xx.
func (c *Client) Generate(ctx context.Context, req Request, resultKey string) Result {
	log := logger.FromContext(ctx).With("endpoint", req.Endpoint)

	body, status, err := c.do(ctx, req)
	if err != nil {
		log.Warn("generation request failed", "error", err)
		return Failure(c.fallback)
	}

	if !gjson.ValidBytes(body) {
		log.Warn("generation response is not valid JSON", "status", status)
		return Failure(c.fallback)
	}

	parsed := gjson.ParseBytes(body)

	// only a non-empty string counts as an error message
	if msg := parsed.Get(errorKey); msg.Type == gjson.String && msg.Str != "" {
		log.Debug("generation endpoint returned an error", "status", status)
		return Failure(msg.Str)
	}

	if status >= 200 && status < 300 {
		if text := parsed.Get(resultKey); text.Exists() && text.Type != gjson.Null {
			return Success(text.String())
		}
	}

	log.Warn("unclassified generation response", "status", status)

	return Failure(c.fallback)
}

func (c *Client) do(ctx context.Context, req Request) ([]byte, int, error) {
	payload, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(c.authHeader, req.AuthToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
