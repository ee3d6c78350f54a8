package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"robinhood/pkg/core"
)

// Client is the single resty client shared by every dispatch.
// It is safe for concurrent use.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

type Config struct {
	Timeout   time.Duration `validate:"min=1ms"`
	UserAgent string        `validate:"omitempty"`
}

// Request is one wire request. Path holds the {name} substitutions for URL;
// Form is sent url-encoded and only with POST.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Form    map[string]string
	Path    map[string]string
}

// Response is the status code and body of a received response.
type Response struct {
	StatusCode int
	Body       []byte
}

func NewClient(config *Config, logger zerolog.Logger) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)
	client.SetHeader("Accept", "application/json")
	if config.UserAgent != "" {
		client.SetHeader("User-Agent", config.UserAgent)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// Do executes req and returns the response whatever its status code.
// A non-nil error means no response was received.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	r := c.client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if len(req.Path) > 0 {
		r.SetPathParams(req.Path)
	}
	if req.Method == http.MethodPost && len(req.Form) > 0 {
		r.SetFormData(req.Form)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
	}, nil
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
