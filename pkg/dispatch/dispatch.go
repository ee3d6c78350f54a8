// Package dispatch turns request descriptors into HTTP round-trips and
// decodes the responses.
//
// A Dispatcher is shared by every caller of a client. It holds no
// per-request state, so Send, Exec and Do may be called concurrently.
package dispatch

import (
	"bytes"
	"context"
	"maps"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	httpClient "robinhood/internal/http"
	"robinhood/internal/ratelimit"
	"robinhood/pkg/core"
)

// Dispatcher executes core.Request descriptors over one shared HTTP client.
type Dispatcher struct {
	client  *httpClient.Client
	tokens  core.TokenSource
	limiter *ratelimit.RateLimiter
	logger  zerolog.Logger
}

// Option is a functional option for configuring the Dispatcher.
type Option func(*Options)

// Options holds configuration options for the Dispatcher.
type Options struct {
	Logger  zerolog.Logger
	Limiter *ratelimit.RateLimiter
}

// WithLogger returns an option that sets the logger for the dispatcher.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithLimiter returns an option that throttles every dispatch through rl.
func WithLimiter(rl *ratelimit.RateLimiter) Option {
	return func(o *Options) {
		o.Limiter = rl
	}
}

// New creates a Dispatcher sending through client and taking tokens for
// authenticated requests from tokens.
func New(client *httpClient.Client, tokens core.TokenSource, opts ...Option) *Dispatcher {
	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Dispatcher{
		client:  client,
		tokens:  tokens,
		limiter: options.Limiter,
		logger:  options.Logger,
	}
}

// Tokens returns the token source authenticated requests are checked against.
func (d *Dispatcher) Tokens() core.TokenSource {
	return d.tokens
}

// ThrottleStats returns the limiter counters. ok is false when the
// dispatcher was built without WithLimiter.
func (d *Dispatcher) ThrottleStats() (stats ratelimit.MetricsSnapshot, ok bool) {
	if d.limiter == nil {
		return stats, false
	}
	return d.limiter.Metrics(), true
}

// Send performs one round-trip for req and returns the raw 2xx body.
//
// Before any network I/O it rejects malformed descriptors, verbs other than
// GET and POST, and authenticated requests while no token is held.
func (d *Dispatcher) Send(ctx context.Context, req *core.Request) ([]byte, error) {
	wire, err := d.build(req)
	if err != nil {
		return nil, err
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			stats := d.limiter.Metrics()
			d.logger.Warn().Err(err).
				Str("url", req.URL).
				Int64("denied", stats.DeniedRequests).
				Int64("total", stats.TotalRequests).
				Msg("throttled")
			return nil, core.WrapError(core.ErrorTypeTransport, "rate limit wait", err)
		}
	}

	resp, err := d.client.Do(ctx, wire)
	if err != nil {
		d.logger.Error().Err(err).
			Str("verb", req.Verb.String()).
			Str("url", req.URL).
			Msg("dispatch failed")
		return nil, core.WrapError(core.ErrorTypeTransport, "send request", err)
	}

	d.logger.Debug().
		Str("verb", req.Verb.String()).
		Str("url", req.URL).
		Int("status", resp.StatusCode).
		Int("size", len(resp.Body)).
		Msg("dispatch")

	if !resp.IsSuccess() {
		msg, ok := core.ParseErrorBody(resp.Body)
		if !ok {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, core.NewError(core.ErrorTypeTransport, msg).
			WithStatus(resp.StatusCode).
			WithBody(resp.Body)
	}

	return resp.Body, nil
}

// Exec sends req and discards the response body.
func (d *Dispatcher) Exec(ctx context.Context, req *core.Request) error {
	_, err := d.Send(ctx, req)
	return err
}

// Do sends req and decodes the JSON response into a T. When req.NoContent
// is set the body is not read and the zero T is returned.
func Do[T any](ctx context.Context, d *Dispatcher, req *core.Request) (T, error) {
	var out T

	body, err := d.Send(ctx, req)
	if err != nil {
		return out, err
	}

	if req.NoContent {
		return out, nil
	}

	if err := Decode(body, &out); err != nil {
		d.logger.Error().Err(err).
			Str("verb", req.Verb.String()).
			Str("url", req.URL).
			Msg("decode response")
		return out, err
	}
	return out, nil
}

// Decode unmarshals body into v, reporting failures as ErrorTypeDecode
// errors carrying the raw body.
func Decode(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return core.NewError(core.ErrorTypeDecode, "empty response body").WithBody(body)
	}
	if err := sonic.Unmarshal(body, v); err != nil {
		return core.WrapError(core.ErrorTypeDecode, "decode response", err).WithBody(body)
	}
	return nil
}

// build assembles the wire request without touching req.
func (d *Dispatcher) build(req *core.Request) (*httpClient.Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.Verb.Dispatchable() {
		return nil, core.Errorf(core.ErrorTypeUnsupportedVerb, "verb %s is not supported", req.Verb)
	}

	wire := &httpClient.Request{
		Method:  req.Verb.String(),
		URL:     req.URL,
		Headers: cloneParams(req.Headers),
		Query:   cloneParams(req.Query),
		Path:    cloneParams(req.Route),
	}
	if req.Verb == core.VerbPost {
		wire.Form = cloneParams(req.Fields)
	}

	if req.RequireAuth {
		if d.tokens == nil {
			return nil, core.NewError(core.ErrorTypeNotAuthenticated, "no token source configured")
		}
		token, err := d.tokens.RequireToken()
		if err != nil {
			return nil, err
		}
		switch req.AuthPlacement {
		case core.AuthQuery:
			wire.Query[core.AuthQueryName] = token
		default:
			wire.Headers[core.AuthHeaderName] = core.FormatAuthHeader(token)
		}
	}

	return wire, nil
}

func cloneParams(p core.Params) map[string]string {
	out := make(map[string]string, len(p))
	maps.Copy(out, p)
	return out
}
