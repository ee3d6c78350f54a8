// Package robinhood is the entry point of the API client. A Client owns
// one HTTP connection pool, one session and one dispatcher; every method
// is safe for concurrent use.
package robinhood

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	httpClient "robinhood/internal/http"
	"robinhood/internal/ratelimit"
	"robinhood/pkg/core"
	"robinhood/pkg/dispatch"
	"robinhood/pkg/endpoint"
	"robinhood/pkg/model"
	"robinhood/pkg/session"
)

// Status is the outcome of Login and Logout.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusNotLoggedIn
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusNotLoggedIn:
		return "NOT_LOGGED_IN"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Client talks to the brokerage API on behalf of one user.
type Client struct {
	config     *core.Config
	http       *httpClient.Client
	state      *session.State
	dispatcher *dispatch.Dispatcher
	endpoints  *endpoint.Endpoints
	logger     zerolog.Logger

	// authMu serializes Login and Logout so the token and account number
	// always change together.
	authMu sync.Mutex
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a Client from cfg. A nil cfg means DefaultConfig.
func New(cfg *core.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
	}

	hc, err := httpClient.NewClient(&httpClient.Config{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	dispatchOpts := []dispatch.Option{dispatch.WithLogger(options.Logger)}
	if cfg.RateLimited() {
		dispatchOpts = append(dispatchOpts,
			dispatch.WithLimiter(ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitPeriod)))
	}

	state := session.New()

	return &Client{
		config:     cfg,
		http:       hc,
		state:      state,
		dispatcher: dispatch.New(hc, state, dispatchOpts...),
		endpoints:  endpoint.New(cfg.BaseURL),
		logger:     options.Logger,
	}, nil
}

// Session exposes the token and account number held by the client.
func (c *Client) Session() *session.State {
	return c.state
}

// Dispatcher returns the dispatcher used for every call, for requests
// built outside this package.
func (c *Client) Dispatcher() *dispatch.Dispatcher {
	return c.dispatcher
}

// Endpoints returns the descriptor builders rooted at the configured base URL.
func (c *Client) Endpoints() *endpoint.Endpoints {
	return c.endpoints
}

// ThrottleStats reports how many dispatches the configured rate limit has
// let through or refused. ok is false when rate limiting is off.
func (c *Client) ThrottleStats() (ratelimit.MetricsSnapshot, bool) {
	return c.dispatcher.ThrottleStats()
}

// Close releases the HTTP client. Calls made afterwards fail with a
// transport error wrapping core.ErrClientClosed.
func (c *Client) Close() error {
	return c.http.Close()
}

// Login exchanges credentials for a token and resolves the account number.
// On success both are stored in the session. On any failure the session is
// left empty; a login whose accounts response carries no account number
// fails with ErrorTypeAccountResolution.
func (c *Client) Login(ctx context.Context, username, password string) (Status, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	c.state.Clear()

	token, err := dispatch.Do[model.Token](ctx, c.dispatcher, c.endpoints.Login(username, password))
	if err != nil {
		c.logger.Error().Err(err).Msg("login failed")
		return StatusFailure, err
	}
	if token.Token == "" {
		msg := "empty token in login response"
		if token.MFARequired {
			msg = "multi-factor authentication required"
		}
		return StatusFailure, core.NewError(core.ErrorTypeNotAuthenticated, msg)
	}
	c.state.SetToken(token.Token)

	accounts, err := dispatch.Do[model.AccountEnvelope](ctx, c.dispatcher, c.endpoints.Accounts())
	if err != nil {
		c.state.Clear()
		c.logger.Error().Err(err).Msg("account lookup failed")
		return StatusFailure, err
	}

	account := accounts.Primary()
	if account.IsNone() {
		c.state.Clear()
		c.logger.Warn().Msg("accounts response has no account number")
		return StatusFailure, core.NewError(core.ErrorTypeAccountResolution, "no account number in accounts response")
	}

	number := account.Unwrap().AccountNumber
	c.state.SetAccountID(number)
	c.logger.Info().Str("account", number).Msg("logged in")

	return StatusSuccess, nil
}

// Logout revokes the token. Without a token it returns StatusNotLoggedIn
// and makes no request. Otherwise the session is cleared whether or not
// the revocation succeeds.
func (c *Client) Logout(ctx context.Context) (Status, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	if !c.state.IsAuthenticated() {
		return StatusNotLoggedIn, nil
	}

	err := c.dispatcher.Exec(ctx, c.endpoints.Logout())
	c.state.Clear()
	if err != nil {
		c.logger.Warn().Err(err).Msg("logout request failed, session cleared")
		return StatusFailure, err
	}

	c.logger.Info().Msg("logged out")
	return StatusSuccess, nil
}
