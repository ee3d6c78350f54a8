package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) RequireToken() (string, error) {
	if s.token == "" {
		return "", NewError(ErrorTypeNotAuthenticated, "not logged in")
	}
	return s.token, nil
}

func TestNewRequest(t *testing.T) {
	req := NewRequest(VerbGet, "https://api.robinhood.com/user/")

	assert.Equal(t, VerbGet, req.Verb)
	assert.Equal(t, "https://api.robinhood.com/user/", req.URL)
	assert.NotNil(t, req.Headers)
	assert.NotNil(t, req.Query)
	assert.NotNil(t, req.Fields)
	assert.NotNil(t, req.Route)
	assert.False(t, req.RequireAuth)
	assert.False(t, req.NoContent)
	assert.Equal(t, AuthHeader, req.AuthPlacement)
}

func TestRequest_Chained(t *testing.T) {
	req := Post("https://api.robinhood.com/orders/").
		SetHeader("Accept", "application/json").
		SetQuery("cursor", "abc").
		SetField("symbol", "AAPL").
		SetFields(Params{"side": "buy", "quantity": "1"}).
		SetRoute("id", "42").
		SetNoContent(true).
		SetAuthPlacement(AuthQuery)

	assert.Equal(t, VerbPost, req.Verb)
	assert.Equal(t, "application/json", req.Headers["Accept"])
	assert.Equal(t, "abc", req.Query["cursor"])
	assert.Equal(t, Params{"symbol": "AAPL", "side": "buy", "quantity": "1"}, req.Fields)
	assert.Equal(t, "42", req.Route["id"])
	assert.True(t, req.NoContent)
	assert.Equal(t, AuthQuery, req.AuthPlacement)
}

func TestRequest_SettersOnZeroValue(t *testing.T) {
	req := &Request{}
	req.SetHeader("h", "1").SetQuery("q", "2").SetField("f", "3").SetRoute("r", "4").
		SetQueryParams(Params{"q2": "5"})

	assert.Equal(t, "1", req.Headers["h"])
	assert.Equal(t, Params{"q": "2", "q2": "5"}, req.Query)
	assert.Equal(t, "3", req.Fields["f"])
	assert.Equal(t, "4", req.Route["r"])
}

func TestRequest_AddAuthToken(t *testing.T) {
	t.Run("with_token", func(t *testing.T) {
		req := Get("https://api.robinhood.com/accounts/")
		require.NoError(t, req.AddAuthToken(staticTokens{token: "abc"}))
		assert.True(t, req.RequireAuth)
		assert.Empty(t, req.Headers, "token is written at dispatch time")
	})

	t.Run("without_token", func(t *testing.T) {
		req := Get("https://api.robinhood.com/accounts/")
		err := req.AddAuthToken(staticTokens{})
		assert.True(t, IsNotAuthenticated(err))
		assert.False(t, req.RequireAuth)
	})

	t.Run("nil_source", func(t *testing.T) {
		req := Get("https://api.robinhood.com/accounts/")
		err := req.AddAuthToken(nil)
		assert.True(t, IsNotAuthenticated(err))
	})
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr bool
	}{
		{"absolute", Get("https://api.robinhood.com/user/"), false},
		{"empty", Get(""), true},
		{"relative", Get("/user/"), true},
		{"unbound_route", Get("https://api.robinhood.com/fundamentals/{ticker}/"), true},
		{"bound_route", Get("https://api.robinhood.com/fundamentals/{ticker}/").SetRoute("ticker", "AAPL"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.True(t, IsType(err, ErrorTypeInvalidRequest), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequest_Placeholders(t *testing.T) {
	req := Get("https://host/{a}/x/{b}/")
	assert.Equal(t, []string{"a", "b"}, req.Placeholders())
	assert.Empty(t, Get("https://host/").Placeholders())
}

func TestRequest_Clone(t *testing.T) {
	req := Get("https://host/").SetQuery("a", "1")
	c := req.Clone()
	c.SetQuery("a", "2")

	assert.Equal(t, "1", req.Query["a"])
	assert.Equal(t, "2", c.Query["a"])
}

func TestVerb(t *testing.T) {
	tests := []struct {
		verb         Verb
		name         string
		dispatchable bool
	}{
		{VerbGet, "GET", true},
		{VerbPost, "POST", true},
		{VerbPut, "PUT", false},
		{VerbDelete, "DELETE", false},
		{VerbHead, "HEAD", false},
		{VerbOptions, "OPTIONS", false},
		{VerbTrace, "TRACE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.verb.String())
			assert.Equal(t, tt.dispatchable, tt.verb.Dispatchable())

			parsed, err := ParseVerb(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.verb, parsed)
		})
	}

	_, err := ParseVerb("PATCH")
	assert.Error(t, err)
	assert.Equal(t, "Verb(42)", Verb(42).String())

	v, err := ParseVerb(" post ")
	require.NoError(t, err)
	assert.Equal(t, VerbPost, v)
}

func TestFormatAuthHeader(t *testing.T) {
	assert.Equal(t, "Token abc123", FormatAuthHeader("abc123"))
	assert.Equal(t, "header", AuthHeader.String())
	assert.Equal(t, "query", AuthQuery.String())
}
