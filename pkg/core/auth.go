package core

// TokenSource hands out the current session token.
// RequireToken must fail with an ErrorTypeNotAuthenticated error when no
// token is held.
type TokenSource interface {
	RequireToken() (string, error)
}

// AuthPlacement selects where the dispatcher writes the session token.
type AuthPlacement int

const (
	// AuthHeader sends "Authorization: Token <token>".
	AuthHeader AuthPlacement = iota
	// AuthQuery sends the token as the "token" query parameter.
	AuthQuery
)

// String returns "header" or "query".
func (p AuthPlacement) String() string {
	if p == AuthQuery {
		return "query"
	}
	return "header"
}

const (
	// AuthHeaderName is the header carrying the token for AuthHeader.
	AuthHeaderName = "Authorization"
	// AuthQueryName is the query key carrying the token for AuthQuery.
	AuthQueryName = "token"
	// AuthScheme prefixes the token in the Authorization header.
	AuthScheme = "Token"
)

// FormatAuthHeader renders the Authorization header value for a token.
func FormatAuthHeader(token string) string {
	return AuthScheme + " " + token
}
