// Package session holds the authentication state shared by every request a
// client makes: the API token and the account number resolved at login.
package session

import (
	"sync"
	"time"

	"github.com/moznion/go-optional"

	"robinhood/pkg/core"
)

// State is the token and account number of one logged-in user.
// All methods are safe for concurrent use.
type State struct {
	mu        sync.RWMutex
	token     optional.Option[string]
	accountID optional.Option[string]
	loginAt   time.Time
}

// New returns an empty, unauthenticated State.
func New() *State {
	return &State{
		token:     optional.None[string](),
		accountID: optional.None[string](),
	}
}

// SetToken stores the API token. An empty token clears it.
func (s *State) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTokenLocked(token)
}

func (s *State) setTokenLocked(token string) {
	if token == "" {
		s.token = optional.None[string]()
		s.loginAt = time.Time{}
		return
	}
	s.token = optional.Some(token)
	s.loginAt = time.Now()
}

// ClearToken drops the token. The account number is kept; use Clear to
// drop both.
func (s *State) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTokenLocked("")
}

func (s *State) Token() optional.Option[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetAccountID stores the account number. An empty id clears it.
func (s *State) SetAccountID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		s.accountID = optional.None[string]()
		return
	}
	s.accountID = optional.Some(id)
}

func (s *State) AccountID() optional.Option[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

// SetCredentials stores token and account number together.
func (s *State) SetCredentials(token, accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTokenLocked(token)
	if accountID == "" {
		s.accountID = optional.None[string]()
	} else {
		s.accountID = optional.Some(accountID)
	}
}

// Clear drops the token and the account number.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTokenLocked("")
	s.accountID = optional.None[string]()
}

// RequireToken returns the token, or an ErrorTypeNotAuthenticated error
// when none is held. It implements core.TokenSource.
func (s *State) RequireToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token.IsNone() {
		return "", core.NewError(core.ErrorTypeNotAuthenticated, "not logged in")
	}
	return s.token.Unwrap(), nil
}

// RequireAccountID returns the account number, or an
// ErrorTypeNotAuthenticated error when login has not resolved one.
func (s *State) RequireAccountID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.accountID.IsNone() {
		return "", core.NewError(core.ErrorTypeNotAuthenticated, "no account number in session")
	}
	return s.accountID.Unwrap(), nil
}

func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token.IsSome()
}

// LoginAt returns when the current token was stored, or the zero time.
func (s *State) LoginAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginAt
}

var _ core.TokenSource = (*State)(nil)
