package session

import (
	"context"
	"sync"

	"github.com/deathrjj/userhub-tui/forms"
	"github.com/rs/zerolog/log"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Credentials is the content of the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session keeps the authentication state for the lifetime of the process.
// Nothing is written to disk; quitting the app signs out.
type Session struct {
	mu    sync.RWMutex
	auth  Authenticator
	token string
	email string
}

// New creates a signed-out session backed by auth.
func New(auth Authenticator) *Session {
	return &Session{auth: auth}
}

// SignIn validates creds and logs in. A validation failure is returned as
// *forms.ValidationError without contacting the server.
func (s *Session) SignIn(ctx context.Context, creds Credentials) error {
	if err := forms.Validate(creds); err != nil {
		return err
	}
	token, err := s.auth.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", creds.Email).Msg("Failed authentication attempt")
		return err
	}

	s.mu.Lock()
	s.token = token
	s.email = creds.Email
	s.mu.Unlock()

	log.Info().Str("email", creds.Email).Msg("Signed in")
	return nil
}

// SignOut forgets the token.
func (s *Session) SignOut() {
	s.mu.Lock()
	email := s.email
	s.token, s.email = "", ""
	s.mu.Unlock()
	log.Info().Str("email", email).Msg("Signed out")
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Email returns the signed-in address.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}
