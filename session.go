package ukadmin

import (
	"context"
	"encoding/base64"
	"sync"
)

// Credentials is the login/password pair used to authorize write calls.
type Credentials struct {
	Login    string
	Password string
}

// Empty reports whether either half of the pair is missing.
func (c Credentials) Empty() bool {
	return c.Login == "" || c.Password == ""
}

// BasicAuth returns the Authorization header value for the pair.
// Missing values are encoded as empty strings.
func (c Credentials) BasicAuth() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Login+":"+c.Password))
}

// CredentialStore persists credentials between runs.
type CredentialStore interface {
	// LoadCredentials returns the stored pair, or an empty pair if none is stored.
	LoadCredentials(ctx context.Context) (Credentials, error)

	// SaveCredentials stores both values of the pair.
	SaveCredentials(ctx context.Context, creds Credentials) error

	// ClearCredentials removes the stored pair.
	ClearCredentials(ctx context.Context) error
}

// Authenticator validates credentials against the service.
type Authenticator interface {
	// Authenticate returns EUNAUTHORIZED if the service rejects the pair.
	Authenticate(ctx context.Context, creds Credentials) error
}

// Session holds the operator's credentials for the lifetime of the process.
// It is created from a CredentialStore and only changes through Store,
// Invalidate or Refresh. Session is safe for concurrent use.
type Session struct {
	store CredentialStore

	mu    sync.RWMutex
	creds Credentials
}

// NewSession creates a session from the credentials persisted in store.
func NewSession(ctx context.Context, store CredentialStore) (*Session, error) {
	s := &Session{store: store}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh re-reads the persisted credentials.
func (s *Session) Refresh(ctx context.Context) error {
	creds, err := s.store.LoadCredentials(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()
	return nil
}

// Store persists creds and makes them the session's credentials.
// The in-memory state is left unchanged if persisting fails.
func (s *Session) Store(ctx context.Context, creds Credentials) error {
	if err := s.store.SaveCredentials(ctx, creds); err != nil {
		return err
	}
	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()
	return nil
}

// Invalidate forgets the credentials in memory and in the store.
// The in-memory pair is cleared even if the store fails.
func (s *Session) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.creds = Credentials{}
	s.mu.Unlock()
	return s.store.ClearCredentials(ctx)
}

// Credentials returns the current pair.
func (s *Session) Credentials() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Authenticated reports whether the session holds a full pair.
// Anonymous sessions can only read.
func (s *Session) Authenticated() bool {
	return !s.Credentials().Empty()
}

// AuthorizationHeader returns the header value sent with authenticated calls.
func (s *Session) AuthorizationHeader() string {
	return s.Credentials().BasicAuth()
}
