package mock

import (
	"context"
	"sync"

	"github.com/ukeeper/ukadmin"
)

var _ ukadmin.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is a mock implementation of ukadmin.CredentialStore.
type CredentialStore struct {
	LoadCredentialsFn  func(ctx context.Context) (ukadmin.Credentials, error)
	SaveCredentialsFn  func(ctx context.Context, creds ukadmin.Credentials) error
	ClearCredentialsFn func(ctx context.Context) error
}

func (s *CredentialStore) LoadCredentials(ctx context.Context) (ukadmin.Credentials, error) {
	return s.LoadCredentialsFn(ctx)
}

func (s *CredentialStore) SaveCredentials(ctx context.Context, creds ukadmin.Credentials) error {
	return s.SaveCredentialsFn(ctx, creds)
}

func (s *CredentialStore) ClearCredentials(ctx context.Context) error {
	return s.ClearCredentialsFn(ctx)
}

// MemoryCredentialStore is an in-memory ukadmin.CredentialStore.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	creds ukadmin.Credentials
}

// NewMemoryCredentialStore returns an empty store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) LoadCredentials(_ context.Context) (ukadmin.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *MemoryCredentialStore) SaveCredentials(_ context.Context, creds ukadmin.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

func (s *MemoryCredentialStore) ClearCredentials(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = ukadmin.Credentials{}
	return nil
}

var _ ukadmin.Authenticator = (*Authenticator)(nil)

// Authenticator is a mock implementation of ukadmin.Authenticator.
type Authenticator struct {
	AuthenticateFn func(ctx context.Context, creds ukadmin.Credentials) error
}

func (a *Authenticator) Authenticate(ctx context.Context, creds ukadmin.Credentials) error {
	return a.AuthenticateFn(ctx, creds)
}
