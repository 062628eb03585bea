package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ukeeper/ukadmin"
)

// Storage keys for the persisted pair.
const (
	KeyLogin    = "login"
	KeyPassword = "password"
)

// Compile-time interface verification.
var _ ukadmin.CredentialStore = (*CredentialStore)(nil)

// CredentialStore implements ukadmin.CredentialStore on the storage table.
type CredentialStore struct {
	db *DB
}

// NewCredentialStore creates a new CredentialStore.
func NewCredentialStore(db *DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// LoadCredentials returns the stored pair. Missing keys read as empty strings.
func (s *CredentialStore) LoadCredentials(ctx context.Context) (ukadmin.Credentials, error) {
	var creds ukadmin.Credentials

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE((SELECT value FROM storage WHERE key = ?), ''),
			COALESCE((SELECT value FROM storage WHERE key = ?), '')
	`, KeyLogin, KeyPassword).Scan(&creds.Login, &creds.Password)
	if err != nil {
		return ukadmin.Credentials{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	return creds, nil
}

// SaveCredentials stores both values in one transaction.
func (s *CredentialStore) SaveCredentials(ctx context.Context, creds ukadmin.Credentials) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, kv := range [][2]string{{KeyLogin, creds.Login}, {KeyPassword, creds.Password}} {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, kv[0], kv[1], now)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", kv[0], err)
		}
	}

	return tx.Commit()
}

// ClearCredentials removes both keys. Clearing an empty store is not an error.
func (s *CredentialStore) ClearCredentials(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM storage WHERE key IN (?, ?)`, KeyLogin, KeyPassword)
	return err
}
