// Package session owns the mapping from opaque tokens to authenticated
// identities. The durable backend is Redis; an in-memory store backs tests.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a token has no live session record, either
// because it never existed, was logged out, or expired.
var ErrNotFound = errors.New("session not found")

// Record is the value stored per token: the stable user id plus a minimal
// profile snapshot taken at login.
type Record struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Store is the session store contract. Create mints an opaque token, Get
// resolves one, Delete invalidates it (logout).
type Store interface {
	Create(ctx context.Context, rec Record) (string, error)
	Get(ctx context.Context, token string) (Record, error)
	Delete(ctx context.Context, token string) error
}

// newToken mints an opaque session token.
func newToken() string {
	return uuid.NewString()
}
