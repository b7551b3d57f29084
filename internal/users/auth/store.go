// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package auth

import (
	"context"
)

// # Account Data Access

// AccountRepository defines the data access contract for admin accounts.
type AccountRepository interface {
	// FindByID returns the account with the given ID.
	FindByID(ctx context.Context, id string) (*Account, error)

	// FindByUsername returns the account with the given username.
	FindByUsername(ctx context.Context, username string) (*Account, error)
}

// # Session Data Access

// SessionRepository defines the contract for volatile refresh sessions.
// Implementations key sessions by the refresh token's hash and handle expiry
// themselves (Redis TTL).
type SessionRepository interface {
	// Save stores a session under the token hash.
	Save(ctx context.Context, tokenHash string, session *Session) error

	// Find returns the session for the token hash, or a NotFound error when
	// the session is absent, expired, or already rotated away.
	Find(ctx context.Context, tokenHash string) (*Session, error)

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, tokenHash string) error
}
