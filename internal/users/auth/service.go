// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/constants"
	"github.com/soyounglim/gallerim/internal/platform/sec"
)

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(accountID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements the admin authentication use cases.
type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(accounts AccountRepository, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginSession represents an established admin session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
}

/*
Login validates admin credentials and establishes a session.

Description: Looks up the account, runs a constant-time bcrypt comparison,
then issues a signed access JWT plus an opaque refresh token whose session is
stored in Redis under the token's hash.

Returns:
  - *LoginSession: Transport-ready credentials
  - error: Unauthorized on any credential failure (single generic message to
    prevent username probing)
*/
func (service *Service) Login(ctx context.Context, username, password string) (*LoginSession, error) {
	account, err := service.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.establishSession(ctx, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("admin_logged_in", slog.String("account_id", account.ID))
	return session, nil
}

/*
Refresh rotates a refresh token.

Description: The presented token's session is looked up by hash and deleted
immediately (rotation: a refresh token works exactly once), then a fresh token
pair is issued for the same account.

Returns:
  - *LoginSession: New credentials
  - error: Unauthorized when the session is absent, expired, or already used
*/
func (service *Service) Refresh(ctx context.Context, refreshToken string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	stored, err := service.sessions.Find(ctx, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: the old token must never work twice.
	if err := service.sessions.Delete(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_refresh_rotation_failed: %w", err)
	}

	account, err := service.accounts.FindByID(ctx, stored.AccountID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	session, err := service.establishSession(ctx, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("admin_session_refreshed", slog.String("account_id", account.ID))
	return session, nil
}

/*
Logout revokes the presented refresh token.

Description: Idempotent; logging out with an unknown or expired token still
succeeds.
*/
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.sessions.Delete(ctx, sec.HashToken(refreshToken))
}

// establishSession issues the access/refresh pair and persists the session.
func (service *Service) establishSession(ctx context.Context, account *Account) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(
		account.ID, account.Username, string(account.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_access_token_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_refresh_token_failed: %w", err)
	}

	session := &Session{
		AccountID: account.ID,
		Username:  account.Username,
		Role:      string(account.Role),
	}
	if err := service.sessions.Save(ctx, sec.HashToken(refreshToken), session); err != nil {
		return nil, fmt.Errorf("auth_session_save_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: time.Now().Add(constants.RefreshSessionTTL),
		Account:               account,
	}, nil
}
