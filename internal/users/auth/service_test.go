// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/sec"
	"github.com/soyounglim/gallerim/internal/users/auth"
)

// # Test Fakes

type fakeAccountRepo struct {
	accounts map[string]*auth.Account // keyed by username
}

func (repo *fakeAccountRepo) FindByID(ctx context.Context, id string) (*auth.Account, error) {
	for _, account := range repo.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (repo *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*auth.Account, error) {
	if account, ok := repo.accounts[username]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("Account")
}

type fakeSessionRepo struct {
	sessions map[string]*auth.Session // keyed by token hash
}

func (repo *fakeSessionRepo) Save(ctx context.Context, tokenHash string, session *auth.Session) error {
	repo.sessions[tokenHash] = session
	return nil
}

func (repo *fakeSessionRepo) Find(ctx context.Context, tokenHash string) (*auth.Session, error) {
	if session, ok := repo.sessions[tokenHash]; ok {
		return session, nil
	}
	return nil, apperr.NotFound("Session")
}

func (repo *fakeSessionRepo) Delete(ctx context.Context, tokenHash string) error {
	delete(repo.sessions, tokenHash)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(accountID, username, role string, ttl time.Duration) (string, error) {
	return "jwt-for-" + accountID, nil
}

func fixture(t *testing.T) (*auth.Service, *fakeSessionRepo) {
	t.Helper()

	hash, err := sec.HashPassword("correct horse battery")
	require.NoError(t, err)

	accounts := &fakeAccountRepo{accounts: map[string]*auth.Account{
		"soyoung": {ID: "acc-1", Username: "soyoung", PasswordHash: hash, Role: sec.RoleAdmin},
	}}
	sessions := &fakeSessionRepo{sessions: make(map[string]*auth.Session)}

	return auth.NewService(accounts, sessions, fakeTokenProvider{}, slog.Default()), sessions
}

// # Login

/*
TestService_Login covers credential verification and session establishment.
*/
func TestService_Login(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		service, sessions := fixture(t)

		session, err := service.Login(context.Background(), "soyoung", "correct horse battery")
		require.NoError(t, err)

		assert.Equal(t, "jwt-for-acc-1", session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Equal(t, "acc-1", session.Account.ID)

		// Session stored under the token's hash, not the token itself.
		stored, err := sessions.Find(context.Background(), sec.HashToken(session.RefreshToken))
		require.NoError(t, err)
		assert.Equal(t, "acc-1", stored.AccountID)
		_, err = sessions.Find(context.Background(), session.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("wrong_password", func(t *testing.T) {
		service, _ := fixture(t)

		_, err := service.Login(context.Background(), "soyoung", "wrong")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
	})

	t.Run("unknown_username_same_error", func(t *testing.T) {
		service, _ := fixture(t)

		_, err := service.Login(context.Background(), "nobody", "correct horse battery")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
		assert.Equal(t, "Invalid login credentials", ae.Message)
	})
}

// # Refresh Rotation

/*
TestService_Refresh checks the one-shot rotation contract.
*/
func TestService_Refresh(t *testing.T) {
	t.Run("rotates_token", func(t *testing.T) {
		service, sessions := fixture(t)

		first, err := service.Login(context.Background(), "soyoung", "correct horse battery")
		require.NoError(t, err)

		second, err := service.Refresh(context.Background(), first.RefreshToken)
		require.NoError(t, err)

		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
		// Old session gone, new one present.
		_, err = sessions.Find(context.Background(), sec.HashToken(first.RefreshToken))
		assert.Error(t, err)
		_, err = sessions.Find(context.Background(), sec.HashToken(second.RefreshToken))
		assert.NoError(t, err)
	})

	t.Run("replay_rejected", func(t *testing.T) {
		service, _ := fixture(t)

		first, err := service.Login(context.Background(), "soyoung", "correct horse battery")
		require.NoError(t, err)

		_, err = service.Refresh(context.Background(), first.RefreshToken)
		require.NoError(t, err)

		// Second use of the same token must fail.
		_, err = service.Refresh(context.Background(), first.RefreshToken)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
	})

	t.Run("unknown_token", func(t *testing.T) {
		service, _ := fixture(t)

		_, err := service.Refresh(context.Background(), "never-issued")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
	})
}

// # Logout

/*
TestService_Logout checks revocation and idempotency.
*/
func TestService_Logout(t *testing.T) {
	service, sessions := fixture(t)

	session, err := service.Login(context.Background(), "soyoung", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	_, err = sessions.Find(context.Background(), sec.HashToken(session.RefreshToken))
	assert.Error(t, err)

	// Logging out again, or with garbage, still succeeds.
	assert.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	assert.NoError(t, service.Logout(context.Background(), ""))
}
