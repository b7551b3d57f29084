// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package auth implements admin authentication for the CMS.

There is no public registration: admin accounts are provisioned directly in
the database. The flow is access JWT (RS256, short-lived) plus an opaque
refresh token whose session lives in Redis under the token's hash and expires
with the Redis TTL. Refresh rotates the token; logout deletes the session.
*/
package auth

import (
	"time"

	"github.com/soyounglim/gallerim/internal/platform/sec"
)

// Account is one CMS administrator.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         sec.Role  `json:"role"`
	RowCreated   time.Time `json:"row_created"`
	RowUpdated   time.Time `json:"row_updated"`
}

// Session is the volatile refresh-session payload stored in Redis.
// The key is the refresh token's SHA-256 hash; expiry is the Redis TTL.
type Session struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

const (
	// RefreshTokenLength is the refresh token entropy in bytes.
	RefreshTokenLength = 32

	// PasswordMinLen applies to credential payloads at the HTTP layer.
	PasswordMinLen = 8
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)
