// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed operation for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations. Unique violations reach here only when a
	// service-level duplicate check raced with a concurrent writer; the
	// constraint is the real guard.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &apperr.AppError{
				Code:       apperr.KindDuplicateName,
				Message:    "A record with the same unique value already exists",
				HTTPStatus: 409,
				Cause:      err,
			}
		case pgerrcode.ForeignKeyViolation:
			return apperr.InUse("Resource")
		case pgerrcode.CheckViolation:
			return &apperr.AppError{
				Code:       apperr.KindOutOfRange,
				Message:    "A value is outside its permitted range",
				HTTPStatus: 400,
				Cause:      err,
			}
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
