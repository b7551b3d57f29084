// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// # Unit of Work

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
//
// Repositories are written against this interface so that the same query code
// runs either directly on the pool or inside a transaction handle obtained
// from [TxRunner]. See the WithTx method on each repository.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxRunner executes a function inside a single database transaction.
//
// # Contract
//
// One call = one transaction = one logical operation. The callback receives
// the live transaction handle; every repository involved in the operation must
// be rebound to that handle (repo.WithTx(tx)) and all writes performed through
// the rebound clones. If fn returns an error the transaction is rolled back
// and the error propagates unchanged — this layer adds no error translation.
// Nested InTx calls are not supported.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// poolTxRunner implements [TxRunner] on top of a pgx connection pool.
type poolTxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner returns a [TxRunner] backed by the given pool.
func NewTxRunner(pool *pgxpool.Pool) TxRunner {
	return &poolTxRunner{pool: pool}
}

// InTx runs fn inside a transaction with commit/rollback handling.
func (runner *poolTxRunner) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	transaction, err := runner.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	// Rollback is a no-op after a successful commit; deferring it reclaims
	// the connection if fn panics or returns early.
	defer transaction.Rollback(ctx)

	if err := fn(transaction); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}
