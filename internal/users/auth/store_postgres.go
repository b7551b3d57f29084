// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soyounglim/gallerim/internal/platform/database/schema"
	"github.com/soyounglim/gallerim/internal/platform/dberr"
	"github.com/soyounglim/gallerim/internal/platform/sec"
)

// PostgresAccountRepository implements [AccountRepository] on PostgreSQL.
//
// Admin accounts are read-only from the API's perspective; provisioning
// happens via migrations or direct SQL.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (repository *PostgresAccountRepository) FindByID(ctx context.Context, id string) (*Account, error) {
	return repository.findBy(ctx, schema.UsersAdminAccount.ID, id)
}

func (repository *PostgresAccountRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	return repository.findBy(ctx, schema.UsersAdminAccount.Username, username)
}

func (repository *PostgresAccountRepository) findBy(ctx context.Context, column, value string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UsersAdminAccount.ID, schema.UsersAdminAccount.Username,
		schema.UsersAdminAccount.PasswordHash, schema.UsersAdminAccount.Role,
		schema.UsersAdminAccount.RowCreated, schema.UsersAdminAccount.RowUpdated,
		schema.UsersAdminAccount.Table, column,
	)

	account := &Account{}
	var role string

	err := repository.db.QueryRow(ctx, query, value).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &role,
		&account.RowCreated, &account.RowUpdated,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_admin_account")
	}

	account.Role = sec.Role(role)
	return account, nil
}
