// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package genre

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// Repository defines storage operations for genres and their translations.
type Repository interface {
	// WithTx returns a clone bound to the given transaction handle.
	WithTx(tx pgx.Tx) Repository

	List(ctx context.Context) ([]*Genre, error)
	GetByID(ctx context.Context, id string) (*Genre, error)

	// MissingIDs returns the subset of ids with no genre row, in input order.
	// Used by the artwork service to validate genre references.
	MissingIDs(ctx context.Context, ids []string) ([]string, error)

	// NameExists reports whether name is already taken in lang by a genre
	// other than excludeID (pass "" on create).
	NameExists(ctx context.Context, lang i18n.Lang, name, excludeID string) (bool, error)

	Insert(ctx context.Context, g *Genre) error
	// UpsertTranslations inserts or renames the given per-language rows.
	UpsertTranslations(ctx context.Context, genreID string, rows []Translation) error
	Delete(ctx context.Context, id string) error
}
