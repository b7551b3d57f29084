// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package series

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// Repository defines storage operations for series, their translations and
// their ordered artwork associations.
type Repository interface {
	// WithTx returns a clone bound to the given transaction handle.
	WithTx(tx pgx.Tx) Repository

	List(ctx context.Context) ([]*Series, error)
	GetByID(ctx context.Context, id string) (*Series, error)

	// TitleExists reports whether title is already taken in lang by a series
	// other than excludeID (pass "" on create).
	TitleExists(ctx context.Context, lang i18n.Lang, title, excludeID string) (bool, error)

	Insert(ctx context.Context, s *Series) error
	// UpsertTranslations inserts or retitles the given per-language rows.
	UpsertTranslations(ctx context.Context, seriesID string, rows []Translation) error
	// ReplaceArtworks rewrites the ordered association; position in artworkIDs
	// becomes the sort order.
	ReplaceArtworks(ctx context.Context, seriesID string, artworkIDs []string) error
	Delete(ctx context.Context, id string) error
}
