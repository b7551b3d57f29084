// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines storage operations for artworks, their translations and
// their genre links.
type Repository interface {
	// WithTx returns a clone of the repository bound to the given transaction
	// handle. All writes of one logical operation go through such clones so
	// they commit or roll back together.
	WithTx(tx pgx.Tx) Repository

	List(ctx context.Context, filter Filter, limit, offset int) ([]*Artwork, int, error)
	GetByID(ctx context.Context, id string) (*Artwork, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Artwork, error)

	Insert(ctx context.Context, a *Artwork) error
	Update(ctx context.Context, a *Artwork) error
	Delete(ctx context.Context, id string) error

	InsertTranslations(ctx context.Context, artworkID string, rows []Translation) error
	// MergeTranslations applies sparse per-language patches: nil fields keep
	// the stored value, non-nil fields overwrite it.
	MergeTranslations(ctx context.Context, artworkID string, patches []TranslationPatch) error

	// ReplaceGenres rewrites the genre link set for one artwork.
	ReplaceGenres(ctx context.Context, artworkID string, genreIDs []string) error

	// SetDraft flips is_draft for every listed artwork in one statement.
	SetDraft(ctx context.Context, ids []string, isDraft bool) error
}
