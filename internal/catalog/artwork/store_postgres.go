// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soyounglim/gallerim/internal/platform/database/schema"
	"github.com/soyounglim/gallerim/internal/platform/dberr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// WithTx rebinds the repository to a transaction handle.
func (repository *PostgresRepository) WithTx(tx pgx.Tx) Repository {
	return &PostgresRepository{db: tx}
}

// # Reads

func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Artwork, int, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	nextArg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Draft != nil {
		conditions = append(conditions, fmt.Sprintf("a.%s = %s", schema.CatalogArtwork.IsDraft, nextArg(*filter.Draft)))
	}
	if filter.PlayedOn != "" {
		conditions = append(conditions, fmt.Sprintf("a.%s = %s", schema.CatalogArtwork.PlayedOn, nextArg(filter.PlayedOn)))
	}
	if len(filter.GenreIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s ag WHERE ag.%s = a.%s AND ag.%s = ANY(%s))",
			schema.CatalogArtworkGenre.Table,
			schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtwork.ID,
			schema.CatalogArtworkGenre.GenreID, nextArg(filter.GenreIDs)))
	}
	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s t WHERE t.%s = a.%s AND t.%s ILIKE %s)",
			schema.CatalogArtworkTranslation.Table,
			schema.CatalogArtworkTranslation.ArtworkID, schema.CatalogArtwork.ID,
			schema.CatalogArtworkTranslation.Title, nextArg("%"+filter.Query+"%")))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s a WHERE %s`, schema.CatalogArtwork.Table, where)
	total := 0
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artworks")
	}

	// Newest first: UUIDv7 primary keys sort by creation time.
	listQuery := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s a
		WHERE %s
		ORDER BY a.%s DESC
		LIMIT %s OFFSET %s
	`,
		schema.CatalogArtwork.ID, schema.CatalogArtwork.ImageKey, schema.CatalogArtwork.CreatedAt,
		schema.CatalogArtwork.PlayedOn, schema.CatalogArtwork.Rating, schema.CatalogArtwork.IsDraft,
		schema.CatalogArtwork.IsVertical, schema.CatalogArtwork.RowCreated, schema.CatalogArtwork.RowUpdated,
		schema.CatalogArtwork.Table, where, schema.CatalogArtwork.ID,
		nextArg(limit), nextArg(offset),
	)

	rows, err := repository.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artworks")
	}
	defer rows.Close()

	artworks := make([]*Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artwork")
		}
		artworks = append(artworks, a)
	}
	rows.Close()

	if err := repository.hydrate(ctx, artworks); err != nil {
		return nil, 0, err
	}
	return artworks, total, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Artwork, error) {
	artworks, err := repository.ListByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(artworks) == 0 {
		return nil, dberr.Wrap(pgx.ErrNoRows, "get_artwork")
	}
	return artworks[0], nil
}

// ListByIDs returns the artworks that exist among ids, fully hydrated.
// Missing IDs are simply absent from the result; the caller decides whether
// that is an error.
func (repository *PostgresRepository) ListByIDs(ctx context.Context, ids []string) ([]*Artwork, error) {
	if len(ids) == 0 {
		return []*Artwork{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
	`,
		schema.CatalogArtwork.ID, schema.CatalogArtwork.ImageKey, schema.CatalogArtwork.CreatedAt,
		schema.CatalogArtwork.PlayedOn, schema.CatalogArtwork.Rating, schema.CatalogArtwork.IsDraft,
		schema.CatalogArtwork.IsVertical, schema.CatalogArtwork.RowCreated, schema.CatalogArtwork.RowUpdated,
		schema.CatalogArtwork.Table, schema.CatalogArtwork.ID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artworks_by_ids")
	}
	defer rows.Close()

	artworks := make([]*Artwork, 0, len(ids))
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artwork")
		}
		artworks = append(artworks, a)
	}
	rows.Close()

	if err := repository.hydrate(ctx, artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func scanArtwork(row pgx.Row) (*Artwork, error) {
	a := &Artwork{}
	var playedOn *string

	err := row.Scan(
		&a.ID, &a.ImageKey, &a.CreatedAt,
		&playedOn, &a.Rating, &a.IsDraft,
		&a.IsVertical, &a.RowCreated, &a.RowUpdated,
	)
	if err != nil {
		return nil, err
	}

	a.PlayedOn = (*Platform)(playedOn)
	a.GenreIDs = make([]string, 0)
	a.Translations = make([]Translation, 0)
	return a, nil
}

// hydrate loads translations and genre links for a page of artworks with two
// batched queries instead of 2N.
func (repository *PostgresRepository) hydrate(ctx context.Context, artworks []*Artwork) error {
	if len(artworks) == 0 {
		return nil
	}

	ids := make([]string, 0, len(artworks))
	byID := make(map[string]*Artwork, len(artworks))
	for _, a := range artworks {
		ids = append(ids, a.ID)
		byID[a.ID] = a
	}

	trQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`,
		schema.CatalogArtworkTranslation.ArtworkID, schema.CatalogArtworkTranslation.Lang,
		schema.CatalogArtworkTranslation.Title, schema.CatalogArtworkTranslation.ShortReview,
		schema.CatalogArtworkTranslation.Table,
		schema.CatalogArtworkTranslation.ArtworkID,
		schema.CatalogArtworkTranslation.ArtworkID, schema.CatalogArtworkTranslation.Lang,
	)

	trRows, err := repository.db.Query(ctx, trQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_artwork_translations")
	}
	defer trRows.Close()

	for trRows.Next() {
		tr := Translation{}
		var lang string
		if err := trRows.Scan(&tr.ArtworkID, &lang, &tr.Title, &tr.ShortReview); err != nil {
			return dberr.Wrap(err, "scan_artwork_translation")
		}
		tr.Lang = i18n.Lang(lang)
		if a, ok := byID[tr.ArtworkID]; ok {
			a.Translations = append(a.Translations, tr)
		}
	}
	trRows.Close()

	genreQuery := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`,
		schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtworkGenre.GenreID,
		schema.CatalogArtworkGenre.Table,
		schema.CatalogArtworkGenre.ArtworkID,
		schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtworkGenre.GenreID,
	)

	genreRows, err := repository.db.Query(ctx, genreQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_artwork_genres")
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var artworkID, genreID string
		if err := genreRows.Scan(&artworkID, &genreID); err != nil {
			return dberr.Wrap(err, "scan_artwork_genre")
		}
		if a, ok := byID[artworkID]; ok {
			a.GenreIDs = append(a.GenreIDs, genreID)
		}
	}

	return nil
}

// MissingIDs returns the subset of ids with no artwork row, in input order.
/// Not part of [Repository]: it exists for reference checks by other catalog
// services (series associations).
func (repository *PostgresRepository) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		schema.CatalogArtwork.ID, schema.CatalogArtwork.Table, schema.CatalogArtwork.ID)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "check_artwork_ids")
	}
	defer rows.Close()

	found := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_artwork_id")
		}
		found[id] = true
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// # Writes

func (repository *PostgresRepository) Insert(ctx context.Context, a *Artwork) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		schema.CatalogArtwork.Table,
		schema.CatalogArtwork.ID, schema.CatalogArtwork.ImageKey, schema.CatalogArtwork.CreatedAt,
		schema.CatalogArtwork.PlayedOn, schema.CatalogArtwork.Rating, schema.CatalogArtwork.IsDraft,
		schema.CatalogArtwork.IsVertical,
	)

	_, err := repository.db.Exec(ctx, query,
		a.ID, a.ImageKey, a.CreatedAt, a.PlayedOn, a.Rating, a.IsDraft, a.IsVertical)
	if err != nil {
		return dberr.Wrap(err, "insert_artwork")
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, a *Artwork) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
	`,
		schema.CatalogArtwork.Table,
		schema.CatalogArtwork.ImageKey, schema.CatalogArtwork.CreatedAt, schema.CatalogArtwork.PlayedOn,
		schema.CatalogArtwork.Rating, schema.CatalogArtwork.IsVertical, schema.CatalogArtwork.RowUpdated,
		schema.CatalogArtwork.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		a.ID, a.ImageKey, a.CreatedAt, a.PlayedOn, a.Rating, a.IsVertical)
	if err != nil {
		return dberr.Wrap(err, "update_artwork")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "update_artwork")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogArtwork.Table, schema.CatalogArtwork.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artwork")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_artwork")
	}
	return nil
}

func (repository *PostgresRepository) InsertTranslations(ctx context.Context, artworkID string, rows []Translation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
	`,
		schema.CatalogArtworkTranslation.Table,
		schema.CatalogArtworkTranslation.ArtworkID, schema.CatalogArtworkTranslation.Lang,
		schema.CatalogArtworkTranslation.Title, schema.CatalogArtworkTranslation.ShortReview,
	)

	for _, tr := range rows {
		if _, err := repository.db.Exec(ctx, query, artworkID, string(tr.Lang), tr.Title, tr.ShortReview); err != nil {
			return dberr.Wrap(err, "insert_artwork_translation")
		}
	}
	return nil
}

// MergeTranslations upserts one row per patch. COALESCE keeps the stored value
// wherever the patch field is nil, so a request can change one language's
// short review without resubmitting its title.
func (repository *PostgresRepository) MergeTranslations(ctx context.Context, artworkID string, patches []TranslationPatch) error {
	query := fmt.Sprintf(`
		INSERT INTO %s AS t (%s, %s, %s, %s)
		VALUES ($1, $2, COALESCE($3, ''), $4)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = COALESCE($3, t.%s),
			%s = COALESCE($4, t.%s)
	`,
		schema.CatalogArtworkTranslation.Table,
		schema.CatalogArtworkTranslation.ArtworkID, schema.CatalogArtworkTranslation.Lang,
		schema.CatalogArtworkTranslation.Title, schema.CatalogArtworkTranslation.ShortReview,
		schema.CatalogArtworkTranslation.ArtworkID, schema.CatalogArtworkTranslation.Lang,
		schema.CatalogArtworkTranslation.Title, schema.CatalogArtworkTranslation.Title,
		schema.CatalogArtworkTranslation.ShortReview, schema.CatalogArtworkTranslation.ShortReview,
	)

	for _, patch := range patches {
		if _, err := repository.db.Exec(ctx, query, artworkID, string(patch.Lang), patch.Title, patch.ShortReview); err != nil {
			return dberr.Wrap(err, "merge_artwork_translation")
		}
	}
	return nil
}

func (repository *PostgresRepository) ReplaceGenres(ctx context.Context, artworkID string, genreIDs []string) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogArtworkGenre.Table, schema.CatalogArtworkGenre.ArtworkID)

	if _, err := repository.db.Exec(ctx, deleteQuery, artworkID); err != nil {
		return dberr.Wrap(err, "clear_artwork_genres")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.CatalogArtworkGenre.Table,
		schema.CatalogArtworkGenre.ArtworkID, schema.CatalogArtworkGenre.GenreID)

	for _, genreID := range genreIDs {
		if _, err := repository.db.Exec(ctx, insertQuery, artworkID, genreID); err != nil {
			return dberr.Wrap(err, "insert_artwork_genre")
		}
	}
	return nil
}

func (repository *PostgresRepository) SetDraft(ctx context.Context, ids []string, isDraft bool) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = ANY($1)
	`,
		schema.CatalogArtwork.Table,
		schema.CatalogArtwork.IsDraft, schema.CatalogArtwork.RowUpdated,
		schema.CatalogArtwork.ID,
	)

	if _, err := repository.db.Exec(ctx, query, ids, isDraft); err != nil {
		return dberr.Wrap(err, "set_artwork_draft")
	}
	return nil
}
