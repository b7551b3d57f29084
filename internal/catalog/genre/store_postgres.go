// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package genre

import (
	"context"
	"fmt"

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

// List returns every genre with translations and artwork counts. The taxonomy
// is small enough that pagination would be noise.
func (repository *PostgresRepository) List(ctx context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s,
		       (SELECT COUNT(*) FROM %s ag WHERE ag.%s = g.%s)
		FROM %s g
		ORDER BY g.%s
	`,
		schema.CatalogGenre.ID, schema.CatalogGenre.RowCreated, schema.CatalogGenre.RowUpdated,
		schema.CatalogArtworkGenre.Table, schema.CatalogArtworkGenre.GenreID, schema.CatalogGenre.ID,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := make([]*Genre, 0)
	byID := make(map[string]*Genre)

	for rows.Next() {
		g := &Genre{Translations: make([]Translation, 0)}
		if err := rows.Scan(&g.ID, &g.RowCreated, &g.RowUpdated, &g.ArtworkCount); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
		byID[g.ID] = g
	}
	rows.Close()

	trQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s, %s`,
		schema.CatalogGenreTranslation.GenreID, schema.CatalogGenreTranslation.Lang,
		schema.CatalogGenreTranslation.Name, schema.CatalogGenreTranslation.Table,
		schema.CatalogGenreTranslation.GenreID, schema.CatalogGenreTranslation.Lang,
	)

	trRows, err := repository.db.Query(ctx, trQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genre_translations")
	}
	defer trRows.Close()

	for trRows.Next() {
		tr := Translation{}
		var lang string
		if err := trRows.Scan(&tr.GenreID, &lang, &tr.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_translation")
		}
		tr.Lang = i18n.Lang(lang)
		if g, ok := byID[tr.GenreID]; ok {
			g.Translations = append(g.Translations, tr)
		}
	}

	return genres, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Genre, error) {
	query := fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s,
		       (SELECT COUNT(*) FROM %s ag WHERE ag.%s = g.%s)
		FROM %s g
		WHERE g.%s = $1
	`,
		schema.CatalogGenre.ID, schema.CatalogGenre.RowCreated, schema.CatalogGenre.RowUpdated,
		schema.CatalogArtworkGenre.Table, schema.CatalogArtworkGenre.GenreID, schema.CatalogGenre.ID,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID,
	)

	g := &Genre{Translations: make([]Translation, 0)}
	err := repository.db.QueryRow(ctx, query, id).Scan(&g.ID, &g.RowCreated, &g.RowUpdated, &g.ArtworkCount)
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}

	trQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s`,
		schema.CatalogGenreTranslation.Lang, schema.CatalogGenreTranslation.Name,
		schema.CatalogGenreTranslation.Table, schema.CatalogGenreTranslation.GenreID,
		schema.CatalogGenreTranslation.Lang,
	)

	trRows, err := repository.db.Query(ctx, trQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genre_translations")
	}
	defer trRows.Close()

	for trRows.Next() {
		tr := Translation{GenreID: id}
		var lang string
		if err := trRows.Scan(&lang, &tr.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_translation")
		}
		tr.Lang = i18n.Lang(lang)
		g.Translations = append(g.Translations, tr)
	}

	return g, nil
}

func (repository *PostgresRepository) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		schema.CatalogGenre.ID, schema.CatalogGenre.Table, schema.CatalogGenre.ID)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "check_genre_ids")
	}
	defer rows.Close()

	found := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_id")
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

func (repository *PostgresRepository) NameExists(ctx context.Context, lang i18n.Lang, name, excludeID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1 AND %s = $2 AND %s <> $3
		)
	`,
		schema.CatalogGenreTranslation.Table,
		schema.CatalogGenreTranslation.Lang, schema.CatalogGenreTranslation.Name,
		schema.CatalogGenreTranslation.GenreID,
	)

	exists := false
	if err := repository.db.QueryRow(ctx, query, string(lang), name, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_genre_name")
	}
	return exists, nil
}

// # Writes

func (repository *PostgresRepository) Insert(ctx context.Context, g *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1)`,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID)

	if _, err := repository.db.Exec(ctx, query, g.ID); err != nil {
		return dberr.Wrap(err, "insert_genre")
	}
	return nil
}

func (repository *PostgresRepository) UpsertTranslations(ctx context.Context, genreID string, rows []Translation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = $3
	`,
		schema.CatalogGenreTranslation.Table,
		schema.CatalogGenreTranslation.GenreID, schema.CatalogGenreTranslation.Lang,
		schema.CatalogGenreTranslation.Name,
		schema.CatalogGenreTranslation.GenreID, schema.CatalogGenreTranslation.Lang,
		schema.CatalogGenreTranslation.Name,
	)

	for _, tr := range rows {
		if _, err := repository.db.Exec(ctx, query, genreID, string(tr.Lang), tr.Name); err != nil {
			return dberr.Wrap(err, "upsert_genre_translation")
		}
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogGenre.Table, schema.CatalogGenre.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_genre")
	}
	return nil
}
