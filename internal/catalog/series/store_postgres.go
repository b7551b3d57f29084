// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package series

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

func (repository *PostgresRepository) List(ctx context.Context) ([]*Series, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s DESC`,
		schema.CatalogSeries.ID, schema.CatalogSeries.RowCreated, schema.CatalogSeries.RowUpdated,
		schema.CatalogSeries.Table, schema.CatalogSeries.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_series")
	}
	defer rows.Close()

	all := make([]*Series, 0)
	byID := make(map[string]*Series)

	for rows.Next() {
		s := &Series{Translations: make([]Translation, 0), Items: make([]Item, 0)}
		if err := rows.Scan(&s.ID, &s.RowCreated, &s.RowUpdated); err != nil {
			return nil, dberr.Wrap(err, "scan_series")
		}
		all = append(all, s)
		byID[s.ID] = s
	}
	rows.Close()

	if err := repository.hydrate(ctx, byID, ""); err != nil {
		return nil, err
	}
	return all, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Series, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogSeries.ID, schema.CatalogSeries.RowCreated, schema.CatalogSeries.RowUpdated,
		schema.CatalogSeries.Table, schema.CatalogSeries.ID,
	)

	s := &Series{Translations: make([]Translation, 0), Items: make([]Item, 0)}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.RowCreated, &s.RowUpdated); err != nil {
		return nil, dberr.Wrap(err, "get_series")
	}

	if err := repository.hydrate(ctx, map[string]*Series{id: s}, id); err != nil {
		return nil, err
	}
	return s, nil
}

// hydrate loads translations and ordered items. With filterID set the queries
// narrow to one series; otherwise they load everything in byID.
func (repository *PostgresRepository) hydrate(ctx context.Context, byID map[string]*Series, filterID string) error {
	if len(byID) == 0 {
		return nil
	}

	args := []any{}
	trWhere := ""
	if filterID != "" {
		trWhere = fmt.Sprintf("WHERE %s = $1", schema.CatalogSeriesTranslation.SeriesID)
		args = append(args, filterID)
	}

	trQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s %s ORDER BY %s, %s`,
		schema.CatalogSeriesTranslation.SeriesID, schema.CatalogSeriesTranslation.Lang,
		schema.CatalogSeriesTranslation.Title, schema.CatalogSeriesTranslation.Table,
		trWhere,
		schema.CatalogSeriesTranslation.SeriesID, schema.CatalogSeriesTranslation.Lang,
	)

	trRows, err := repository.db.Query(ctx, trQuery, args...)
	if err != nil {
		return dberr.Wrap(err, "list_series_translations")
	}
	defer trRows.Close()

	for trRows.Next() {
		tr := Translation{}
		var lang string
		if err := trRows.Scan(&tr.SeriesID, &lang, &tr.Title); err != nil {
			return dberr.Wrap(err, "scan_series_translation")
		}
		tr.Lang = i18n.Lang(lang)
		if s, ok := byID[tr.SeriesID]; ok {
			s.Translations = append(s.Translations, tr)
		}
	}
	trRows.Close()

	itemWhere := ""
	if filterID != "" {
		itemWhere = fmt.Sprintf("WHERE %s = $1", schema.CatalogSeriesArtwork.SeriesID)
	}
	itemQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s %s ORDER BY %s, %s`,
		schema.CatalogSeriesArtwork.SeriesID, schema.CatalogSeriesArtwork.ArtworkID,
		schema.CatalogSeriesArtwork.SortOrder, schema.CatalogSeriesArtwork.Table,
		itemWhere,
		schema.CatalogSeriesArtwork.SeriesID, schema.CatalogSeriesArtwork.SortOrder,
	)

	itemRows, err := repository.db.Query(ctx, itemQuery, args...)
	if err != nil {
		return dberr.Wrap(err, "list_series_artworks")
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var seriesID string
		item := Item{}
		if err := itemRows.Scan(&seriesID, &item.ArtworkID, &item.SortOrder); err != nil {
			return dberr.Wrap(err, "scan_series_artwork")
		}
		if s, ok := byID[seriesID]; ok {
			s.Items = append(s.Items, item)
		}
	}

	return nil
}

func (repository *PostgresRepository) TitleExists(ctx context.Context, lang i18n.Lang, title, excludeID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1 AND %s = $2 AND %s <> $3
		)
	`,
		schema.CatalogSeriesTranslation.Table,
		schema.CatalogSeriesTranslation.Lang, schema.CatalogSeriesTranslation.Title,
		schema.CatalogSeriesTranslation.SeriesID,
	)

	exists := false
	if err := repository.db.QueryRow(ctx, query, string(lang), title, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_series_title")
	}
	return exists, nil
}

// # Writes

func (repository *PostgresRepository) Insert(ctx context.Context, s *Series) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1)`,
		schema.CatalogSeries.Table, schema.CatalogSeries.ID)

	if _, err := repository.db.Exec(ctx, query, s.ID); err != nil {
		return dberr.Wrap(err, "insert_series")
	}
	return nil
}

func (repository *PostgresRepository) UpsertTranslations(ctx context.Context, seriesID string, rows []Translation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = $3
	`,
		schema.CatalogSeriesTranslation.Table,
		schema.CatalogSeriesTranslation.SeriesID, schema.CatalogSeriesTranslation.Lang,
		schema.CatalogSeriesTranslation.Title,
		schema.CatalogSeriesTranslation.SeriesID, schema.CatalogSeriesTranslation.Lang,
		schema.CatalogSeriesTranslation.Title,
	)

	for _, tr := range rows {
		if _, err := repository.db.Exec(ctx, query, seriesID, string(tr.Lang), tr.Title); err != nil {
			return dberr.Wrap(err, "upsert_series_translation")
		}
	}
	return nil
}

func (repository *PostgresRepository) ReplaceArtworks(ctx context.Context, seriesID string, artworkIDs []string) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogSeriesArtwork.Table, schema.CatalogSeriesArtwork.SeriesID)

	if _, err := repository.db.Exec(ctx, deleteQuery, seriesID); err != nil {
		return dberr.Wrap(err, "clear_series_artworks")
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.CatalogSeriesArtwork.Table,
		schema.CatalogSeriesArtwork.SeriesID, schema.CatalogSeriesArtwork.ArtworkID,
		schema.CatalogSeriesArtwork.SortOrder,
	)

	for position, artworkID := range artworkIDs {
		if _, err := repository.db.Exec(ctx, insertQuery, seriesID, artworkID, position); err != nil {
			return dberr.Wrap(err, "insert_series_artwork")
		}
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogSeries.Table, schema.CatalogSeries.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_series")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_series")
	}
	return nil
}
