// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package series

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/internal/platform/postgres"
	"github.com/soyounglim/gallerim/internal/platform/validate"
	"github.com/soyounglim/gallerim/pkg/uuidv7"
)

// ArtworkChecker verifies artwork references for the ordered association.
// Implemented by the artwork repository.
type ArtworkChecker interface {
	// MissingIDs returns the subset of ids with no artwork row, in input order.
	MissingIDs(ctx context.Context, ids []string) ([]string, error)
}

// # Wire Shapes

// CreateRequest carries the flat per-language titles for a new series.
// All three are mandatory.
type CreateRequest struct {
	KoTitle string `json:"koTitle"`
	EnTitle string `json:"enTitle"`
	JaTitle string `json:"jaTitle"`
}

func (r CreateRequest) titles() map[i18n.Lang]string {
	return map[i18n.Lang]string{
		i18n.Ko: r.KoTitle,
		i18n.En: r.EnTitle,
		i18n.Ja: r.JaTitle,
	}
}

// UpdateRequest retitles any subset of languages. nil fields are untouched.
type UpdateRequest struct {
	KoTitle *string `json:"koTitle"`
	EnTitle *string `json:"enTitle"`
	JaTitle *string `json:"jaTitle"`
}

func (r UpdateRequest) titles() map[i18n.Lang]*string {
	return map[i18n.Lang]*string{
		i18n.Ko: r.KoTitle,
		i18n.En: r.EnTitle,
		i18n.Ja: r.JaTitle,
	}
}

// ReplaceArtworksRequest is the full ordered association for one series.
// Position in the slice becomes the sort order.
type ReplaceArtworksRequest struct {
	ArtworkIDs []string `json:"artworkIds"`
}

// # Service Layer

// Service orchestrates series management and the ordered artwork association.
type Service struct {
	repo     Repository
	artworks ArtworkChecker
	tx       postgres.TxRunner
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, artworks ArtworkChecker, tx postgres.TxRunner, logger *slog.Logger) *Service {
	return &Service{repo: repo, artworks: artworks, tx: tx, logger: logger}
}

// ListSeries returns every series with translations and ordered items.
func (service *Service) ListSeries(ctx context.Context) ([]*Series, error) {
	return service.repo.List(ctx)
}

// GetSeries retrieves one series by ID.
func (service *Service) GetSeries(ctx context.Context, id string) (*Series, error) {
	return service.repo.GetByID(ctx, id)
}

/*
CreateSeries persists a new series with its full translation set.

Description: Every supported language must carry a non-blank title
(NOT_ENOUGH_TRANSLATIONS). Each title must be unique within its language
(DUPLICATE_TITLE). A new series starts with no artwork association.
*/
func (service *Service) CreateSeries(ctx context.Context, req CreateRequest) (*Series, error) {
	titles := req.titles()

	var missing []string
	for _, lang := range i18n.Supported() {
		if strings.TrimSpace(titles[lang]) == "" {
			missing = append(missing, string(lang))
		}
	}
	if len(missing) > 0 {
		return nil, apperr.NotEnoughTranslations(missing)
	}

	if err := validateTitles(titles); err != nil {
		return nil, err
	}

	for _, lang := range i18n.Supported() {
		if err := service.checkTitleFree(ctx, lang, titles[lang], ""); err != nil {
			return nil, err
		}
	}

	s := &Series{ID: uuidv7.New()}
	for _, lang := range i18n.Supported() {
		s.Translations = append(s.Translations, Translation{
			SeriesID: s.ID,
			Lang:     lang,
			Title:    titles[lang],
		})
	}

	err := service.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := service.repo.WithTx(tx)
		if err := repo.Insert(ctx, s); err != nil {
			return err
		}
		return repo.UpsertTranslations(ctx, s.ID, s.Translations)
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("series_created", slog.String("series_id", s.ID))
	return service.repo.GetByID(ctx, s.ID)
}

/*
UpdateSeries retitles a series in any subset of languages.

Description: At least one language must be supplied (NO_TRANSLATIONS_PROVIDED
otherwise). Supplied titles must be non-blank and unique within their language.
*/
func (service *Service) UpdateSeries(ctx context.Context, id string, req UpdateRequest) (*Series, error) {
	titles := req.titles()

	supplied := make(map[i18n.Lang]string)
	for _, lang := range i18n.Supported() {
		if titles[lang] != nil {
			supplied[lang] = *titles[lang]
		}
	}
	if len(supplied) == 0 {
		return nil, apperr.NoTranslationsProvided()
	}

	if err := validateTitles(supplied); err != nil {
		return nil, err
	}

	if _, err := service.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var rows []Translation
	for _, lang := range i18n.Supported() {
		title, ok := supplied[lang]
		if !ok {
			continue
		}
		if err := service.checkTitleFree(ctx, lang, title, id); err != nil {
			return nil, err
		}
		rows = append(rows, Translation{SeriesID: id, Lang: lang, Title: title})
	}

	err := service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).UpsertTranslations(ctx, id, rows)
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("series_updated", slog.String("series_id", id))
	return service.repo.GetByID(ctx, id)
}

/*
ReplaceArtworks rewrites the ordered artwork association of a series.

Description: The submitted list replaces the association wholesale; slice
position becomes the display order. Every referenced artwork must exist
(NOT_FOUND lists the unknowns as "<id>|artworkIds"). Duplicate IDs within one
request are rejected. An empty list clears the association.
*/
func (service *Service) ReplaceArtworks(ctx context.Context, id string, req ReplaceArtworksRequest) (*Series, error) {
	seen := make(map[string]bool, len(req.ArtworkIDs))
	for _, artworkID := range req.ArtworkIDs {
		if seen[artworkID] {
			return nil, apperr.ValidationError("Duplicate artwork in sequence",
				apperr.FieldError{Field: "artworkIds", Message: "Artwork " + artworkID + " appears more than once"})
		}
		seen[artworkID] = true
	}

	if _, err := service.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	missing, err := service.artworks.MissingIDs(ctx, req.ArtworkIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		entries := make([]string, 0, len(missing))
		for _, artworkID := range missing {
			entries = append(entries, artworkID+"|artworkIds")
		}
		return nil, apperr.NotFound("Artwork").WithErrors(map[string][]string{
			apperr.KindNotFound: entries,
		})
	}

	err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).ReplaceArtworks(ctx, id, req.ArtworkIDs)
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("series_artworks_replaced",
		slog.String("series_id", id),
		slog.Int("count", len(req.ArtworkIDs)),
	)
	return service.repo.GetByID(ctx, id)
}

/*
DeleteSeries removes a series with no artwork associations.

Returns:
  - error: IN_USE while the series still holds any association; clear the
    sequence first.
*/
func (service *Service) DeleteSeries(ctx context.Context, id string) error {
	s, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if len(s.Items) > 0 {
		return apperr.InUse("Series")
	}

	err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	service.logger.Info("series_deleted", slog.String("series_id", id))
	return nil
}

// # Helpers

func validateTitles(titles map[i18n.Lang]string) error {
	validator := &validate.Validator{}
	for _, lang := range i18n.Supported() {
		title, ok := titles[lang]
		if !ok {
			continue
		}
		field := string(lang) + "Title"
		validator.Required(field, title)
		validator.MaxLen(field, title, TitleMaxLen)
	}
	return validator.Err()
}

func (service *Service) checkTitleFree(ctx context.Context, lang i18n.Lang, title, excludeID string) error {
	taken, err := service.repo.TitleExists(ctx, lang, title, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.DuplicateTitle(string(lang), title)
	}
	return nil
}
