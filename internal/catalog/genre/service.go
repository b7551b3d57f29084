// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package genre

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

// # Wire Shapes

// CreateRequest carries the flat per-language names for a new genre.
// All three are mandatory: a genre is either fully translated or absent.
type CreateRequest struct {
	KoName string `json:"koName"`
	EnName string `json:"enName"`
	JaName string `json:"jaName"`
}

func (r CreateRequest) names() map[i18n.Lang]string {
	return map[i18n.Lang]string{
		i18n.Ko: r.KoName,
		i18n.En: r.EnName,
		i18n.Ja: r.JaName,
	}
}

// UpdateRequest renames any subset of languages. nil fields are untouched.
type UpdateRequest struct {
	KoName *string `json:"koName"`
	EnName *string `json:"enName"`
	JaName *string `json:"jaName"`
}

func (r UpdateRequest) names() map[i18n.Lang]*string {
	return map[i18n.Lang]*string{
		i18n.Ko: r.KoName,
		i18n.En: r.EnName,
		i18n.Ja: r.JaName,
	}
}

// # Service Layer

// Service orchestrates genre taxonomy management.
type Service struct {
	repo   Repository
	tx     postgres.TxRunner
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, tx postgres.TxRunner, logger *slog.Logger) *Service {
	return &Service{repo: repo, tx: tx, logger: logger}
}

// ListGenres returns the whole taxonomy with artwork counts.
func (service *Service) ListGenres(ctx context.Context) ([]*Genre, error) {
	return service.repo.List(ctx)
}

// GetGenre retrieves one genre by ID.
func (service *Service) GetGenre(ctx context.Context, id string) (*Genre, error) {
	return service.repo.GetByID(ctx, id)
}

/*
CreateGenre persists a new genre with its full translation set.

Description: Every supported language must carry a non-blank name
(NOT_ENOUGH_TRANSLATIONS lists the missing codes). Each name must be unique
within its language (DUPLICATE_NAME). Row and translations are written in one
transaction.
*/
func (service *Service) CreateGenre(ctx context.Context, req CreateRequest) (*Genre, error) {
	names := req.names()

	var missing []string
	for _, lang := range i18n.Supported() {
		if strings.TrimSpace(names[lang]) == "" {
			missing = append(missing, string(lang))
		}
	}
	if len(missing) > 0 {
		return nil, apperr.NotEnoughTranslations(missing)
	}

	if err := validateNames(names); err != nil {
		return nil, err
	}

	for _, lang := range i18n.Supported() {
		if err := service.checkNameFree(ctx, lang, names[lang], ""); err != nil {
			return nil, err
		}
	}

	g := &Genre{ID: uuidv7.New()}
	for _, lang := range i18n.Supported() {
		g.Translations = append(g.Translations, Translation{
			GenreID: g.ID,
			Lang:    lang,
			Name:    names[lang],
		})
	}

	err := service.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := service.repo.WithTx(tx)
		if err := repo.Insert(ctx, g); err != nil {
			return err
		}
		return repo.UpsertTranslations(ctx, g.ID, g.Translations)
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("genre_created", slog.String("genre_id", g.ID))
	return service.repo.GetByID(ctx, g.ID)
}

/*
UpdateGenre renames a genre in any subset of languages.

Description: At least one language must be supplied (NO_TRANSLATIONS_PROVIDED
otherwise). Supplied names must be non-blank and unique within their language.
*/
func (service *Service) UpdateGenre(ctx context.Context, id string, req UpdateRequest) (*Genre, error) {
	names := req.names()

	supplied := make(map[i18n.Lang]string)
	for _, lang := range i18n.Supported() {
		if names[lang] != nil {
			supplied[lang] = *names[lang]
		}
	}
	if len(supplied) == 0 {
		return nil, apperr.NoTranslationsProvided()
	}

	if err := validateNames(supplied); err != nil {
		return nil, err
	}

	// Existence first so unknown IDs read as 404, not 409.
	if _, err := service.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var rows []Translation
	for _, lang := range i18n.Supported() {
		name, ok := supplied[lang]
		if !ok {
			continue
		}
		if err := service.checkNameFree(ctx, lang, name, id); err != nil {
			return nil, err
		}
		rows = append(rows, Translation{GenreID: id, Lang: lang, Name: name})
	}

	err := service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).UpsertTranslations(ctx, id, rows)
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("genre_updated", slog.String("genre_id", id))
	return service.repo.GetByID(ctx, id)
}

/*
DeleteGenre removes a genre that no artwork references.

Returns:
  - error: IN_USE while any artwork (draft or published) still links to it.
*/
func (service *Service) DeleteGenre(ctx context.Context, id string) error {
	g, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if g.ArtworkCount > 0 {
		return apperr.InUse("Genre")
	}

	err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	service.logger.Info("genre_deleted", slog.String("genre_id", id))
	return nil
}

// # Helpers

func validateNames(names map[i18n.Lang]string) error {
	validator := &validate.Validator{}
	for _, lang := range i18n.Supported() {
		name, ok := names[lang]
		if !ok {
			continue
		}
		field := string(lang) + "Name"
		validator.Required(field, name)
		validator.MaxLen(field, name, NameMaxLen)
	}
	return validator.Err()
}

func (service *Service) checkNameFree(ctx context.Context, lang i18n.Lang, name, excludeID string) error {
	taken, err := service.repo.NameExists(ctx, lang, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.DuplicateName(string(lang), name)
	}
	return nil
}
