// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/postgres"
	"github.com/soyounglim/gallerim/internal/platform/validate"
	"github.com/soyounglim/gallerim/pkg/uuidv7"
)

// GenreChecker verifies genre references without dragging the full genre
// package in. Implemented by the genre repository.
type GenreChecker interface {
	// MissingIDs returns the subset of ids with no genre row, in input order.
	MissingIDs(ctx context.Context, ids []string) ([]string, error)
}

// # Service Layer

// Service orchestrates artwork business logic: draft CRUD, the publish gate
// and bulk status changes.
type Service struct {
	repo      Repository
	genres    GenreChecker
	tx        postgres.TxRunner
	validator *StatusValidator
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, genres GenreChecker, tx postgres.TxRunner, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		genres:    genres,
		tx:        tx,
		validator: NewStatusValidator(),
		logger:    logger,
	}
}

// # Queries

/*
ListArtworks retrieves a page of artworks matching the filter.

Parameters:
  - ctx: context.Context
  - filter: Filter (draft state, genre, platform, title search)
  - limit, offset: page window

Returns:
  - []*Artwork: Hydrated entities (translations + genre IDs)
  - int: Total match count for pagination metadata
  - error: Storage errors
*/
func (service *Service) ListArtworks(ctx context.Context, filter Filter, limit, offset int) ([]*Artwork, int, error) {
	return service.repo.List(ctx, filter, limit, offset)
}

// GetArtwork retrieves a single hydrated artwork by ID.
func (service *Service) GetArtwork(ctx context.Context, id string) (*Artwork, error) {
	return service.repo.GetByID(ctx, id)
}

// # Mutations

/*
CreateArtwork persists a new draft artwork.

Description: Validates the payload (image key, all three titles, optional
rating/platform, review length caps), verifies every referenced genre exists,
then writes the artwork row, its three translation rows and its genre links in
one transaction. New artworks always start as drafts regardless of payload.

Returns:
  - *Artwork: The stored entity
  - error: Validation, reference or persistence errors
*/
func (service *Service) CreateArtwork(ctx context.Context, req CreateRequest) (*Artwork, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	if err := service.checkGenresExist(ctx, req.GenreIDs); err != nil {
		return nil, err
	}

	id := uuidv7.New()
	a := &Artwork{
		ID:           id,
		ImageKey:     req.ImageKey,
		CreatedAt:    req.CreatedAt,
		PlayedOn:     (*Platform)(req.PlayedOn),
		Rating:       req.Rating,
		IsDraft:      true,
		IsVertical:   req.IsVertical,
		GenreIDs:     req.GenreIDs,
		Translations: req.Translations(id),
	}

	err := service.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := service.repo.WithTx(tx)
		if err := repo.Insert(ctx, a); err != nil {
			return err
		}
		if err := repo.InsertTranslations(ctx, a.ID, a.Translations); err != nil {
			return err
		}
		return repo.ReplaceGenres(ctx, a.ID, a.GenreIDs)
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("artwork_created",
		slog.String("artwork_id", a.ID),
		slog.Int("genres", len(a.GenreIDs)),
	)

	return service.repo.GetByID(ctx, a.ID)
}

/*
UpdateArtwork applies a sparse update to an existing artwork.

Description: nil request fields leave the stored value untouched; non-nil
fields overwrite it. Translation patches merge per language. A request that
carries nothing at all is rejected before any storage work.

Returns:
  - *Artwork: The updated entity
  - error: Validation, reference or persistence errors
*/
func (service *Service) UpdateArtwork(ctx context.Context, id string, req UpdateRequest) (*Artwork, error) {
	if req.Empty() {
		return nil, apperr.NoTranslationsProvided()
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	a, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GenreIDs != nil {
		if err := service.checkGenresExist(ctx, req.GenreIDs); err != nil {
			return nil, err
		}
	}

	// Merge scalar fields onto the loaded snapshot.
	if req.ImageKey != nil {
		a.ImageKey = *req.ImageKey
	}
	if req.CreatedAt != nil {
		a.CreatedAt = req.CreatedAt
	}
	if req.PlayedOn != nil {
		a.PlayedOn = (*Platform)(req.PlayedOn)
	}
	if req.Rating != nil {
		a.Rating = req.Rating
	}
	if req.IsVertical != nil {
		a.IsVertical = *req.IsVertical
	}

	patches := req.TranslationPatches()

	err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
		repo := service.repo.WithTx(tx)
		if err := repo.Update(ctx, a); err != nil {
			return err
		}
		if len(patches) > 0 {
			if err := repo.MergeTranslations(ctx, id, patches); err != nil {
				return err
			}
		}
		if req.GenreIDs != nil {
			if err := repo.ReplaceGenres(ctx, id, req.GenreIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("artwork_updated", slog.String("artwork_id", id))
	return service.repo.GetByID(ctx, id)
}

/*
DeleteArtwork removes a draft artwork and its dependent rows.

Description: Published artworks cannot be deleted directly; they must be
unpublished first. Translation and genre link rows go with the artwork via
FK cascade.
*/
func (service *Service) DeleteArtwork(ctx context.Context, id string) error {
	a, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !a.IsDraft {
		return apperr.AlreadyPublished("Artwork")
	}

	err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	service.logger.Info("artwork_deleted", slog.String("artwork_id", id))
	return nil
}

// # Status Changes

/*
PublishArtwork publishes a single draft artwork.

Returns:
  - error: ALREADY_PUBLISHED if the artwork is not a draft; a PUBLISH_BLOCKED
    error carrying the aggregated rule failures if the publish gate rejects it.
*/
func (service *Service) PublishArtwork(ctx context.Context, id string) error {
	a, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !a.IsDraft {
		return apperr.AlreadyPublished("Artwork")
	}

	if violations := service.validator.Validate(a); len(violations) > 0 {
		return apperr.PublishBlocked(service.validator.FormatErrors(a, violations))
	}

	err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
		return service.repo.WithTx(tx).SetDraft(ctx, []string{id}, false)
	})
	if err != nil {
		return err
	}

	service.logger.Info("artwork_published", slog.String("artwork_id", id))
	return nil
}

/*
ChangeStatus publishes or unpublishes a batch of artworks best-effort.

Description: Loads every requested artwork, plans the change in memory
([PlanStatusChange]) and flips is_draft for the eligible subset in one
transaction. Artworks that are missing, already in the target state, or
blocked by the publish gate never stop the rest of the batch.

Returns:
  - StatusChangePlan: IDs that changed plus the aggregated per-kind errors
  - error: Storage errors only; plan-level rejections live in the plan
*/
func (service *Service) ChangeStatus(ctx context.Context, req StatusChangeRequest) (StatusChangePlan, error) {
	if len(req.IDs) == 0 {
		return StatusChangePlan{}, apperr.ValidationError("ids must not be empty",
			apperr.FieldError{Field: "ids", Message: "At least one artwork ID is required"})
	}

	loaded, err := service.repo.ListByIDs(ctx, req.IDs)
	if err != nil {
		return StatusChangePlan{}, err
	}

	plan := PlanStatusChange(req.IDs, loaded, req.Publish, service.validator)

	if len(plan.IDs) > 0 {
		err = service.tx.InTx(ctx, func(tx pgx.Tx) error {
			return service.repo.WithTx(tx).SetDraft(ctx, plan.IDs, !req.Publish)
		})
		if err != nil {
			return StatusChangePlan{}, err
		}
	}

	service.logger.Info("artwork_status_changed",
		slog.Bool("publish", req.Publish),
		slog.Int("requested", len(req.IDs)),
		slog.Int("changed", len(plan.IDs)),
		slog.Int("rejected_kinds", len(plan.Errors)),
	)

	return plan, nil
}

// # Validation Helpers

func validateCreate(req CreateRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldImageKey, req.ImageKey)
	validator.Required("koTitle", req.KoTitle)
	validator.Required("enTitle", req.EnTitle)
	validator.Required("jaTitle", req.JaTitle)

	if req.Rating != nil {
		validator.Range(FieldRating, *req.Rating, RatingMin, RatingMax)
	}
	if req.PlayedOn != nil {
		validator.OneOf(FieldPlayedOn, *req.PlayedOn, platformStrings()...)
	}
	validateReviewLengths(validator, map[string]*string{
		"koShortReview": req.KoShortReview,
		"enShortReview": req.EnShortReview,
		"jaShortReview": req.JaShortReview,
	})

	return validator.Err()
}

func validateUpdate(req UpdateRequest) error {
	validator := &validate.Validator{}

	if req.ImageKey != nil {
		validator.Required(FieldImageKey, *req.ImageKey)
	}
	// Titles may be re-sent but never blanked.
	for field, title := range map[string]*string{
		"koTitle": req.KoTitle, "enTitle": req.EnTitle, "jaTitle": req.JaTitle,
	} {
		if title != nil {
			validator.Custom(field, strings.TrimSpace(*title) == "", "Title cannot be blank")
		}
	}
	if req.Rating != nil {
		validator.Range(FieldRating, *req.Rating, RatingMin, RatingMax)
	}
	if req.PlayedOn != nil && *req.PlayedOn != "" {
		validator.OneOf(FieldPlayedOn, *req.PlayedOn, platformStrings()...)
	}
	validateReviewLengths(validator, map[string]*string{
		"koShortReview": req.KoShortReview,
		"enShortReview": req.EnShortReview,
		"jaShortReview": req.JaShortReview,
	})

	return validator.Err()
}

func validateReviewLengths(validator *validate.Validator, reviews map[string]*string) {
	for field, review := range reviews {
		if review != nil {
			validator.MaxLen(field, *review, ShortReviewMaxLen)
		}
	}
}

// checkGenresExist rejects payloads referencing unknown genres.
func (service *Service) checkGenresExist(ctx context.Context, genreIDs []string) error {
	if len(genreIDs) == 0 {
		return nil
	}
	missing, err := service.genres.MissingIDs(ctx, genreIDs)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	entries := make([]string, 0, len(missing))
	for _, id := range missing {
		entries = append(entries, id+"|"+FieldGenres)
	}
	return apperr.NotFound("Genre").WithErrors(map[string][]string{
		apperr.KindNotFound: entries,
	})
}

func platformStrings() []string {
	platforms := Platforms()
	values := make([]string, 0, len(platforms))
	for _, p := range platforms {
		values = append(values, string(p))
	}
	return values
}
