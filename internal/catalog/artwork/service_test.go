// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/catalog/artwork"
	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/pkg/pointer"
)

// # Test Fakes

// fakeTxRunner satisfies postgres.TxRunner without a database. The nil tx is
// fine: fakeRepo.WithTx ignores its argument.
type fakeTxRunner struct {
	calls int
}

func (runner *fakeTxRunner) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	runner.calls++
	return fn(nil)
}

// fakeRepo is an in-memory artwork.Repository.
type fakeRepo struct {
	artworks map[string]*artwork.Artwork
}

func newFakeRepo(artworks ...*artwork.Artwork) *fakeRepo {
	repo := &fakeRepo{artworks: make(map[string]*artwork.Artwork)}
	for _, a := range artworks {
		repo.artworks[a.ID] = a
	}
	return repo
}

func (repo *fakeRepo) WithTx(tx pgx.Tx) artwork.Repository { return repo }

func (repo *fakeRepo) List(ctx context.Context, filter artwork.Filter, limit, offset int) ([]*artwork.Artwork, int, error) {
	out := make([]*artwork.Artwork, 0, len(repo.artworks))
	for _, a := range repo.artworks {
		if filter.Draft != nil && a.IsDraft != *filter.Draft {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}

func (repo *fakeRepo) GetByID(ctx context.Context, id string) (*artwork.Artwork, error) {
	a, ok := repo.artworks[id]
	if !ok {
		return nil, apperr.NotFound("Artwork")
	}
	return a, nil
}

func (repo *fakeRepo) ListByIDs(ctx context.Context, ids []string) ([]*artwork.Artwork, error) {
	out := make([]*artwork.Artwork, 0, len(ids))
	for _, id := range ids {
		if a, ok := repo.artworks[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (repo *fakeRepo) Insert(ctx context.Context, a *artwork.Artwork) error {
	stored := *a
	repo.artworks[a.ID] = &stored
	return nil
}

func (repo *fakeRepo) Update(ctx context.Context, a *artwork.Artwork) error {
	stored, ok := repo.artworks[a.ID]
	if !ok {
		return apperr.NotFound("Artwork")
	}
	stored.ImageKey = a.ImageKey
	stored.CreatedAt = a.CreatedAt
	stored.PlayedOn = a.PlayedOn
	stored.Rating = a.Rating
	stored.IsVertical = a.IsVertical
	return nil
}

func (repo *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := repo.artworks[id]; !ok {
		return apperr.NotFound("Artwork")
	}
	delete(repo.artworks, id)
	return nil
}

func (repo *fakeRepo) InsertTranslations(ctx context.Context, artworkID string, rows []artwork.Translation) error {
	repo.artworks[artworkID].Translations = rows
	return nil
}

func (repo *fakeRepo) MergeTranslations(ctx context.Context, artworkID string, patches []artwork.TranslationPatch) error {
	a := repo.artworks[artworkID]
	for _, patch := range patches {
		tr := a.TranslationFor(patch.Lang)
		if tr == nil {
			a.Translations = append(a.Translations, artwork.Translation{ArtworkID: artworkID, Lang: patch.Lang})
			tr = &a.Translations[len(a.Translations)-1]
		}
		if patch.Title != nil {
			tr.Title = *patch.Title
		}
		if patch.ShortReview != nil {
			tr.ShortReview = patch.ShortReview
		}
	}
	return nil
}

func (repo *fakeRepo) ReplaceGenres(ctx context.Context, artworkID string, genreIDs []string) error {
	repo.artworks[artworkID].GenreIDs = genreIDs
	return nil
}

func (repo *fakeRepo) SetDraft(ctx context.Context, ids []string, isDraft bool) error {
	for _, id := range ids {
		if a, ok := repo.artworks[id]; ok {
			a.IsDraft = isDraft
		}
	}
	return nil
}

// fakeGenreChecker treats `known` as the full genre table.
type fakeGenreChecker struct {
	known map[string]bool
}

func (checker *fakeGenreChecker) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if !checker.known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func newService(repo *fakeRepo, genres ...string) (*artwork.Service, *fakeTxRunner) {
	known := make(map[string]bool)
	for _, id := range genres {
		known[id] = true
	}
	tx := &fakeTxRunner{}
	service := artwork.NewService(repo, &fakeGenreChecker{known: known}, tx, slog.Default())
	return service, tx
}

// # Create / Update / Delete

/*
TestService_CreateArtwork covers the happy path: full translation fan-out,
draft forced on, one transaction.
*/
func TestService_CreateArtwork(t *testing.T) {
	repo := newFakeRepo()
	service, tx := newService(repo, "genre-1")

	created, err := service.CreateArtwork(context.Background(), artwork.CreateRequest{
		ImageKey: "2026/new.webp",
		KoTitle:  "봄",
		EnTitle:  "Spring",
		JaTitle:  "春",
		Rating:   pointer.To(12),
		GenreIDs: []string{"genre-1"},
	})
	require.NoError(t, err)

	assert.True(t, created.IsDraft)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.Translations, 3)
	assert.Equal(t, []string{"genre-1"}, created.GenreIDs)
	assert.Equal(t, 1, tx.calls)
}

/*
TestService_CreateArtwork_UnknownGenre checks the reference guard and its
"<id>|genres" error entries.
*/
func TestService_CreateArtwork_UnknownGenre(t *testing.T) {
	service, _ := newService(newFakeRepo(), "genre-1")

	_, err := service.CreateArtwork(context.Background(), artwork.CreateRequest{
		ImageKey: "2026/new.webp",
		KoTitle:  "봄", EnTitle: "Spring", JaTitle: "春",
		GenreIDs: []string{"genre-1", "ghost"},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindNotFound, ae.Code)
	assert.Equal(t, []string{"ghost|genres"}, ae.Errors[apperr.KindNotFound])
}

/*
TestService_CreateArtwork_Validation rejects structurally invalid payloads
before any storage work.
*/
func TestService_CreateArtwork_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  artwork.CreateRequest
	}{
		{"missing_image_key", artwork.CreateRequest{KoTitle: "a", EnTitle: "b", JaTitle: "c"}},
		{"missing_title", artwork.CreateRequest{ImageKey: "k", KoTitle: "a", EnTitle: "b"}},
		{"rating_out_of_range", artwork.CreateRequest{
			ImageKey: "k", KoTitle: "a", EnTitle: "b", JaTitle: "c", Rating: pointer.To(21)}},
		{"unknown_platform", artwork.CreateRequest{
			ImageKey: "k", KoTitle: "a", EnTitle: "b", JaTitle: "c", PlayedOn: pointer.To("dreamcast")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tx := newService(newFakeRepo())
			_, err := service.CreateArtwork(context.Background(), tt.req)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Zero(t, tx.calls)
		})
	}
}

/*
TestService_UpdateArtwork_Sparse checks that untouched fields survive a sparse
patch and translation patches merge per language.
*/
func TestService_UpdateArtwork_Sparse(t *testing.T) {
	existing := publishable()
	repo := newFakeRepo(existing)
	service, _ := newService(repo, "genre-1")

	updated, err := service.UpdateArtwork(context.Background(), existing.ID, artwork.UpdateRequest{
		Rating:        pointer.To(5),
		JaShortReview: pointer.To("短評"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, *updated.Rating)
	assert.Equal(t, existing.ImageKey, updated.ImageKey)
	assert.Equal(t, "短評", *updated.TranslationFor(i18n.Ja).ShortReview)
	// ko review untouched
	assert.Equal(t, "review ko", *updated.TranslationFor(i18n.Ko).ShortReview)
}

/*
TestService_UpdateArtwork_EmptyPayload rejects requests carrying no change.
*/
func TestService_UpdateArtwork_EmptyPayload(t *testing.T) {
	existing := publishable()
	service, tx := newService(newFakeRepo(existing))

	_, err := service.UpdateArtwork(context.Background(), existing.ID, artwork.UpdateRequest{})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindNoTranslationsProvided, ae.Code)
	assert.Zero(t, tx.calls)
}

/*
TestService_DeleteArtwork guards published artworks against deletion.
*/
func TestService_DeleteArtwork(t *testing.T) {
	draft := named("draft-1", "초안")
	published := named("pub-1", "공개작")
	published.IsDraft = false

	repo := newFakeRepo(draft, published)
	service, _ := newService(repo)

	t.Run("published_blocked", func(t *testing.T) {
		err := service.DeleteArtwork(context.Background(), "pub-1")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindAlreadyPublished, ae.Code)
	})

	t.Run("draft_deleted", func(t *testing.T) {
		require.NoError(t, service.DeleteArtwork(context.Background(), "draft-1"))
		_, err := repo.GetByID(context.Background(), "draft-1")
		assert.Error(t, err)
	})
}

// # Status Changes

/*
TestService_PublishArtwork covers the single-artwork publish path.
*/
func TestService_PublishArtwork(t *testing.T) {
	t.Run("valid_draft_published", func(t *testing.T) {
		a := named("a1", "공개 가능")
		repo := newFakeRepo(a)
		service, _ := newService(repo)

		require.NoError(t, service.PublishArtwork(context.Background(), "a1"))
		assert.False(t, repo.artworks["a1"].IsDraft)
	})

	t.Run("blocked_with_aggregated_errors", func(t *testing.T) {
		a := named("a1", "미완성")
		a.Rating = nil
		a.GenreIDs = nil
		service, tx := newService(newFakeRepo(a))

		err := service.PublishArtwork(context.Background(), "a1")

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "PUBLISH_BLOCKED", ae.Code)
		assert.Equal(t, []string{"미완성|rating"}, ae.Errors[apperr.KindFieldRequired])
		assert.Equal(t, []string{"미완성|genres"}, ae.Errors[apperr.KindNotExist])
		assert.Zero(t, tx.calls)
	})

	t.Run("already_published", func(t *testing.T) {
		a := named("a1", "공개작")
		a.IsDraft = false
		service, _ := newService(newFakeRepo(a))

		err := service.PublishArtwork(context.Background(), "a1")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindAlreadyPublished, ae.Code)
	})
}

/*
TestService_ChangeStatus runs the bulk path end to end against the fakes:
eligible artworks flip, the rest are reported, one transaction for the batch.
*/
func TestService_ChangeStatus(t *testing.T) {
	a1 := named("a1", "이미 공개")
	a1.IsDraft = false
	a2 := named("a2", "공개 가능")
	a3 := named("a3", "평점 없음")
	a3.Rating = nil

	repo := newFakeRepo(a1, a2, a3)
	service, tx := newService(repo)

	plan, err := service.ChangeStatus(context.Background(), artwork.StatusChangeRequest{
		IDs:     []string{"a1", "a2", "a3", "ghost"},
		Publish: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a2"}, plan.IDs)
	assert.Equal(t, []string{"평점 없음|rating"}, plan.Errors[apperr.KindFieldRequired])
	assert.Equal(t, []string{"ghost|id"}, plan.Errors[apperr.KindNotFound])
	assert.True(t, plan.Partial())

	assert.False(t, repo.artworks["a2"].IsDraft)
	assert.True(t, repo.artworks["a3"].IsDraft)
	assert.Equal(t, 1, tx.calls)
}

/*
TestService_ChangeStatus_EmptyIDs rejects an empty batch outright.
*/
func TestService_ChangeStatus_EmptyIDs(t *testing.T) {
	service, _ := newService(newFakeRepo())

	_, err := service.ChangeStatus(context.Background(), artwork.StatusChangeRequest{Publish: true})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_ChangeStatus_NoWriteWhenNothingEligible keeps the transaction shut
when the whole batch is rejected.
*/
func TestService_ChangeStatus_NoWriteWhenNothingEligible(t *testing.T) {
	a := named("a1", "미완성")
	a.Rating = nil
	service, tx := newService(newFakeRepo(a))

	plan, err := service.ChangeStatus(context.Background(), artwork.StatusChangeRequest{
		IDs: []string{"a1"}, Publish: true,
	})
	require.NoError(t, err)

	assert.Empty(t, plan.IDs)
	assert.Zero(t, tx.calls)
}
