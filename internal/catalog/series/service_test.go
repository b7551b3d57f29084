// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package series_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/catalog/series"
	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/pkg/pointer"
)

// # Test Fakes

type fakeTxRunner struct{}

func (fakeTxRunner) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeRepo struct {
	series map[string]*series.Series
}

func newFakeRepo(all ...*series.Series) *fakeRepo {
	repo := &fakeRepo{series: make(map[string]*series.Series)}
	for _, s := range all {
		repo.series[s.ID] = s
	}
	return repo
}

func (repo *fakeRepo) WithTx(tx pgx.Tx) series.Repository { return repo }

func (repo *fakeRepo) List(ctx context.Context) ([]*series.Series, error) {
	out := make([]*series.Series, 0, len(repo.series))
	for _, s := range repo.series {
		out = append(out, s)
	}
	return out, nil
}

func (repo *fakeRepo) GetByID(ctx context.Context, id string) (*series.Series, error) {
	s, ok := repo.series[id]
	if !ok {
		return nil, apperr.NotFound("Series")
	}
	return s, nil
}

func (repo *fakeRepo) TitleExists(ctx context.Context, lang i18n.Lang, title, excludeID string) (bool, error) {
	for _, s := range repo.series {
		if s.ID == excludeID {
			continue
		}
		if s.TitleFor(lang) == title {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeRepo) Insert(ctx context.Context, s *series.Series) error {
	stored := *s
	stored.Translations = nil
	repo.series[s.ID] = &stored
	return nil
}

func (repo *fakeRepo) UpsertTranslations(ctx context.Context, seriesID string, rows []series.Translation) error {
	s := repo.series[seriesID]
	for _, row := range rows {
		replaced := false
		for i := range s.Translations {
			if s.Translations[i].Lang == row.Lang {
				s.Translations[i].Title = row.Title
				replaced = true
				break
			}
		}
		if !replaced {
			s.Translations = append(s.Translations, row)
		}
	}
	return nil
}

func (repo *fakeRepo) ReplaceArtworks(ctx context.Context, seriesID string, artworkIDs []string) error {
	s := repo.series[seriesID]
	s.Items = nil
	for position, artworkID := range artworkIDs {
		s.Items = append(s.Items, series.Item{ArtworkID: artworkID, SortOrder: position})
	}
	return nil
}

func (repo *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := repo.series[id]; !ok {
		return apperr.NotFound("Series")
	}
	delete(repo.series, id)
	return nil
}

type fakeArtworkChecker struct {
	known map[string]bool
}

func (checker *fakeArtworkChecker) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if !checker.known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func stored(id, ko, en, ja string) *series.Series {
	return &series.Series{
		ID: id,
		Translations: []series.Translation{
			{SeriesID: id, Lang: i18n.Ko, Title: ko},
			{SeriesID: id, Lang: i18n.En, Title: en},
			{SeriesID: id, Lang: i18n.Ja, Title: ja},
		},
	}
}

func newService(repo *fakeRepo, artworkIDs ...string) *series.Service {
	known := make(map[string]bool)
	for _, id := range artworkIDs {
		known[id] = true
	}
	return series.NewService(repo, &fakeArtworkChecker{known: known}, fakeTxRunner{}, slog.Default())
}

// # Creation & Titles

/*
TestService_CreateSeries covers the happy path and the completeness guard.
*/
func TestService_CreateSeries(t *testing.T) {
	t.Run("complete_translations", func(t *testing.T) {
		service := newService(newFakeRepo())

		s, err := service.CreateSeries(context.Background(), series.CreateRequest{
			KoTitle: "사계절", EnTitle: "Four Seasons", JaTitle: "四季",
		})
		require.NoError(t, err)
		assert.Equal(t, "Four Seasons", s.TitleFor(i18n.En))
		assert.Empty(t, s.Items)
	})

	t.Run("missing_language", func(t *testing.T) {
		service := newService(newFakeRepo())

		_, err := service.CreateSeries(context.Background(), series.CreateRequest{
			KoTitle: "사계절", EnTitle: "Four Seasons",
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindNotEnoughTranslations, ae.Code)
		assert.Equal(t, []string{"ja"}, ae.Errors[apperr.KindNotEnoughTranslations])
	})
}

/*
TestService_CreateSeries_DuplicateTitle checks per-language title uniqueness.
*/
func TestService_CreateSeries_DuplicateTitle(t *testing.T) {
	repo := newFakeRepo(stored("s1", "사계절", "Four Seasons", "四季"))
	service := newService(repo)

	_, err := service.CreateSeries(context.Background(), series.CreateRequest{
		KoTitle: "다른제목", EnTitle: "Four Seasons", JaTitle: "別題",
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindDuplicateTitle, ae.Code)
	assert.Equal(t, []string{"Four Seasons|en"}, ae.Errors[apperr.KindDuplicateTitle])
}

/*
TestService_UpdateSeries covers sparse retitling and the empty-payload guard.
*/
func TestService_UpdateSeries(t *testing.T) {
	t.Run("sparse_retitle", func(t *testing.T) {
		repo := newFakeRepo(stored("s1", "사계절", "Four Seasons", "四季"))
		service := newService(repo)

		s, err := service.UpdateSeries(context.Background(), "s1", series.UpdateRequest{
			JaTitle: pointer.To("春夏秋冬"),
		})
		require.NoError(t, err)
		assert.Equal(t, "春夏秋冬", s.TitleFor(i18n.Ja))
		assert.Equal(t, "사계절", s.TitleFor(i18n.Ko))
	})

	t.Run("no_data", func(t *testing.T) {
		service := newService(newFakeRepo(stored("s1", "사계절", "Four Seasons", "四季")))

		_, err := service.UpdateSeries(context.Background(), "s1", series.UpdateRequest{})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindNoTranslationsProvided, ae.Code)
	})
}

// # Ordered Association

/*
TestService_ReplaceArtworks covers the wholesale replacement semantics: slice
position becomes sort order, unknown IDs are listed, duplicates rejected.
*/
func TestService_ReplaceArtworks(t *testing.T) {
	t.Run("orders_by_position", func(t *testing.T) {
		repo := newFakeRepo(stored("s1", "사계절", "Four Seasons", "四季"))
		service := newService(repo, "art-1", "art-2", "art-3")

		s, err := service.ReplaceArtworks(context.Background(), "s1", series.ReplaceArtworksRequest{
			ArtworkIDs: []string{"art-3", "art-1", "art-2"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"art-3", "art-1", "art-2"}, s.ArtworkIDs())
		assert.Equal(t, 0, s.Items[0].SortOrder)
		assert.Equal(t, 2, s.Items[2].SortOrder)
	})

	t.Run("unknown_artworks_listed", func(t *testing.T) {
		repo := newFakeRepo(stored("s1", "사계절", "Four Seasons", "四季"))
		service := newService(repo, "art-1")

		_, err := service.ReplaceArtworks(context.Background(), "s1", series.ReplaceArtworksRequest{
			ArtworkIDs: []string{"art-1", "ghost-a", "ghost-b"},
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindNotFound, ae.Code)
		assert.Equal(t, []string{"ghost-a|artworkIds", "ghost-b|artworkIds"}, ae.Errors[apperr.KindNotFound])
	})

	t.Run("duplicates_rejected", func(t *testing.T) {
		repo := newFakeRepo(stored("s1", "사계절", "Four Seasons", "四季"))
		service := newService(repo, "art-1")

		_, err := service.ReplaceArtworks(context.Background(), "s1", series.ReplaceArtworksRequest{
			ArtworkIDs: []string{"art-1", "art-1"},
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("empty_list_clears", func(t *testing.T) {
		s1 := stored("s1", "사계절", "Four Seasons", "四季")
		s1.Items = []series.Item{{ArtworkID: "art-1", SortOrder: 0}}
		repo := newFakeRepo(s1)
		service := newService(repo, "art-1")

		s, err := service.ReplaceArtworks(context.Background(), "s1", series.ReplaceArtworksRequest{})
		require.NoError(t, err)
		assert.Empty(t, s.Items)
	})
}

// # Deletion

/*
TestService_DeleteSeries covers the IN_USE guard on remaining associations.
*/
func TestService_DeleteSeries(t *testing.T) {
	withItems := stored("busy", "사계절", "Four Seasons", "四季")
	withItems.Items = []series.Item{{ArtworkID: "art-1", SortOrder: 0}}
	empty := stored("idle", "빈것", "Empty", "空")

	repo := newFakeRepo(withItems, empty)
	service := newService(repo)

	t.Run("associated_blocked", func(t *testing.T) {
		err := service.DeleteSeries(context.Background(), "busy")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindInUse, ae.Code)
	})

	t.Run("empty_deleted", func(t *testing.T) {
		require.NoError(t, service.DeleteSeries(context.Background(), "idle"))
		_, err := repo.GetByID(context.Background(), "idle")
		assert.Error(t, err)
	})
}
