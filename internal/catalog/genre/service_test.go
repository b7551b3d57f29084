// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package genre_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/catalog/genre"
	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/pkg/pointer"
)

// # Test Fakes

type fakeTxRunner struct{}

func (fakeTxRunner) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// fakeRepo is an in-memory genre.Repository. artworkCounts simulates the
// junction table for the IN_USE guard.
type fakeRepo struct {
	genres        map[string]*genre.Genre
	artworkCounts map[string]int
}

func newFakeRepo(genres ...*genre.Genre) *fakeRepo {
	repo := &fakeRepo{
		genres:        make(map[string]*genre.Genre),
		artworkCounts: make(map[string]int),
	}
	for _, g := range genres {
		repo.genres[g.ID] = g
	}
	return repo
}

func (repo *fakeRepo) WithTx(tx pgx.Tx) genre.Repository { return repo }

func (repo *fakeRepo) List(ctx context.Context) ([]*genre.Genre, error) {
	out := make([]*genre.Genre, 0, len(repo.genres))
	for _, g := range repo.genres {
		g.ArtworkCount = repo.artworkCounts[g.ID]
		out = append(out, g)
	}
	return out, nil
}

func (repo *fakeRepo) GetByID(ctx context.Context, id string) (*genre.Genre, error) {
	g, ok := repo.genres[id]
	if !ok {
		return nil, apperr.NotFound("Genre")
	}
	g.ArtworkCount = repo.artworkCounts[id]
	return g, nil
}

func (repo *fakeRepo) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if _, ok := repo.genres[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (repo *fakeRepo) NameExists(ctx context.Context, lang i18n.Lang, name, excludeID string) (bool, error) {
	for _, g := range repo.genres {
		if g.ID == excludeID {
			continue
		}
		if g.NameFor(lang) == name {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeRepo) Insert(ctx context.Context, g *genre.Genre) error {
	stored := *g
	stored.Translations = nil
	repo.genres[g.ID] = &stored
	return nil
}

func (repo *fakeRepo) UpsertTranslations(ctx context.Context, genreID string, rows []genre.Translation) error {
	g := repo.genres[genreID]
	for _, row := range rows {
		replaced := false
		for i := range g.Translations {
			if g.Translations[i].Lang == row.Lang {
				g.Translations[i].Name = row.Name
				replaced = true
				break
			}
		}
		if !replaced {
			g.Translations = append(g.Translations, row)
		}
	}
	return nil
}

func (repo *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := repo.genres[id]; !ok {
		return apperr.NotFound("Genre")
	}
	delete(repo.genres, id)
	return nil
}

func stored(id, ko, en, ja string) *genre.Genre {
	return &genre.Genre{
		ID: id,
		Translations: []genre.Translation{
			{GenreID: id, Lang: i18n.Ko, Name: ko},
			{GenreID: id, Lang: i18n.En, Name: en},
			{GenreID: id, Lang: i18n.Ja, Name: ja},
		},
	}
}

func newService(repo *fakeRepo) *genre.Service {
	return genre.NewService(repo, fakeTxRunner{}, slog.Default())
}

// # Creation

/*
TestService_CreateGenre covers the happy path: three translations stored in
one pass.
*/
func TestService_CreateGenre(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	g, err := service.CreateGenre(context.Background(), genre.CreateRequest{
		KoName: "판타지", EnName: "Fantasy", JaName: "ファンタジー",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "판타지", g.NameFor(i18n.Ko))
	assert.Equal(t, "Fantasy", g.NameFor(i18n.En))
	assert.Equal(t, "ファンタジー", g.NameFor(i18n.Ja))
}

/*
TestService_CreateGenre_MissingTranslations checks the completeness guard and
its missing-language listing.
*/
func TestService_CreateGenre_MissingTranslations(t *testing.T) {
	tests := []struct {
		name        string
		req         genre.CreateRequest
		wantMissing []string
	}{
		{"all_missing", genre.CreateRequest{}, []string{"ko", "en", "ja"}},
		{"one_missing", genre.CreateRequest{KoName: "판타지", EnName: "Fantasy"}, []string{"ja"}},
		{"blank_counts_as_missing", genre.CreateRequest{KoName: "판타지", EnName: "  ", JaName: "ファンタジー"}, []string{"en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(newFakeRepo())
			_, err := service.CreateGenre(context.Background(), tt.req)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.KindNotEnoughTranslations, ae.Code)
			assert.Equal(t, tt.wantMissing, ae.Errors[apperr.KindNotEnoughTranslations])
		})
	}
}

/*
TestService_CreateGenre_DuplicateName checks per-language uniqueness.
*/
func TestService_CreateGenre_DuplicateName(t *testing.T) {
	repo := newFakeRepo(stored("g1", "판타지", "Fantasy", "ファンタジー"))
	service := newService(repo)

	_, err := service.CreateGenre(context.Background(), genre.CreateRequest{
		KoName: "다른이름", EnName: "Fantasy", JaName: "別名",
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindDuplicateName, ae.Code)
	assert.Equal(t, []string{"Fantasy|en"}, ae.Errors[apperr.KindDuplicateName])
}

// # Updates

/*
TestService_UpdateGenre covers sparse renames: touched languages change, the
rest stay.
*/
func TestService_UpdateGenre(t *testing.T) {
	repo := newFakeRepo(stored("g1", "판타지", "Fantasy", "ファンタジー"))
	service := newService(repo)

	g, err := service.UpdateGenre(context.Background(), "g1", genre.UpdateRequest{
		EnName: pointer.To("High Fantasy"),
	})
	require.NoError(t, err)

	assert.Equal(t, "High Fantasy", g.NameFor(i18n.En))
	assert.Equal(t, "판타지", g.NameFor(i18n.Ko))
	assert.Equal(t, "ファンタジー", g.NameFor(i18n.Ja))
}

/*
TestService_UpdateGenre_NoData rejects empty payloads.
*/
func TestService_UpdateGenre_NoData(t *testing.T) {
	service := newService(newFakeRepo(stored("g1", "판타지", "Fantasy", "ファンタジー")))

	_, err := service.UpdateGenre(context.Background(), "g1", genre.UpdateRequest{})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindNoTranslationsProvided, ae.Code)
}

/*
TestService_UpdateGenre_KeepingOwnNameIsFine: renaming to the name the genre
already holds must not trip the duplicate guard.
*/
func TestService_UpdateGenre_KeepingOwnNameIsFine(t *testing.T) {
	repo := newFakeRepo(stored("g1", "판타지", "Fantasy", "ファンタジー"))
	service := newService(repo)

	_, err := service.UpdateGenre(context.Background(), "g1", genre.UpdateRequest{
		EnName: pointer.To("Fantasy"),
	})
	assert.NoError(t, err)
}

/*
TestService_UpdateGenre_DuplicateAcrossGenres blocks stealing another genre's
name within one language.
*/
func TestService_UpdateGenre_DuplicateAcrossGenres(t *testing.T) {
	repo := newFakeRepo(
		stored("g1", "판타지", "Fantasy", "ファンタジー"),
		stored("g2", "공포", "Horror", "ホラー"),
	)
	service := newService(repo)

	_, err := service.UpdateGenre(context.Background(), "g2", genre.UpdateRequest{
		EnName: pointer.To("Fantasy"),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindDuplicateName, ae.Code)
}

/*
TestService_UpdateGenre_NotFound prefers 404 over validation noise for unknown
IDs.
*/
func TestService_UpdateGenre_NotFound(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.UpdateGenre(context.Background(), "ghost", genre.UpdateRequest{
		KoName: pointer.To("이름"),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindNotFound, ae.Code)
}

// # Deletion

/*
TestService_DeleteGenre covers the IN_USE guard and the free-to-delete path.
*/
func TestService_DeleteGenre(t *testing.T) {
	repo := newFakeRepo(
		stored("used", "판타지", "Fantasy", "ファンタジー"),
		stored("free", "공포", "Horror", "ホラー"),
	)
	repo.artworkCounts["used"] = 3
	service := newService(repo)

	t.Run("referenced_blocked", func(t *testing.T) {
		err := service.DeleteGenre(context.Background(), "used")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.KindInUse, ae.Code)
	})

	t.Run("unreferenced_deleted", func(t *testing.T) {
		require.NoError(t, service.DeleteGenre(context.Background(), "free"))
		_, err := repo.GetByID(context.Background(), "free")
		assert.Error(t, err)
	})
}
