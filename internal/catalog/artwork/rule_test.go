// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/catalog/artwork"
	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/pkg/pointer"
)

// publishable returns an artwork that passes every publish-gate rule.
func publishable() *artwork.Artwork {
	finished := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	platform := artwork.PlatformSwitch

	a := &artwork.Artwork{
		ID:        "0195f3a0-0000-7000-8000-000000000001",
		ImageKey:  "2026/spring.webp",
		CreatedAt: &finished,
		PlayedOn:  &platform,
		Rating:    pointer.To(17),
		IsDraft:   true,
		GenreIDs:  []string{"genre-1"},
	}
	for _, lang := range i18n.Supported() {
		a.Translations = append(a.Translations, artwork.Translation{
			ArtworkID:   a.ID,
			Lang:        lang,
			Title:       "title-" + string(lang),
			ShortReview: pointer.To("review " + string(lang)),
		})
	}
	return a
}

func kinds(violations []artwork.Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Kind)
	}
	return out
}

/*
TestPublishRules_CompleteArtworkPasses checks the happy path through the gate.
*/
func TestPublishRules_CompleteArtworkPasses(t *testing.T) {
	validator := artwork.NewStatusValidator()
	assert.Empty(t, validator.Validate(publishable()))
}

/*
TestPublishRules_SingleFieldFailures runs each rule's failure case in isolation.
*/
func TestPublishRules_SingleFieldFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(a *artwork.Artwork)
		wantKind  string
		wantField string
	}{
		{
			name:      "missing_created_at",
			mutate:    func(a *artwork.Artwork) { a.CreatedAt = nil },
			wantKind:  apperr.KindFieldRequired,
			wantField: artwork.FieldCreatedAt,
		},
		{
			name:      "missing_played_on",
			mutate:    func(a *artwork.Artwork) { a.PlayedOn = nil },
			wantKind:  apperr.KindFieldRequired,
			wantField: artwork.FieldPlayedOn,
		},
		{
			name:      "missing_rating",
			mutate:    func(a *artwork.Artwork) { a.Rating = nil },
			wantKind:  apperr.KindFieldRequired,
			wantField: artwork.FieldRating,
		},
		{
			name:      "rating_above_max",
			mutate:    func(a *artwork.Artwork) { a.Rating = pointer.To(21) },
			wantKind:  apperr.KindOutOfRange,
			wantField: artwork.FieldRating,
		},
		{
			name:      "rating_below_min",
			mutate:    func(a *artwork.Artwork) { a.Rating = pointer.To(-1) },
			wantKind:  apperr.KindOutOfRange,
			wantField: artwork.FieldRating,
		},
		{
			name:      "no_genres",
			mutate:    func(a *artwork.Artwork) { a.GenreIDs = nil },
			wantKind:  apperr.KindNotExist,
			wantField: artwork.FieldGenres,
		},
		{
			name: "blank_japanese_review",
			mutate: func(a *artwork.Artwork) {
				a.TranslationFor(i18n.Ja).ShortReview = pointer.To("   ")
			},
			wantKind:  apperr.KindFieldRequired,
			wantField: "translations.ja.shortReview",
		},
		{
			name: "missing_translation_row",
			mutate: func(a *artwork.Artwork) {
				a.Translations = a.Translations[:2] // drop ja
			},
			wantKind:  apperr.KindFieldRequired,
			wantField: "translations.ja.shortReview",
		},
	}

	validator := artwork.NewStatusValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := publishable()
			tt.mutate(a)

			violations := validator.Validate(a)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.wantKind, violations[0].Kind)
			assert.Equal(t, tt.wantField, violations[0].Field)
		})
	}
}

/*
TestPublishRules_RatingZeroIsSet pins the boundary behaviour: a zero rating is
a real rating, not a missing one.
*/
func TestPublishRules_RatingZeroIsSet(t *testing.T) {
	a := publishable()
	a.Rating = pointer.To(0)

	validator := artwork.NewStatusValidator()
	assert.Empty(t, validator.Validate(a))
}

/*
TestPublishRules_CollectsAllFailures checks that the gate never stops at the
first failure: an artwork with an out-of-range rating and no genres reports
exactly those two violations.
*/
func TestPublishRules_CollectsAllFailures(t *testing.T) {
	a := publishable()
	a.Rating = pointer.To(25)
	a.GenreIDs = nil

	validator := artwork.NewStatusValidator()
	violations := validator.Validate(a)

	require.Len(t, violations, 2)
	assert.ElementsMatch(t, []string{apperr.KindOutOfRange, apperr.KindNotExist}, kinds(violations))
}

/*
TestPublishRules_AllReviewsMissing checks that one rule reports every
incomplete language as a comma-joined field list.
*/
func TestPublishRules_AllReviewsMissing(t *testing.T) {
	a := publishable()
	for i := range a.Translations {
		a.Translations[i].ShortReview = nil
	}

	validator := artwork.NewStatusValidator()
	violations := validator.Validate(a)

	require.Len(t, violations, 1)
	assert.Equal(t, apperr.KindFieldRequired, violations[0].Kind)
	assert.Equal(t,
		"translations.ko.shortReview,translations.en.shortReview,translations.ja.shortReview",
		violations[0].Field)
}
