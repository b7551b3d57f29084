// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyounglim/gallerim/internal/catalog/artwork"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/pkg/pointer"
)

/*
TestCreateRequest_Translations checks that create always produces exactly one
row per supported language, even when reviews are absent.
*/
func TestCreateRequest_Translations(t *testing.T) {
	req := artwork.CreateRequest{
		KoTitle:       "봄",
		EnTitle:       "Spring",
		JaTitle:       "春",
		EnShortReview: pointer.To("a quiet garden"),
	}

	rows := req.Translations("art-1")
	require.Len(t, rows, 3)

	byLang := make(map[i18n.Lang]artwork.Translation)
	for _, row := range rows {
		assert.Equal(t, "art-1", row.ArtworkID)
		byLang[row.Lang] = row
	}

	assert.Equal(t, "봄", byLang[i18n.Ko].Title)
	assert.Nil(t, byLang[i18n.Ko].ShortReview)
	assert.Equal(t, "Spring", byLang[i18n.En].Title)
	assert.Equal(t, "a quiet garden", *byLang[i18n.En].ShortReview)
	assert.Equal(t, "春", byLang[i18n.Ja].Title)
	assert.Nil(t, byLang[i18n.Ja].ShortReview)
}

/*
TestUpdateRequest_TranslationPatches checks the sparse pivot: only languages
actually present in the request produce a patch, and an explicit empty string
survives as a value distinct from absence.
*/
func TestUpdateRequest_TranslationPatches(t *testing.T) {
	tests := []struct {
		name string
		req  artwork.UpdateRequest
		want []artwork.TranslationPatch
	}{
		{
			name: "nothing_supplied",
			req:  artwork.UpdateRequest{},
			want: nil,
		},
		{
			name: "one_language_title_only",
			req:  artwork.UpdateRequest{JaTitle: pointer.To("新しい題")},
			want: []artwork.TranslationPatch{
				{Lang: i18n.Ja, Title: pointer.To("新しい題")},
			},
		},
		{
			name: "review_without_title",
			req:  artwork.UpdateRequest{EnShortReview: pointer.To("updated")},
			want: []artwork.TranslationPatch{
				{Lang: i18n.En, ShortReview: pointer.To("updated")},
			},
		},
		{
			name: "explicit_empty_review_is_a_value",
			req:  artwork.UpdateRequest{KoShortReview: pointer.To("")},
			want: []artwork.TranslationPatch{
				{Lang: i18n.Ko, ShortReview: pointer.To("")},
			},
		},
		{
			name: "mixed_languages_in_canonical_order",
			req: artwork.UpdateRequest{
				JaTitle:       pointer.To("題"),
				KoShortReview: pointer.To("한줄평"),
			},
			want: []artwork.TranslationPatch{
				{Lang: i18n.Ko, ShortReview: pointer.To("한줄평")},
				{Lang: i18n.Ja, Title: pointer.To("題")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.TranslationPatches())
		})
	}
}

/*
TestUpdateRequest_Empty distinguishes "no change at all" from sparse changes.
*/
func TestUpdateRequest_Empty(t *testing.T) {
	assert.True(t, artwork.UpdateRequest{}.Empty())
	assert.False(t, artwork.UpdateRequest{Rating: pointer.To(10)}.Empty())
	assert.False(t, artwork.UpdateRequest{KoShortReview: pointer.To("")}.Empty())
	assert.False(t, artwork.UpdateRequest{GenreIDs: []string{}}.Empty())
}
