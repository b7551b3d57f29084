// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"time"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// The admin CMS submits translations as flat per-language fields (koTitle,
// enShortReview, ...). The mappers below pivot that flat shape into
// per-language rows, with different rules for create and update.

// CreateRequest is the admin payload for creating a draft artwork.
type CreateRequest struct {
	ImageKey   string     `json:"imageKey"`
	CreatedAt  *time.Time `json:"createdAt"`
	PlayedOn   *string    `json:"playedOn"`
	Rating     *int       `json:"rating"`
	IsVertical bool       `json:"isVertical"`
	GenreIDs   []string   `json:"genreIds"`

	KoTitle string `json:"koTitle"`
	EnTitle string `json:"enTitle"`
	JaTitle string `json:"jaTitle"`

	KoShortReview *string `json:"koShortReview"`
	EnShortReview *string `json:"enShortReview"`
	JaShortReview *string `json:"jaShortReview"`
}

// Translations pivots the create payload into exactly one row per supported
// language. Create is total: every language gets a row even when its short
// review is still empty, so later sparse updates always have a row to merge
// into.
func (r CreateRequest) Translations(artworkID string) []Translation {
	titles := map[i18n.Lang]string{
		i18n.Ko: r.KoTitle,
		i18n.En: r.EnTitle,
		i18n.Ja: r.JaTitle,
	}
	reviews := map[i18n.Lang]*string{
		i18n.Ko: r.KoShortReview,
		i18n.En: r.EnShortReview,
		i18n.Ja: r.JaShortReview,
	}

	rows := make([]Translation, 0, len(i18n.Supported()))
	for _, lang := range i18n.Supported() {
		rows = append(rows, Translation{
			ArtworkID:   artworkID,
			Lang:        lang,
			Title:       titles[lang],
			ShortReview: reviews[lang],
		})
	}
	return rows
}

// UpdateRequest is the admin payload for a sparse (PATCH) artwork update.
//
// Every field is a pointer: nil means "not in this request", a pointer to the
// zero value means "explicitly set to empty/zero". GenreIDs nil leaves the
// genre links untouched; an empty non-nil slice clears them.
type UpdateRequest struct {
	ImageKey   *string    `json:"imageKey"`
	CreatedAt  *time.Time `json:"createdAt"`
	PlayedOn   *string    `json:"playedOn"`
	Rating     *int       `json:"rating"`
	IsVertical *bool      `json:"isVertical"`
	GenreIDs   []string   `json:"genreIds"`

	KoTitle *string `json:"koTitle"`
	EnTitle *string `json:"enTitle"`
	JaTitle *string `json:"jaTitle"`

	KoShortReview *string `json:"koShortReview"`
	EnShortReview *string `json:"enShortReview"`
	JaShortReview *string `json:"jaShortReview"`
}

// TranslationPatch is a per-language merge instruction. A nil field keeps the
// stored value; a non-nil field overwrites it (including overwriting with "").
type TranslationPatch struct {
	Lang        i18n.Lang
	Title       *string
	ShortReview *string
}

// TranslationPatches pivots the update payload into merge rows, emitting one
// only for languages where the request actually carried something. A language
// absent from the request produces no row and its stored texts are untouched.
func (r UpdateRequest) TranslationPatches() []TranslationPatch {
	titles := map[i18n.Lang]*string{
		i18n.Ko: r.KoTitle,
		i18n.En: r.EnTitle,
		i18n.Ja: r.JaTitle,
	}
	reviews := map[i18n.Lang]*string{
		i18n.Ko: r.KoShortReview,
		i18n.En: r.EnShortReview,
		i18n.Ja: r.JaShortReview,
	}

	var patches []TranslationPatch
	for _, lang := range i18n.Supported() {
		if titles[lang] == nil && reviews[lang] == nil {
			continue
		}
		patches = append(patches, TranslationPatch{
			Lang:        lang,
			Title:       titles[lang],
			ShortReview: reviews[lang],
		})
	}
	return patches
}

// Empty reports whether the request carries no change at all. The service
// rejects such requests before opening a transaction.
func (r UpdateRequest) Empty() bool {
	return r.ImageKey == nil &&
		r.CreatedAt == nil &&
		r.PlayedOn == nil &&
		r.Rating == nil &&
		r.IsVertical == nil &&
		r.GenreIDs == nil &&
		len(r.TranslationPatches()) == 0
}

// StatusChangeRequest is the bulk publish/unpublish payload.
type StatusChangeRequest struct {
	IDs     []string `json:"ids"`
	Publish bool     `json:"publish"`
}
