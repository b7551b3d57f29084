// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package artwork implements the fanart catalogue's aggregate root.

An artwork is created as a draft and becomes publicly visible only after it
passes the publish gate: a fixed set of pure rules over the artwork snapshot
(see rule.go / status.go). All multi-table writes (artwork row + per-language
translation rows + genre links) run inside a single transaction.
*/
package artwork

import (
	"time"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// # Domain Entities

// Artwork is the aggregate root for one piece of game fanart.
type Artwork struct {
	// ID is an opaque, immutable UUIDv7.
	ID string `json:"id"`

	// ImageKey is owned by the external image pipeline; the API never
	// inspects it beyond non-emptiness.
	ImageKey string `json:"image_key"`

	// CreatedAt is the business date the work was finished — not the row
	// insertion time (RowCreated). Nullable until the artist fills it in.
	CreatedAt *time.Time `json:"created_at"`

	// PlayedOn is the platform the source game was played on.
	PlayedOn *Platform `json:"played_on"`

	// Rating is the artist's 0–20 score for the source game. A pointer so
	// that 0 is a real, publishable rating and only nil means "not set".
	Rating *int `json:"rating"`

	// IsDraft gates public visibility. New artworks always start as drafts.
	IsDraft bool `json:"is_draft"`

	// IsVertical records the canvas orientation for gallery layout.
	IsVertical bool `json:"is_vertical"`

	// GenreIDs is the unordered set of attached genres.
	GenreIDs []string `json:"genre_ids"`

	// Translations holds one row per supported language once complete.
	// Partial sets occur transiently during sparse updates.
	Translations []Translation `json:"translations"`

	RowCreated time.Time `json:"row_created"`
	RowUpdated time.Time `json:"row_updated"`
}

// Translation is one per-language text row of an artwork.
// Composite-keyed by (ArtworkID, Lang).
type Translation struct {
	ArtworkID string    `json:"-"`
	Lang      i18n.Lang `json:"lang"`

	// Title is mandatory for every language at create time.
	Title string `json:"title"`

	// ShortReview is optional while drafting but must be non-blank in every
	// supported language before the artwork can be published.
	ShortReview *string `json:"short_review"`
}

// TranslationFor returns the translation row for lang, or nil.
func (a *Artwork) TranslationFor(lang i18n.Lang) *Translation {
	for i := range a.Translations {
		if a.Translations[i].Lang == lang {
			return &a.Translations[i]
		}
	}
	return nil
}

// # Platforms

// Platform enumerates where the source game was played.
type Platform string

const (
	PlatformPC       Platform = "pc"
	PlatformSwitch   Platform = "switch"
	PlatformPS       Platform = "playstation"
	PlatformXbox     Platform = "xbox"
	PlatformMobile   Platform = "mobile"
	PlatformHandheld Platform = "handheld"
)

// Platforms returns every valid platform value, for request validation.
func Platforms() []Platform {
	return []Platform{PlatformPC, PlatformSwitch, PlatformPS, PlatformXbox, PlatformMobile, PlatformHandheld}
}

// # Constraints

const (
	// RatingMin / RatingMax bound the 0–20 score (inclusive).
	RatingMin = 0
	RatingMax = 20

	// ShortReviewMaxLen is the character cap on a per-language short review.
	ShortReviewMaxLen = 200
)

// Field names used in validation failures and error payloads.
// These are wire-visible and frozen.
const (
	FieldID         = "id"
	FieldImageKey   = "imageKey"
	FieldCreatedAt  = "createdAt"
	FieldPlayedOn   = "playedOn"
	FieldRating     = "rating"
	FieldGenres     = "genres"
	FieldIsVertical = "isVertical"
)

// ShortReviewPath returns the wire field path of one language's short review,
// e.g. "translations.ja.shortReview".
func ShortReviewPath(lang i18n.Lang) string {
	return "translations." + string(lang) + ".shortReview"
}

// # Queries

// Filter holds the parameters for a paginated artwork search.
type Filter struct {
	// Draft filters by draft state; nil returns both.
	Draft *bool
	// GenreIDs narrows to artworks linked to any of these genres.
	GenreIDs []string
	// PlayedOn narrows to one platform.
	PlayedOn string
	// Query matches against titles in any language (ILIKE).
	Query string
}
