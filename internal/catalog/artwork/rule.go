// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"strings"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// Violation is a single failed publish-gate check.
type Violation struct {
	// Kind is the error bucket (apperr.Kind* constant).
	Kind string
	// Field is the wire name of the offending field. Rules that inspect more
	// than one field join the paths with commas.
	Field string
}

// Rule is one pure predicate of the publish gate. Check inspects the artwork
// snapshot only; it must not touch storage or the clock.
type Rule struct {
	Name  string
	Check func(a *Artwork) *Violation
}

// PublishRules returns the publish gate in registration order. The order is
// stable so aggregated error output is deterministic.
func PublishRules() []Rule {
	return []Rule{
		{Name: "created_at_set", Check: checkCreatedAtSet},
		{Name: "played_on_set", Check: checkPlayedOnSet},
		{Name: "rating_set", Check: checkRatingSet},
		{Name: "rating_in_range", Check: checkRatingInRange},
		{Name: "has_genre", Check: checkHasGenre},
		{Name: "short_reviews_complete", Check: checkShortReviewsComplete},
	}
}

func checkCreatedAtSet(a *Artwork) *Violation {
	if a.CreatedAt == nil {
		return &Violation{Kind: apperr.KindFieldRequired, Field: FieldCreatedAt}
	}
	return nil
}

func checkPlayedOnSet(a *Artwork) *Violation {
	if a.PlayedOn == nil || *a.PlayedOn == "" {
		return &Violation{Kind: apperr.KindFieldRequired, Field: FieldPlayedOn}
	}
	return nil
}

// checkRatingSet treats 0 as a real rating; only a nil pointer is "not set".
func checkRatingSet(a *Artwork) *Violation {
	if a.Rating == nil {
		return &Violation{Kind: apperr.KindFieldRequired, Field: FieldRating}
	}
	return nil
}

// checkRatingInRange passes on a nil rating; checkRatingSet owns that case.
func checkRatingInRange(a *Artwork) *Violation {
	if a.Rating != nil && (*a.Rating < RatingMin || *a.Rating > RatingMax) {
		return &Violation{Kind: apperr.KindOutOfRange, Field: FieldRating}
	}
	return nil
}

func checkHasGenre(a *Artwork) *Violation {
	if len(a.GenreIDs) == 0 {
		return &Violation{Kind: apperr.KindNotExist, Field: FieldGenres}
	}
	return nil
}

// checkShortReviewsComplete requires a non-blank short review in every
// supported language. A missing translation row counts the same as a blank
// review for that language.
func checkShortReviewsComplete(a *Artwork) *Violation {
	var missing []string
	for _, lang := range i18n.Supported() {
		tr := a.TranslationFor(lang)
		if tr == nil || tr.ShortReview == nil || strings.TrimSpace(*tr.ShortReview) == "" {
			missing = append(missing, ShortReviewPath(lang))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &Violation{Kind: apperr.KindFieldRequired, Field: strings.Join(missing, ",")}
}
