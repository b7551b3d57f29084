// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package series manages curated, ordered artwork collections.

Like genres, a series is translation-complete: it carries a title in every
supported language. Unlike genre links, the artwork association is ordered —
the admin arranges a display sequence, replaced wholesale via one endpoint.
*/
package series

import (
	"time"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// Series is one curated collection with its per-language titles and its
// ordered artwork list.
type Series struct {
	ID string `json:"id"`

	// Translations holds exactly one row per supported language.
	Translations []Translation `json:"translations"`

	// Items is the ordered artwork association, ascending by SortOrder.
	Items []Item `json:"items"`

	RowCreated time.Time `json:"row_created"`
	RowUpdated time.Time `json:"row_updated"`
}

// Translation is one per-language title row. (lang, title) is unique across
// all series.
type Translation struct {
	SeriesID string    `json:"-"`
	Lang     i18n.Lang `json:"lang"`
	Title    string    `json:"title"`
}

// Item is one artwork in the series' display sequence.
type Item struct {
	ArtworkID string `json:"artwork_id"`
	// SortOrder is the 0-based position in the sequence.
	SortOrder int `json:"sort_order"`
}

// TitleFor returns the series title in lang, or "" when absent.
func (s *Series) TitleFor(lang i18n.Lang) string {
	for _, tr := range s.Translations {
		if tr.Lang == lang {
			return tr.Title
		}
	}
	return ""
}

// ArtworkIDs returns the association in display order.
func (s *Series) ArtworkIDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ArtworkID)
	}
	return ids
}

const TitleMaxLen = 100
