// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package genre manages the catalogue's genre taxonomy.

A genre is a translation-complete entity: it exists in every supported language
or not at all. Creation therefore demands all translations up front, while
updates may rename any subset of languages. Deletion is guarded while any
artwork still references the genre.
*/
package genre

import (
	"time"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
)

// Genre is one taxonomy entry with its per-language names.
type Genre struct {
	ID string `json:"id"`

	// Translations holds exactly one row per supported language.
	Translations []Translation `json:"translations"`

	// ArtworkCount is the number of artworks linked to this genre. Loaded on
	// reads; drives the IN_USE deletion guard.
	ArtworkCount int `json:"artwork_count"`

	RowCreated time.Time `json:"row_created"`
	RowUpdated time.Time `json:"row_updated"`
}

// Translation is one per-language name row. (lang, name) is unique across all
// genres: two genres cannot share a name within one language.
type Translation struct {
	GenreID string    `json:"-"`
	Lang    i18n.Lang `json:"lang"`
	Name    string    `json:"name"`
}

// NameFor returns the genre's name in lang, or "" when absent.
func (g *Genre) NameFor(lang i18n.Lang) string {
	for _, tr := range g.Translations {
		if tr.Lang == lang {
			return tr.Name
		}
	}
	return ""
}

const NameMaxLen = 50
