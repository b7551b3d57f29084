package schema

// CatalogArtworkTranslationTable represents the 'catalog.artwork_translation' table
type CatalogArtworkTranslationTable struct {
	Table       string
	ArtworkID   string
	Lang        string
	Title       string
	ShortReview string
}

// CatalogArtworkTranslation is the schema definition for catalog.artwork_translation.
// Composite primary key (artwork_id, lang).
var CatalogArtworkTranslation = CatalogArtworkTranslationTable{
	Table:       "catalog.artwork_translation",
	ArtworkID:   "artwork_id",
	Lang:        "lang",
	Title:       "title",
	ShortReview: "short_review",
}
