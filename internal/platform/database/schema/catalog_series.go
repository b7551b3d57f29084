package schema

// CatalogSeriesTable represents the 'catalog.series' table
type CatalogSeriesTable struct {
	Table      string
	ID         string
	RowCreated string
	RowUpdated string
}

// CatalogSeries is the schema definition for catalog.series.
var CatalogSeries = CatalogSeriesTable{
	Table:      "catalog.series",
	ID:         "id",
	RowCreated: "row_created",
	RowUpdated: "row_updated",
}

// CatalogSeriesTranslationTable represents the 'catalog.series_translation' table
type CatalogSeriesTranslationTable struct {
	Table    string
	SeriesID string
	Lang     string
	Title    string
}

// CatalogSeriesTranslation is the schema definition for catalog.series_translation.
// Composite primary key (series_id, lang); (lang, title) is unique across series.
var CatalogSeriesTranslation = CatalogSeriesTranslationTable{
	Table:    "catalog.series_translation",
	SeriesID: "series_id",
	Lang:     "lang",
	Title:    "title",
}

// CatalogSeriesArtworkTable represents the 'catalog.series_artwork' junction table
type CatalogSeriesArtworkTable struct {
	Table     string
	SeriesID  string
	ArtworkID string
	SortOrder string
}

// CatalogSeriesArtwork is the schema definition for catalog.series_artwork.
// sort_order is the 0-based display sequence within the series.
var CatalogSeriesArtwork = CatalogSeriesArtworkTable{
	Table:     "catalog.series_artwork",
	SeriesID:  "series_id",
	ArtworkID: "artwork_id",
	SortOrder: "sort_order",
}
