package schema

// CatalogArtworkGenreTable represents the 'catalog.artwork_genre' junction table
type CatalogArtworkGenreTable struct {
	Table     string
	ArtworkID string
	GenreID   string
}

// CatalogArtworkGenre is the schema definition for catalog.artwork_genre.
var CatalogArtworkGenre = CatalogArtworkGenreTable{
	Table:     "catalog.artwork_genre",
	ArtworkID: "artwork_id",
	GenreID:   "genre_id",
}
