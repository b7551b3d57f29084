package schema

// CatalogGenreTable represents the 'catalog.genre' table
type CatalogGenreTable struct {
	Table      string
	ID         string
	RowCreated string
	RowUpdated string
}

// CatalogGenre is the schema definition for catalog.genre.
var CatalogGenre = CatalogGenreTable{
	Table:      "catalog.genre",
	ID:         "id",
	RowCreated: "row_created",
	RowUpdated: "row_updated",
}

// CatalogGenreTranslationTable represents the 'catalog.genre_translation' table
type CatalogGenreTranslationTable struct {
	Table   string
	GenreID string
	Lang    string
	Name    string
}

// CatalogGenreTranslation is the schema definition for catalog.genre_translation.
// Composite primary key (genre_id, lang); (lang, name) is unique across genres.
var CatalogGenreTranslation = CatalogGenreTranslationTable{
	Table:   "catalog.genre_translation",
	GenreID: "genre_id",
	Lang:    "lang",
	Name:    "name",
}
