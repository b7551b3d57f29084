package schema

// CatalogArtworkTable represents the 'catalog.artwork' table
type CatalogArtworkTable struct {
	Table      string
	ID         string
	ImageKey   string
	CreatedAt  string
	PlayedOn   string
	Rating     string
	IsDraft    string
	IsVertical string
	RowCreated string
	RowUpdated string
}

// CatalogArtwork is the schema definition for catalog.artwork.
//
// created_at is the business date ("when the work was finished"); the row
// bookkeeping timestamps are row_created/row_updated.
var CatalogArtwork = CatalogArtworkTable{
	Table:      "catalog.artwork",
	ID:         "id",
	ImageKey:   "image_key",
	CreatedAt:  "created_at",
	PlayedOn:   "played_on",
	Rating:     "rating",
	IsDraft:    "is_draft",
	IsVertical: "is_vertical",
	RowCreated: "row_created",
	RowUpdated: "row_updated",
}
