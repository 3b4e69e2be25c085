package schema

// CatalogItemTable represents the 'catalog.item' table
type CatalogItemTable struct {
	Table         string
	ContentID     string
	Title         string
	NormalizedKey string
	Language      string
	Year          string
	PosterRef     string
	ViewCount     string
	LikeCount     string
	DislikeCount  string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogItem is the schema definition for catalog.item
var CatalogItem = CatalogItemTable{
	Table:         "catalog.item",
	ContentID:     "contentid",
	Title:         "title",
	NormalizedKey: "normalizedkey",
	Language:      "language",
	Year:          "year",
	PosterRef:     "posterref",
	ViewCount:     "viewcount",
	LikeCount:     "likecount",
	DislikeCount:  "dislikecount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CatalogItemTable) Columns() []string {
	return []string{
		t.ContentID, t.Title, t.NormalizedKey, t.Language, t.Year, t.PosterRef,
		t.ViewCount, t.LikeCount, t.DislikeCount, t.CreatedAt, t.UpdatedAt,
	}
}
