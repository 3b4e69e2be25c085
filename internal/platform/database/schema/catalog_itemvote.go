package schema

// CatalogItemVoteTable represents the 'catalog.itemvote' table
type CatalogItemVoteTable struct {
	Table     string
	ContentID string
	UserID    string
	IsLike    string
	CreatedAt string
}

// CatalogItemVote is the schema definition for catalog.itemvote
var CatalogItemVote = CatalogItemVoteTable{
	Table:     "catalog.itemvote",
	ContentID: "contentid",
	UserID:    "userid",
	IsLike:    "islike",
	CreatedAt: "createdat",
}
