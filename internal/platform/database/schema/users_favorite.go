package schema

// UsersFavoriteTable represents the 'users.favorite' table
type UsersFavoriteTable struct {
	Table     string
	UserID    string
	ContentID string
	CreatedAt string
}

// UsersFavorite is the schema definition for users.favorite
var UsersFavorite = UsersFavoriteTable{
	Table:     "users.favorite",
	UserID:    "userid",
	ContentID: "contentid",
	CreatedAt: "createdat",
}
