package schema

// UsersProfileTable represents the 'users.profile' table
type UsersProfileTable struct {
	Table        string
	UserID       string
	FirstName    string
	Username     string
	LanguagePref string
	JoinedAt     string
	LastActiveAt string
}

// UsersProfile is the schema definition for users.profile
var UsersProfile = UsersProfileTable{
	Table:        "users.profile",
	UserID:       "userid",
	FirstName:    "firstname",
	Username:     "username",
	LanguagePref: "languagepref",
	JoinedAt:     "joinedat",
	LastActiveAt: "lastactiveat",
}
