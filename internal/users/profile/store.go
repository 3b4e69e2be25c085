package profile

import (
	"context"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/platform/identity"
)

// Repository is the persistence contract for user profiles and favorites.
type Repository interface {
	// Touch upserts the sender's profile: first contact creates the row with
	// the configured default language, later contacts refresh the name fields
	// and the last-active timestamp.
	Touch(context context.Context, sender identity.Sender, defaultLanguage string) error

	// SetLanguage updates the stored language preference. The profile must
	// already exist.
	SetLanguage(context context.Context, userID int64, language string) error

	// GetByID fetches a single profile.
	GetByID(context context.Context, userID int64) (*Profile, error)

	// ListFavorites returns one page of the user's favorited items, newest
	// favorite first, along with the total favorite count.
	ListFavorites(context context.Context, userID int64, limit, offset int) ([]*catalog.Item, int, error)

	// Count returns the number of known profiles.
	Count(context context.Context) (int64, error)
}
