package catalog

import "context"

// Repository is the catalog storage contract.
type Repository interface {
	// Upsert creates or refreshes an item keyed on ContentID.
	// Interaction counters are preserved on update.
	Upsert(context context.Context, item *Item) error

	// GetByID fetches a single item by its content identifier.
	GetByID(context context.Context, contentID int64) (*Item, error)

	// GetByIDs fetches the given items in one round trip. Missing IDs are
	// skipped; callers own the ordering.
	GetByIDs(context context.Context, contentIDs []int64) ([]*Item, error)

	// SearchExact returns items whose normalized key starts with the given
	// key OR whose raw title contains the raw query (case-insensitive),
	// deduplicated by ContentID, in stable ContentID order, at most limit rows.
	SearchExact(context context.Context, normalizedKey, rawQuery string, limit int) ([]*Item, error)

	// DistinctKeys lists every distinct normalized key with its
	// representative (lowest) ContentID.
	DistinctKeys(context context.Context) ([]KeyRef, error)

	// Count returns the total number of catalog items.
	Count(context context.Context) (int64, error)

	// TotalViews returns the sum of all view counters.
	TotalViews(context context.Context) (int64, error)
}
