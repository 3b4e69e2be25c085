package ledger

import "context"

// Repository is the interaction storage contract.
//
// Every mutation is a conditional update executed inside the store — never a
// read-modify-write at the application layer — so concurrent calls for the
// same item/user pair (e.g., a double-tapped rating button) cannot race.
type Repository interface {
	// IncrementView bumps the item's view counter by one and returns the new
	// value. Not idempotent: every selection counts.
	IncrementView(context context.Context, contentID int64) (int, error)

	// CastVote records at most one like-or-dislike per user per item. The
	// membership check and the counter increment are one atomic store
	// operation; a user who has voted before gets VoteAlreadyCast and no
	// mutation, including no vote switching.
	CastVote(context context.Context, contentID, userID int64, isLike bool) (VoteOutcome, VoteCounts, error)

	// ToggleFavorite flips the user's favorite membership for the item,
	// reporting which direction it flipped.
	ToggleFavorite(context context.Context, userID, contentID int64) (FavoriteOutcome, error)
}
