package ledger

// VoteOutcome is the terminal result of a vote attempt. A rejected duplicate
// is an outcome, not an error: the caller gets a notice, nothing mutates.
type VoteOutcome string

const (
	VoteAccepted    VoteOutcome = "accepted"
	VoteAlreadyCast VoteOutcome = "already_voted"
)

// FavoriteOutcome reports which way a favorite toggle flipped.
type FavoriteOutcome string

const (
	FavoriteAdded   FavoriteOutcome = "added"
	FavoriteRemoved FavoriteOutcome = "removed"
)

// VoteCounts carries the current tallies back to the transport, which
// re-renders the two counters after every vote attempt.
type VoteCounts struct {
	LikeCount    int `json:"like_count"`
	DislikeCount int `json:"dislike_count"`
}
