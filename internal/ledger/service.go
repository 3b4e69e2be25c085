package ledger

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// RecordView counts one selection of the item and returns the new total.
func (service *Service) RecordView(context context.Context, contentID int64) (int, error) {
	return service.repo.IncrementView(context, contentID)
}

// CastVote records the user's like or dislike, enforcing one vote per user
// per item for life. Duplicate attempts (including attempts to switch sides)
// come back as VoteAlreadyCast with the unchanged tallies.
func (service *Service) CastVote(context context.Context, contentID, userID int64, isLike bool) (VoteOutcome, VoteCounts, error) {
	outcome, counts, err := service.repo.CastVote(context, contentID, userID, isLike)
	if err != nil {
		return "", VoteCounts{}, err
	}

	if outcome == VoteAlreadyCast {
		service.logger.DebugContext(context, "duplicate_vote_rejected",
			slog.Int64("content_id", contentID),
			slog.Int64("user_id", userID),
		)
	}

	return outcome, counts, nil
}

// ToggleFavorite flips the item's membership in the user's favorites.
func (service *Service) ToggleFavorite(context context.Context, userID, contentID int64) (FavoriteOutcome, error) {
	return service.repo.ToggleFavorite(context, userID, contentID)
}
