package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkabir/moviq/internal/platform/apperr"
)

type voteKey struct {
	contentID int64
	userID    int64
}

type favoriteKey struct {
	userID    int64
	contentID int64
}

type itemCounters struct {
	viewCount    int
	likeCount    int
	dislikeCount int
}

// fakeRepository mirrors the store contract: every mutation is a single
// guarded section, so concurrent callers observe the same atomicity the
// SQL statements provide.
type fakeRepository struct {
	mu        sync.Mutex
	items     map[int64]*itemCounters
	votes     map[voteKey]bool
	favorites map[favoriteKey]struct{}
}

func newFakeRepository(contentIDs ...int64) *fakeRepository {
	repository := &fakeRepository{
		items:     make(map[int64]*itemCounters),
		votes:     make(map[voteKey]bool),
		favorites: make(map[favoriteKey]struct{}),
	}
	for _, contentID := range contentIDs {
		repository.items[contentID] = &itemCounters{}
	}
	return repository
}

func (repository *fakeRepository) IncrementView(_ context.Context, contentID int64) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item, ok := repository.items[contentID]
	if !ok {
		return 0, apperr.NotFound("item")
	}
	item.viewCount++
	return item.viewCount, nil
}

func (repository *fakeRepository) CastVote(_ context.Context, contentID, userID int64, isLike bool) (VoteOutcome, VoteCounts, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item, ok := repository.items[contentID]
	if !ok {
		return "", VoteCounts{}, apperr.NotFound("item")
	}

	key := voteKey{contentID: contentID, userID: userID}
	counts := func() VoteCounts {
		return VoteCounts{LikeCount: item.likeCount, DislikeCount: item.dislikeCount}
	}
	if _, voted := repository.votes[key]; voted {
		return VoteAlreadyCast, counts(), nil
	}

	repository.votes[key] = isLike
	if isLike {
		item.likeCount++
	} else {
		item.dislikeCount++
	}
	return VoteAccepted, counts(), nil
}

func (repository *fakeRepository) ToggleFavorite(_ context.Context, userID, contentID int64) (FavoriteOutcome, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := favoriteKey{userID: userID, contentID: contentID}
	if _, ok := repository.favorites[key]; ok {
		delete(repository.favorites, key)
		return FavoriteRemoved, nil
	}
	repository.favorites[key] = struct{}{}
	return FavoriteAdded, nil
}

func newTestService(repository Repository) *Service {
	return NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCastVoteRejectsSecondVote(t *testing.T) {
	repository := newFakeRepository(42)
	service := newTestService(repository)

	outcome, counts, err := service.CastVote(context.Background(), 42, 7, true)
	require.NoError(t, err)
	assert.Equal(t, VoteAccepted, outcome)
	assert.Equal(t, 1, counts.LikeCount)
	assert.Equal(t, 0, counts.DislikeCount)

	// Switching sides does not reopen the vote.
	outcome, counts, err = service.CastVote(context.Background(), 42, 7, false)
	require.NoError(t, err)
	assert.Equal(t, VoteAlreadyCast, outcome)
	assert.Equal(t, 1, counts.LikeCount)
	assert.Equal(t, 0, counts.DislikeCount)
}

func TestCastVoteCountsPerUser(t *testing.T) {
	repository := newFakeRepository(42)
	service := newTestService(repository)

	for userID := int64(1); userID <= 3; userID++ {
		outcome, _, err := service.CastVote(context.Background(), 42, userID, userID%2 == 1)
		require.NoError(t, err)
		assert.Equal(t, VoteAccepted, outcome)
	}

	_, counts, err := service.CastVote(context.Background(), 42, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.LikeCount)
	assert.Equal(t, 1, counts.DislikeCount)
}

func TestCastVoteMissingItem(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, _, err := service.CastVote(context.Background(), 99, 7, true)
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

func TestToggleFavoriteAlternates(t *testing.T) {
	service := newTestService(newFakeRepository(42))

	outcome, err := service.ToggleFavorite(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, outcome)

	outcome, err = service.ToggleFavorite(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, FavoriteRemoved, outcome)

	outcome, err = service.ToggleFavorite(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, outcome)
}

func TestRecordViewConcurrent(t *testing.T) {
	repository := newFakeRepository(42)
	service := newTestService(repository)

	const workers = 64
	var group sync.WaitGroup
	group.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer group.Done()
			_, err := service.RecordView(context.Background(), 42)
			assert.NoError(t, err)
		}()
	}
	group.Wait()

	viewCount, err := service.RecordView(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, workers+1, viewCount)
}
