package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkabir/moviq/internal/search"
)

type fakeCatalogStats struct {
	items int64
	views int64
}

func (stats fakeCatalogStats) Count(context.Context) (int64, error)      { return stats.items, nil }
func (stats fakeCatalogStats) TotalViews(context.Context) (int64, error) { return stats.views, nil }

type fakeProfileStats struct{ profiles int64 }

func (stats fakeProfileStats) Count(context.Context) (int64, error) { return stats.profiles, nil }

type fakeTrending struct {
	keywords []search.Keyword
	err      error
}

func (trending fakeTrending) Top(context.Context, int) ([]search.Keyword, error) {
	return trending.keywords, trending.err
}

func TestSnapshotAggregatesCounters(t *testing.T) {
	service := NewService(
		fakeCatalogStats{items: 1200, views: 45000},
		fakeProfileStats{profiles: 310},
		fakeTrending{keywords: []search.Keyword{{Keyword: "manofsteel", Count: 42}}},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	snapshot, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1200), snapshot.ItemCount)
	assert.Equal(t, int64(45000), snapshot.TotalViews)
	assert.Equal(t, int64(310), snapshot.ProfileCount)
	require.Len(t, snapshot.Trending, 1)
	assert.Equal(t, "manofsteel", snapshot.Trending[0].Keyword)
}

func TestSnapshotDegradesWithoutTrending(t *testing.T) {
	service := NewService(
		fakeCatalogStats{items: 5},
		fakeProfileStats{},
		fakeTrending{err: errors.New("redis: connection refused")},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	snapshot, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Trending)
	assert.Equal(t, int64(5), snapshot.ItemCount)
}
