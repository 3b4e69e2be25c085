package search

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkabir/moviq/internal/catalog"
)

// fakeCatalog implements CatalogSource over an in-memory item list, honoring
// the documented SearchExact contract (prefix-or-substring, ContentID order).
type fakeCatalog struct {
	items []*catalog.Item

	exactCalls    int
	distinctCalls int
}

func (f *fakeCatalog) SearchExact(_ context.Context, normalizedKey, rawQuery string, limit int) ([]*catalog.Item, error) {
	f.exactCalls++

	matched := make([]*catalog.Item, 0)
	for _, item := range f.items {
		byKey := strings.HasPrefix(item.NormalizedKey, normalizedKey)
		byTitle := strings.Contains(strings.ToLower(item.Title), strings.ToLower(rawQuery))
		if byKey || byTitle {
			matched = append(matched, item)
		}
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}

func (f *fakeCatalog) DistinctKeys(_ context.Context) ([]catalog.KeyRef, error) {
	f.distinctCalls++

	seen := make(map[string]bool)
	keys := make([]catalog.KeyRef, 0, len(f.items))
	for _, item := range f.items {
		if !seen[item.NormalizedKey] {
			seen[item.NormalizedKey] = true
			keys = append(keys, catalog.KeyRef{NormalizedKey: item.NormalizedKey, ContentID: item.ContentID})
		}
	}
	return keys, nil
}

func (f *fakeCatalog) GetByIDs(_ context.Context, ids []int64) ([]*catalog.Item, error) {
	result := make([]*catalog.Item, 0, len(ids))
	for _, item := range f.items {
		for _, id := range ids {
			if item.ContentID == id {
				result = append(result, item)
			}
		}
	}
	return result, nil
}

func testOptions() Options {
	return Options{
		MinQueryLength:  3,
		MaxResults:      10,
		FuzzyThreshold:  70,
		FuzzyCandidates: 5,
	}
}

func newSearchService(source CatalogSource) *Service {
	return NewService(source, nil, testOptions(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func item(id int64, title, key string) *catalog.Item {
	return &catalog.Item{ContentID: id, Title: title, NormalizedKey: key}
}

func TestSearch_ShortQuerySkipsStore(t *testing.T) {
	source := &fakeCatalog{items: []*catalog.Item{item(1, "Man of Steel", "manofsteel")}}
	service := newSearchService(source)

	for _, query := range []string{"", "ab", "a b", "!?"} {
		results, err := service.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, results, "query %q", query)
	}

	assert.Zero(t, source.exactCalls)
	assert.Zero(t, source.distinctCalls)
}

func TestSearch_ExactStagePrefixSemantics(t *testing.T) {
	// The second title deliberately avoids the raw substring "man" so only
	// the key-prefix predicate is in play.
	source := &fakeCatalog{items: []*catalog.Item{
		item(1, "Man of Steel", "manofsteel"),
		item(2, "স্টিলম্যান", "steelman"),
	}}
	service := newSearchService(source)

	results, err := service.Search(context.Background(), "Man")
	require.NoError(t, err)

	// "man" prefixes "manofsteel" but only appears mid-key in "steelman".
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ContentID)
	}
	assert.Contains(t, ids, int64(1))
	assert.NotContains(t, ids, int64(2))
}

func TestSearch_FuzzyOnlyWhenExactEmpty(t *testing.T) {
	source := &fakeCatalog{items: []*catalog.Item{item(1, "Interstellar", "interstellar")}}
	service := newSearchService(source)

	// Exact hit: the fuzzy stage must not run.
	results, err := service.Search(context.Background(), "Interstellar")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, source.distinctCalls)

	// Misspelling: exact stage misses, fuzzy fallback resolves it.
	results, err = service.Search(context.Background(), "Intersteller")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].ContentID)
	assert.Greater(t, results[0].Score, 70)
	assert.Equal(t, 1, source.distinctCalls)
}

func TestSearch_FuzzyFiltersUnrelated(t *testing.T) {
	source := &fakeCatalog{items: []*catalog.Item{item(1, "Avatar", "avatar")}}
	service := newSearchService(source)

	results, err := service.Search(context.Background(), "random unrelated text")
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.Equal(t, 1, source.distinctCalls)
}

func TestSearch_ResultBound(t *testing.T) {
	items := make([]*catalog.Item, 0, 30)
	for i := int64(1); i <= 30; i++ {
		items = append(items, item(i, "Batman Returns", "batmanreturns"))
	}
	source := &fakeCatalog{items: items}
	service := newSearchService(source)

	results, err := service.Search(context.Background(), "Batman")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(results), testOptions().MaxResults)
}

// recordingTrending captures keywords passed to the trending counter.
type recordingTrending struct {
	keywords []string
}

func (r *recordingTrending) RecordKeyword(_ context.Context, keyword string) error {
	r.keywords = append(r.keywords, keyword)
	return nil
}

func TestSearch_RecordsNormalizedKeyword(t *testing.T) {
	source := &fakeCatalog{items: []*catalog.Item{item(1, "Man of Steel", "manofsteel")}}
	trending := &recordingTrending{}
	service := NewService(source, trending, testOptions(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := service.Search(context.Background(), "Man of Steel!")
	require.NoError(t, err)

	require.Len(t, trending.keywords, 1)
	assert.Equal(t, "manofsteel", trending.keywords[0])

	// Short queries must not be recorded either.
	_, err = service.Search(context.Background(), "ab")
	require.NoError(t, err)
	assert.Len(t, trending.keywords, 1)
}
