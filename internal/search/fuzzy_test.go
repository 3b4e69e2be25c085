package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkabir/moviq/internal/catalog"
)

func keyRefs(pairs ...catalog.KeyRef) []catalog.KeyRef { return pairs }

func TestMatchKeys_MisspelledQueryScoresAboveThreshold(t *testing.T) {
	keys := keyRefs(
		catalog.KeyRef{NormalizedKey: "interstellar", ContentID: 1},
		catalog.KeyRef{NormalizedKey: "avatar", ContentID: 2},
	)

	matches := matchKeys("intersteller", keys, 5, 70)

	require.Len(t, matches, 1)
	assert.Equal(t, "interstellar", matches[0].NormalizedKey)
	assert.Greater(t, matches[0].Score, 70)
}

func TestMatchKeys_UnrelatedQueryFilteredAtThreshold(t *testing.T) {
	keys := keyRefs(catalog.KeyRef{NormalizedKey: "avatar", ContentID: 1})

	matches := matchKeys("randomunrelatedtext", keys, 5, 70)

	assert.Empty(t, matches)
}

func TestMatchKeys_DeterministicRanking(t *testing.T) {
	// Identical keys under different IDs tie on score; the lower ContentID
	// must win regardless of input order.
	keys := keyRefs(
		catalog.KeyRef{NormalizedKey: "manofsteel", ContentID: 9},
		catalog.KeyRef{NormalizedKey: "manofsteel", ContentID: 3},
	)

	matches := matchKeys("manofsteel", keys, 5, 70)

	require.Len(t, matches, 2)
	assert.Equal(t, int64(3), matches[0].ContentID)
	assert.Equal(t, int64(9), matches[1].ContentID)

	// Exact key match scores the ceiling.
	assert.Equal(t, 100, matches[0].Score)
}

func TestMatchKeys_BoundsCandidates(t *testing.T) {
	keys := keyRefs(
		catalog.KeyRef{NormalizedKey: "terminator", ContentID: 1},
		catalog.KeyRef{NormalizedKey: "terminator2", ContentID: 2},
		catalog.KeyRef{NormalizedKey: "terminator3", ContentID: 3},
		catalog.KeyRef{NormalizedKey: "terminators", ContentID: 4},
	)

	matches := matchKeys("terminator", keys, 2, 70)

	require.Len(t, matches, 2)
	// The exact key wins, then the best near-match by (score, ContentID).
	assert.Equal(t, int64(1), matches[0].ContentID)
}

func TestMatchKeys_EmptyCatalog(t *testing.T) {
	assert.Empty(t, matchKeys("anything", nil, 5, 70))
}
