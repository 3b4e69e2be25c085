package search

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/devkabir/moviq/internal/catalog"
)

// keyMatch is a normalized key that scored above the similarity threshold.
type keyMatch struct {
	catalog.KeyRef
	Score int
}

// matchKeys scores the query against every candidate key on the 0-100
// token-set scale and returns at most maxCandidates matches scoring
// strictly above threshold.
//
// Ranking is a stable sort by (score descending, ContentID ascending) so
// identical inputs over identical catalog state always produce the same
// order. Cost is O(len(keys)) scorings per query; fine for catalogs in the
// low tens of thousands, which is the documented scaling boundary.
func matchKeys(normalizedQuery string, keys []catalog.KeyRef, maxCandidates, threshold int) []keyMatch {
	matches := make([]keyMatch, 0, maxCandidates)

	for _, key := range keys {
		score := fuzzy.TokenSetRatio(normalizedQuery, key.NormalizedKey)
		if score > threshold {
			matches = append(matches, keyMatch{KeyRef: key, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ContentID < matches[j].ContentID
	})

	if len(matches) > maxCandidates {
		matches = matches[:maxCandidates]
	}

	return matches
}
