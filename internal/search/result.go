package search

import (
	"fmt"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/platform/constants"
)

// Result is one entry of a search response: a presentation-ready label and
// the selector token (content ID) the transport round-trips on selection.
type Result struct {
	ContentID int64  `json:"content_id"`
	Label     string `json:"label"`
	Score     int    `json:"score"`
}

// exactScore is reported for exact-stage hits, which carry no similarity
// information of their own.
const exactScore = 100

// formatResults projects items into at most maxResults presentation entries.
//
// It is a pure projection: no re-sorting happens here, so ranking policy
// stays entirely inside the retrieval stages. Scores may be nil for the
// exact stage.
func formatResults(items []*catalog.Item, scores map[int64]int, maxResults int) []Result {
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		score := exactScore
		if scores != nil {
			score = scores[item.ContentID]
		}

		results = append(results, Result{
			ContentID: item.ContentID,
			Label:     fmt.Sprintf("%s (%d views)", truncateRunes(item.Title, constants.LabelTitleMaxRunes), item.ViewCount),
			Score:     score,
		})
	}

	return results
}

// truncateRunes bounds s to max display characters, not bytes, so multi-byte
// titles are not cut mid-rune.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
