package search

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/devkabir/moviq/internal/platform/constants"
)

// Keyword is one trending search term with its accumulated hit count.
type Keyword struct {
	Keyword string `json:"keyword"`
	Count   int64  `json:"count"`
}

// RedisTrending keeps search keyword frequencies in a Redis sorted set.
//
// Counts are advisory operator data, not authoritative state; a flushed
// Redis simply restarts the tally.
type RedisTrending struct {
	client *redis.Client
}

func NewRedisTrending(client *redis.Client) *RedisTrending {
	return &RedisTrending{client: client}
}

// RecordKeyword increments the keyword's score by one.
func (trending *RedisTrending) RecordKeyword(context context.Context, keyword string) error {
	return trending.client.ZIncrBy(context, constants.RedisKeyTrending, 1, keyword).Err()
}

// Top returns the n most searched keywords, most frequent first.
func (trending *RedisTrending) Top(context context.Context, n int) ([]Keyword, error) {
	entries, err := trending.client.ZRevRangeWithScores(context, constants.RedisKeyTrending, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	keywords := make([]Keyword, 0, len(entries))
	for _, entry := range entries {
		term, ok := entry.Member.(string)
		if !ok {
			continue
		}
		keywords = append(keywords, Keyword{Keyword: term, Count: int64(entry.Score)})
	}

	return keywords, nil
}
