package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/pkg/textkey"
)

// CatalogSource is the slice of catalog storage the search engine reads.
type CatalogSource interface {
	SearchExact(context context.Context, normalizedKey, rawQuery string, limit int) ([]*catalog.Item, error)
	DistinctKeys(context context.Context) ([]catalog.KeyRef, error)
	GetByIDs(context context.Context, contentIDs []int64) ([]*catalog.Item, error)
}

// TrendingRecorder counts what users search for. Recording is best-effort;
// a failure never fails the search itself.
type TrendingRecorder interface {
	RecordKeyword(context context.Context, keyword string) error
}

// Options are the injected search tuning knobs.
type Options struct {
	// MinQueryLength is the minimum normalized query length; shorter queries
	// return an empty result without touching the store.
	MinQueryLength int

	// MaxResults bounds the returned result list.
	MaxResults int

	// FuzzyThreshold is the exclusive lower score bound on the 0-100 scale.
	FuzzyThreshold int

	// FuzzyCandidates bounds how many fuzzy matches are retained.
	FuzzyCandidates int
}

type Service struct {
	catalog  CatalogSource
	trending TrendingRecorder
	options  Options
	logger   *slog.Logger
}

func NewService(source CatalogSource, trending TrendingRecorder, options Options, logger *slog.Logger) *Service {
	return &Service{
		catalog:  source,
		trending: trending,
		options:  options,
		logger:   logger,
	}
}

// Search runs the two-stage retrieval: exact (normalized-key prefix or raw
// title substring), then fuzzy token-set matching only when the exact stage
// comes back empty. The returned order is the ranking; the formatter does
// not reorder.
func (service *Service) Search(context context.Context, rawQuery string) ([]Result, error) {
	rawQuery = strings.TrimSpace(rawQuery)
	normalizedQuery := textkey.From(rawQuery)

	// Near-universal prefix matches make sub-3-rune queries useless noise.
	// Ignorable input: empty result, no store access.
	if utf8.RuneCountInString(normalizedQuery) < service.options.MinQueryLength {
		return []Result{}, nil
	}

	service.recordKeyword(context, normalizedQuery)

	items, err := service.catalog.SearchExact(context, normalizedQuery, rawQuery, service.options.MaxResults)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		return formatResults(items, nil, service.options.MaxResults), nil
	}

	return service.fuzzyFallback(context, normalizedQuery)
}

// fuzzyFallback scores the query against every distinct catalog key and
// resolves the surviving keys to their representative items.
func (service *Service) fuzzyFallback(context context.Context, normalizedQuery string) ([]Result, error) {
	keys, err := service.catalog.DistinctKeys(context)
	if err != nil {
		return nil, err
	}

	matches := matchKeys(normalizedQuery, keys, service.options.FuzzyCandidates, service.options.FuzzyThreshold)
	if len(matches) == 0 {
		return []Result{}, nil
	}

	contentIDs := make([]int64, 0, len(matches))
	scores := make(map[int64]int, len(matches))
	for _, match := range matches {
		contentIDs = append(contentIDs, match.ContentID)
		scores[match.ContentID] = match.Score
	}

	items, err := service.catalog.GetByIDs(context, contentIDs)
	if err != nil {
		return nil, err
	}

	// GetByIDs has no ordering contract; restore the match ranking.
	byID := make(map[int64]*catalog.Item, len(items))
	for _, item := range items {
		byID[item.ContentID] = item
	}

	ranked := make([]*catalog.Item, 0, len(matches))
	for _, match := range matches {
		if item, ok := byID[match.ContentID]; ok {
			ranked = append(ranked, item)
		}
	}

	return formatResults(ranked, scores, service.options.MaxResults), nil
}

// recordKeyword feeds the trending counter without letting cache failures
// affect the search.
func (service *Service) recordKeyword(context context.Context, keyword string) {
	if service.trending == nil {
		return
	}
	if err := service.trending.RecordKeyword(context, keyword); err != nil {
		service.logger.WarnContext(context, "trending_record_failed",
			slog.String("keyword", keyword),
			slog.Any("error", err),
		)
	}
}
