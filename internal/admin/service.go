// Package admin aggregates operator-facing statistics from the catalog, the
// user base, and the trending keyword tally.
package admin

import (
	"context"
	"log/slog"

	"github.com/devkabir/moviq/internal/platform/constants"
	"github.com/devkabir/moviq/internal/search"
)

// CatalogStats is the slice of the catalog store the stats report reads.
type CatalogStats interface {
	Count(context context.Context) (int64, error)
	TotalViews(context context.Context) (int64, error)
}

// ProfileStats is the slice of the profile store the stats report reads.
type ProfileStats interface {
	Count(context context.Context) (int64, error)
}

// TrendingSource supplies the most searched keywords.
type TrendingSource interface {
	Top(context context.Context, n int) ([]search.Keyword, error)
}

// Stats is the operator snapshot returned by the stats endpoint.
type Stats struct {
	ItemCount    int64            `json:"item_count"`
	TotalViews   int64            `json:"total_views"`
	ProfileCount int64            `json:"profile_count"`
	Trending     []search.Keyword `json:"trending"`
}

type Service struct {
	catalog  CatalogStats
	profiles ProfileStats
	trending TrendingSource
	logger   *slog.Logger
}

func NewService(catalog CatalogStats, profiles ProfileStats, trending TrendingSource, logger *slog.Logger) *Service {
	return &Service{
		catalog:  catalog,
		profiles: profiles,
		trending: trending,
		logger:   logger,
	}
}

// Snapshot gathers the current counters. Trending is best-effort: a cache
// outage degrades the report instead of failing it.
func (service *Service) Snapshot(context context.Context) (*Stats, error) {
	itemCount, err := service.catalog.Count(context)
	if err != nil {
		return nil, err
	}

	totalViews, err := service.catalog.TotalViews(context)
	if err != nil {
		return nil, err
	}

	profileCount, err := service.profiles.Count(context)
	if err != nil {
		return nil, err
	}

	trending, err := service.trending.Top(context, constants.TrendingTopCount)
	if err != nil {
		service.logger.WarnContext(context, "trending_unavailable", slog.Any("error", err))
		trending = []search.Keyword{}
	}

	return &Stats{
		ItemCount:    itemCount,
		TotalViews:   totalViews,
		ProfileCount: profileCount,
		Trending:     trending,
	}, nil
}
