package catalog

import (
	"context"
	"log/slog"

	"github.com/devkabir/moviq/internal/platform/validate"
	"github.com/devkabir/moviq/pkg/textkey"
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

// Ingest upserts a mirrored content record.
//
// The title is the first line of the raw text; the normalized key derives
// from the title, falling back to the full text when the title is empty.
// Year and language are best-effort extractions from the raw text.
func (service *Service) Ingest(context context.Context, request IngestRequest) (*Item, error) {
	v := &validate.Validator{}
	if err := v.
		Positive("content_id", request.ContentID).
		Required("raw_text", request.RawText).
		Err(); err != nil {
		return nil, err
	}

	title := firstLine(request.RawText)
	key := textkey.From(title)
	if key == "" {
		key = textkey.From(request.RawText)
	}

	item := &Item{
		ContentID:     request.ContentID,
		Title:         title,
		NormalizedKey: key,
		Language:      extractLanguage(request.RawText),
		Year:          extractYear(request.RawText),
		PosterRef:     request.PosterRef,
	}

	if err := service.repo.Upsert(context, item); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "catalog_item_ingested",
		slog.Int64("content_id", item.ContentID),
		slog.String("normalized_key", item.NormalizedKey),
	)

	return item, nil
}

// Get fetches a single item by content identifier.
func (service *Service) Get(context context.Context, contentID int64) (*Item, error) {
	return service.repo.GetByID(context, contentID)
}
