package profile

import (
	"context"
	"log/slog"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/platform/constants"
	"github.com/devkabir/moviq/internal/platform/identity"
	"github.com/devkabir/moviq/internal/platform/validate"
)

type Service struct {
	repo            Repository
	defaultLanguage string
	logger          *slog.Logger
}

func NewService(repo Repository, defaultLanguage string, logger *slog.Logger) *Service {
	return &Service{
		repo:            repo,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// Touch records that the sender is active, creating the profile on first
// contact. Every authenticated route calls this.
func (service *Service) Touch(context context.Context, sender identity.Sender) error {
	return service.repo.Touch(context, sender, service.defaultLanguage)
}

// SetLanguage updates the sender's reply-language preference.
func (service *Service) SetLanguage(context context.Context, userID int64, language string) error {
	v := &validate.Validator{}
	if err := v.
		Required("language", language).
		OneOf("language", language, constants.SupportedLanguages).
		Err(); err != nil {
		return err
	}

	if err := service.repo.SetLanguage(context, userID, language); err != nil {
		return err
	}

	service.logger.InfoContext(context, "language_preference_updated",
		slog.Int64("user_id", userID),
		slog.String("language", language),
	)

	return nil
}

// Get fetches a profile by user identifier.
func (service *Service) Get(context context.Context, userID int64) (*Profile, error) {
	return service.repo.GetByID(context, userID)
}

// ListFavorites returns one page of the user's favorited items, newest first,
// plus the total favorite count.
func (service *Service) ListFavorites(context context.Context, userID int64, limit, offset int) ([]*catalog.Item, int, error) {
	return service.repo.ListFavorites(context, userID, limit, offset)
}

// Count returns the number of known profiles.
func (service *Service) Count(context context.Context) (int64, error) {
	return service.repo.Count(context)
}
