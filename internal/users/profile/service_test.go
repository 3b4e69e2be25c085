package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/platform/apperr"
	"github.com/devkabir/moviq/internal/platform/identity"
)

type fakeRepository struct {
	profiles  map[int64]*Profile
	favorites map[int64][]*catalog.Item
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		profiles:  make(map[int64]*Profile),
		favorites: make(map[int64][]*catalog.Item),
	}
}

func (repository *fakeRepository) Touch(_ context.Context, sender identity.Sender, defaultLanguage string) error {
	record, ok := repository.profiles[sender.ID]
	if !ok {
		record = &Profile{
			UserID:       sender.ID,
			LanguagePref: defaultLanguage,
			JoinedAt:     time.Now(),
		}
		repository.profiles[sender.ID] = record
	}
	if sender.FirstName != "" {
		record.FirstName = &sender.FirstName
	}
	if sender.Username != "" {
		record.Username = &sender.Username
	}
	record.LastActiveAt = time.Now()
	return nil
}

func (repository *fakeRepository) SetLanguage(_ context.Context, userID int64, language string) error {
	record, ok := repository.profiles[userID]
	if !ok {
		return apperr.NotFound("Profile")
	}
	record.LanguagePref = language
	return nil
}

func (repository *fakeRepository) GetByID(_ context.Context, userID int64) (*Profile, error) {
	record, ok := repository.profiles[userID]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return record, nil
}

func (repository *fakeRepository) ListFavorites(_ context.Context, userID int64, limit, offset int) ([]*catalog.Item, int, error) {
	all := repository.favorites[userID]
	if offset >= len(all) {
		return []*catalog.Item{}, len(all), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (repository *fakeRepository) Count(_ context.Context) (int64, error) {
	return int64(len(repository.profiles)), nil
}

func newTestService(repository Repository) *Service {
	return NewService(repository, "bn", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTouchCreatesProfileWithDefaultLanguage(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(repository)

	sender := identity.Sender{ID: 7, FirstName: "Rahim", Username: "rahim01"}
	require.NoError(t, service.Touch(context.Background(), sender))

	record, err := service.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "bn", record.LanguagePref)
	require.NotNil(t, record.FirstName)
	assert.Equal(t, "Rahim", *record.FirstName)
}

func TestTouchPreservesKnownNames(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(repository)

	require.NoError(t, service.Touch(context.Background(), identity.Sender{ID: 7, FirstName: "Rahim"}))
	// A later interaction where the transport omits the name.
	require.NoError(t, service.Touch(context.Background(), identity.Sender{ID: 7}))

	record, err := service.Get(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, record.FirstName)
	assert.Equal(t, "Rahim", *record.FirstName)
}

func TestSetLanguageValidatesOption(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(repository)
	require.NoError(t, service.Touch(context.Background(), identity.Sender{ID: 7}))

	err := service.SetLanguage(context.Background(), 7, "fr")
	require.Error(t, err)
	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)

	require.NoError(t, service.SetLanguage(context.Background(), 7, "en"))
	record, err := service.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "en", record.LanguagePref)
}

func TestListFavoritesPaginates(t *testing.T) {
	repository := newFakeRepository()
	for id := int64(1); id <= 5; id++ {
		repository.favorites[7] = append(repository.favorites[7], &catalog.Item{ContentID: id})
	}
	service := newTestService(repository)

	items, total, err := service.ListFavorites(context.Background(), 7, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ContentID)
}
