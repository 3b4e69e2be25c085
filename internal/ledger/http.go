package ledger

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devkabir/moviq/internal/platform/ctxutil"
	"github.com/devkabir/moviq/internal/platform/identity"
	requestutil "github.com/devkabir/moviq/internal/platform/request"
	"github.com/devkabir/moviq/internal/platform/respond"
)

// ProfileToucher marks a sender as active, creating the profile on first
// contact.
type ProfileToucher interface {
	Touch(context context.Context, sender identity.Sender) error
}

type Handler struct {
	service  *Service
	profiles ProfileToucher
}

func NewHandler(service *Service, profiles ProfileToucher) *Handler {
	return &Handler{service: service, profiles: profiles}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/items/{id}/view", handler.recordView)
	router.Post("/items/{id}/vote", handler.castVote)
	router.Post("/items/{id}/favorite", handler.toggleFavorite)
}

func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	_, contentID, err := handler.identify(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	viewCount, err := handler.service.RecordView(request.Context(), contentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"content_id": contentID, "view_count": viewCount})
}

type votePayload struct {
	IsLike bool `json:"is_like"`
}

func (handler *Handler) castVote(writer http.ResponseWriter, request *http.Request) {
	sender, contentID, err := handler.identify(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload votePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	outcome, counts, err := handler.service.CastVote(request.Context(), contentID, sender.ID, payload.IsLike)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"outcome":       outcome,
		"like_count":    counts.LikeCount,
		"dislike_count": counts.DislikeCount,
	})
}

func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	sender, contentID, err := handler.identify(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	outcome, err := handler.service.ToggleFavorite(request.Context(), sender.ID, contentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"outcome": outcome})
}

// identify resolves the sender and selector token shared by every ledger
// route, touching the sender's profile as a side effect.
func (handler *Handler) identify(request *http.Request) (*identity.Sender, int64, error) {
	sender, err := requestutil.RequiredSender(request)
	if err != nil {
		return nil, 0, err
	}

	contentID, err := requestutil.ContentID(request)
	if err != nil {
		return nil, 0, err
	}

	if err := handler.profiles.Touch(request.Context(), *sender); err != nil {
		ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "profile_touch_failed",
			slog.Int64("sender_id", sender.ID),
			slog.Any("error", err),
		)
	}

	return sender, contentID, nil
}
