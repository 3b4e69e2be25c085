package search

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
// contact. Best-effort on the search path.
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
	router.Get("/search", handler.search)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	sender, err := requestutil.RequiredSender(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.touch(request, *sender)

	results, err := handler.service.Search(request.Context(), request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"results": results})
}

// touch updates the sender's profile without failing the request.
func (handler *Handler) touch(request *http.Request, sender identity.Sender) {
	if err := handler.profiles.Touch(request.Context(), sender); err != nil {
		ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "profile_touch_failed",
			slog.Int64("sender_id", sender.ID),
			slog.Any("error", err),
		)
	}
}
