package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/devkabir/moviq/internal/platform/request"
	"github.com/devkabir/moviq/internal/platform/respond"
	"github.com/devkabir/moviq/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/me", handler.getProfile)
	router.Get("/me/favorites", handler.listFavorites)
	router.Put("/me/language", handler.setLanguage)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	sender, err := requestutil.RequiredSender(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Touch(request.Context(), *sender); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Get(request.Context(), sender.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	sender, err := requestutil.RequiredSender(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListFavorites(request.Context(), sender.ID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

type languagePayload struct {
	Language string `json:"language"`
}

func (handler *Handler) setLanguage(writer http.ResponseWriter, request *http.Request) {
	sender, err := requestutil.RequiredSender(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload languagePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Setting a preference implies the profile exists; create it on the fly so
	// a first-time sender does not get a confusing 404.
	if err := handler.service.Touch(request.Context(), *sender); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetLanguage(request.Context(), sender.ID, payload.Language); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"language": payload.Language})
}
