package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/devkabir/moviq/internal/platform/request"
	"github.com/devkabir/moviq/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public catalog routes.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/items/{id}", handler.getItem)
}

// RegisterAdminRoutes mounts the ingestion route used by the channel mirror.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/items", handler.ingestItem)
}

func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	contentID, err := requestutil.ContentID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Get(request.Context(), contentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) ingestItem(writer http.ResponseWriter, request *http.Request) {
	var payload IngestRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Ingest(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}
