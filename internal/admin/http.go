package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devkabir/moviq/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the stats endpoint. The caller is responsible for
// wrapping the router in the admin allow-list middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/stats", handler.stats)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := handler.service.Snapshot(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, snapshot)
}
