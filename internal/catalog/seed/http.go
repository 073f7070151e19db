package seed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabletoplib/bglist/internal/platform/middleware"
	"github.com/tabletoplib/bglist/internal/platform/respond"
	"github.com/tabletoplib/bglist/internal/platform/sec"
)

type Handler struct {
	service     *Service
	datasetPath string
}

func NewHandler(service *Service, datasetPath string) *Handler {
	return &Handler{service: service, datasetPath: datasetPath}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.NoStore, middleware.RequireRole(sec.RoleAdministrator))
	router.Put("/boardgames", handler.importBoardGames)
	router.Post("/authdata", handler.seedAuthData)
}

func (handler *Handler) importBoardGames(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.ImportDataset(request.Context(), handler.datasetPath)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links := []respond.Link{respond.SelfLink(request, http.MethodPut)}
	respond.Resource(writer, http.StatusOK, summary, links)
}

func (handler *Handler) seedAuthData(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.SeedAuthData(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links := []respond.Link{respond.SelfLink(request, http.MethodPost)}
	respond.Resource(writer, http.StatusOK, summary, links)
}
