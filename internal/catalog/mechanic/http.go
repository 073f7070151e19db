package mechanic

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/constants"
	"github.com/tabletoplib/bglist/internal/platform/middleware"
	requestutil "github.com/tabletoplib/bglist/internal/platform/request"
	"github.com/tabletoplib/bglist/internal/platform/respond"
	"github.com/tabletoplib/bglist/internal/platform/sec"
)

type Handler struct {
	service *Service
	cache   func(http.Handler) http.Handler
}

func NewHandler(service *Service, cache func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, cache: cache}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.Cache(constants.ListingCacheTTL), handler.cache).
		Get("/", handler.listMechanics)
	router.With(middleware.NoStore, middleware.RequireRole(sec.RoleModerator)).
		Post("/", handler.updateMechanic)
	router.With(middleware.NoStore, middleware.RequireRole(sec.RoleAdministrator)).
		Delete("/{id}", handler.deleteMechanic)
}

func (handler *Handler) listMechanics(writer http.ResponseWriter, request *http.Request) {
	params, err := requestutil.ListingParams(request, DefaultSortColumn, SortColumns)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	mechanics, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links := []respond.Link{respond.SelfLink(request, http.MethodGet)}
	respond.Collection(writer, mechanics, links, params.PageIndex, params.PageSize, total)
}

func (handler *Handler) updateMechanic(writer http.ResponseWriter, request *http.Request) {
	var req UpdateRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.Update(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links := []respond.Link{respond.SelfLink(request, http.MethodPost)}
	respond.Resource(writer, http.StatusOK, m, links)
}

func (handler *Handler) deleteMechanic(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("The id must be an integer"))
		return
	}

	m, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links := []respond.Link{respond.SelfLink(request, http.MethodDelete)}
	respond.Resource(writer, http.StatusOK, m, links)
}
