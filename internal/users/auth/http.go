package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabletoplib/bglist/internal/platform/middleware"
	requestutil "github.com/tabletoplib/bglist/internal/platform/request"
	"github.com/tabletoplib/bglist/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.NoStore)
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var req RegisterRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links := []respond.Link{respond.SelfLink(request, http.MethodPost)}
	respond.Created(writer, user, links)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var req LoginRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The token is echoed in the Authorization header so clients can copy
	// it straight into subsequent requests.
	writer.Header().Set("Authorization", "Bearer "+result.Token)

	links := []respond.Link{respond.SelfLink(request, http.MethodPost)}
	respond.Resource(writer, http.StatusOK, result, links)
}
