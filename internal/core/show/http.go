package show

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
)

const (
	pageList = "shows/list"
	pageForm = "shows/form"
)

type Handler struct {
	service  *Service
	renderer *render.Renderer
}

func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// RegisterRoutes mounts the show pages under /shows.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.NotFound(handler.renderer.NotFound)

	router.Get("/", handler.listShows)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.createShow)
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	shows, err := handler.service.List(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageList, shows)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, pageForm, handler.service.BlankForm())
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	body, err := requestutil.ParseForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if _, err := handler.service.Create(request.Context(), DecodeForm(body)); err != nil {
		if handler.renderer.FlashValidation(request, err) {
			render.Redirect(writer, request, "/shows/create")
			return
		}

		handler.renderer.Flash(request, flash.Error("An error occurred. Show could not be listed."))
		render.Redirect(writer, request, "/")
		return
	}

	handler.renderer.Flash(request, flash.Success("Show was successfully listed!"))
	render.Redirect(writer, request, "/")
}
