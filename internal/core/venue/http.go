package venue

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
)

// Page names rendered by this package.
const (
	pageList   = "venues/list"
	pageSearch = "venues/search"
	pageDetail = "venues/detail"
	pageForm   = "venues/form"
)

// FormView feeds the create and edit templates.
type FormView struct {
	Title  string
	Action string
	Submit string
	Form   *Form
}

// SearchView feeds the search results template.
type SearchView struct {
	Term   string
	Base   string
	Result *SearchResult
}

type Handler struct {
	service  *Service
	renderer *render.Renderer
}

func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// RegisterRoutes mounts the venue pages; the router is expected under /venues.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.NotFound(handler.renderer.NotFound)

	router.Get("/", handler.listVenues)
	router.Post("/search", handler.searchVenues)

	router.Get("/create", handler.createForm)
	router.Post("/create", handler.createVenue)

	router.Get("/{id}", handler.getVenue)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateVenue)
	router.Delete("/{id}/delete", handler.deleteVenue)
}

func (handler *Handler) listVenues(writer http.ResponseWriter, request *http.Request) {
	areas, err := handler.service.ListAreas(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageList, areas)
}

func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.ParseForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	term := form.String(FieldSearchTerm)
	if term == "" {
		render.Redirect(writer, request, "/venues")
		return
	}

	result, err := handler.service.Search(request.Context(), term)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageSearch, SearchView{
		Term:   term,
		Base:   "/venues",
		Result: result,
	})
}

func (handler *Handler) getVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", "Venue")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), venueID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageDetail, detail)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, pageForm, FormView{
		Title:  "List a new venue",
		Action: "/venues/create",
		Submit: "Create venue",
		Form:   &Form{},
	})
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	body, err := requestutil.ParseForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	form := DecodeForm(body)

	if _, err := handler.service.Create(request.Context(), form); err != nil {
		if handler.renderer.FlashValidation(request, err) {
			render.Redirect(writer, request, "/venues/create")
			return
		}

		handler.renderer.Flash(request, flash.Error("An error occurred. Venue %s could not be listed.", form.Name))
		render.Redirect(writer, request, "/")
		return
	}

	handler.renderer.Flash(request, flash.Success("Venue %s was successfully listed!", form.Name))
	render.Redirect(writer, request, "/")
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", "Venue")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	venue, err := handler.service.Get(request.Context(), venueID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageForm, FormView{
		Title:  fmt.Sprintf("Edit venue %s", venue.Name),
		Action: fmt.Sprintf("/venues/%d/edit", venueID),
		Submit: "Edit venue",
		Form:   FormFrom(venue),
	})
}

func (handler *Handler) updateVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", "Venue")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	body, err := requestutil.ParseForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	form := DecodeForm(body)
	detailURL := fmt.Sprintf("/venues/%d", venueID)

	if _, err := handler.service.Update(request.Context(), venueID, form); err != nil {
		switch {
		case handler.renderer.FlashValidation(request, err):
			render.Redirect(writer, request, detailURL+"/edit")
		case apperr.IsNotFound(err):
			handler.renderer.Error(writer, request, err)
		default:
			handler.renderer.Flash(request, flash.Error("An error occurred. Venue %s could not be updated.", form.Name))
			render.Redirect(writer, request, detailURL)
		}
		return
	}

	handler.renderer.Flash(request, flash.Success("Venue %s was successfully updated!", form.Name))
	render.Redirect(writer, request, detailURL)
}

// deleteVenue answers JSON: it is called from a script on the detail page.
func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.IntID(request, "id", "Venue")
	if err != nil {
		respond.Failure(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), venueID); err != nil {
		if !apperr.IsNotFound(err) {
			handler.renderer.Flash(request, flash.Error("An error occurred. Venue %d could not be deleted.", venueID))
		}
		respond.Failure(writer, request, err)
		return
	}

	handler.renderer.Flash(request, flash.Success("Venue %d was successfully deleted!", venueID))
	respond.Success(writer)
}
