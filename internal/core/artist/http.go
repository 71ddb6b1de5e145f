package artist

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
	pageList   = "artists/list"
	pageSearch = "artists/search"
	pageDetail = "artists/detail"
	pageForm   = "artists/form"
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

// RegisterRoutes mounts the artist pages; the router is expected under /artists.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.NotFound(handler.renderer.NotFound)

	router.Get("/", handler.listArtists)
	router.Post("/search", handler.searchArtists)

	router.Get("/create", handler.createForm)
	router.Post("/create", handler.createArtist)

	router.Get("/{id}", handler.getArtist)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateArtist)
	router.Delete("/{id}/delete", handler.deleteArtist)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.List(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageList, artists)
}

func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.ParseForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	term := form.String(FieldSearchTerm)
	if term == "" {
		render.Redirect(writer, request, "/artists")
		return
	}

	result, err := handler.service.Search(request.Context(), term)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageSearch, SearchView{
		Term:   term,
		Base:   "/artists",
		Result: result,
	})
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", "Artist")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), artistID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageDetail, detail)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, pageForm, FormView{
		Title:  "List a new artist",
		Action: "/artists/create",
		Submit: "Create artist",
		Form:   &Form{},
	})
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	body, err := requestutil.ParseForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	form := DecodeForm(body)

	if _, err := handler.service.Create(request.Context(), form); err != nil {
		if handler.renderer.FlashValidation(request, err) {
			render.Redirect(writer, request, "/artists/create")
			return
		}

		handler.renderer.Flash(request, flash.Error("An error occurred. Artist %s could not be listed.", form.Name))
		render.Redirect(writer, request, "/")
		return
	}

	handler.renderer.Flash(request, flash.Success("Artist %s was successfully listed!", form.Name))
	render.Redirect(writer, request, "/")
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", "Artist")
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	artist, err := handler.service.Get(request.Context(), artistID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageForm, FormView{
		Title:  fmt.Sprintf("Edit artist %s", artist.Name),
		Action: fmt.Sprintf("/artists/%d/edit", artistID),
		Submit: "Edit artist",
		Form:   FormFrom(artist),
	})
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", "Artist")
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
	detailURL := fmt.Sprintf("/artists/%d", artistID)

	if _, err := handler.service.Update(request.Context(), artistID, form); err != nil {
		switch {
		case handler.renderer.FlashValidation(request, err):
			render.Redirect(writer, request, detailURL+"/edit")
		case apperr.IsNotFound(err):
			handler.renderer.Error(writer, request, err)
		default:
			handler.renderer.Flash(request, flash.Error("An error occurred. Artist %s could not be updated.", form.Name))
			render.Redirect(writer, request, detailURL)
		}
		return
	}

	handler.renderer.Flash(request, flash.Success("Artist %s was successfully updated!", form.Name))
	render.Redirect(writer, request, detailURL)
}

// deleteArtist answers JSON: it is called from a script on the detail page.
func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id", "Artist")
	if err != nil {
		respond.Failure(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), artistID); err != nil {
		if !apperr.IsNotFound(err) {
			handler.renderer.Flash(request, flash.Error("An error occurred. Artist %d could not be deleted.", artistID))
		}
		respond.Failure(writer, request, err)
		return
	}

	handler.renderer.Flash(request, flash.Success("Artist %d was successfully deleted!", artistID))
	respond.Success(writer)
}
