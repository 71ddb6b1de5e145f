package venue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
)

const testSession = "0192f0c4-7a31-7c3e-9d5e-1b2a3c4d5e6f"

type harness struct {
	repo    *MockRepository
	flashes *flash.MemoryStore
	router  chi.Router
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	repo := new(MockRepository)
	flashes := flash.NewMemoryStore(time.Minute)
	renderer, err := render.New(flashes, nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := ctxutil.WithSessionID(request.Context(), testSession)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	})
	router.Route("/venues", NewHandler(newTestService(repo), renderer).RegisterRoutes)

	return &harness{repo: repo, flashes: flashes, router: router}
}

func (h *harness) do(request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, request)
	return recorder
}

func (h *harness) popFlashes(t *testing.T) []flash.Message {
	t.Helper()
	messages, err := h.flashes.Pop(context.Background(), testSession)
	require.NoError(t, err)
	return messages
}

func postForm(target string, values url.Values) *http.Request {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func venueValues() url.Values {
	return url.Values{
		"name":           {"The Musical Hop"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"phone":          {"123-123-1234"},
		"genres":         {"Jazz", "Reggae"},
		"facebook_link":  {"https://www.facebook.com/TheMusicalHop"},
		"seeking_talent": {"y"},
	}
}

/*
TestHandler_Create_Success verifies the redirect home with a success flash.
*/
func TestHandler_Create_Success(t *testing.T) {
	h := newHarness(t)
	h.repo.On("Create", mock.Anything, mock.MatchedBy(func(venue *Venue) bool {
		return venue.SeekingTalent && venue.Website == nil
	})).Return(nil)

	recorder := h.do(postForm("/venues/create", venueValues()))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
	assert.Equal(t, []flash.Message{flash.Success("Venue The Musical Hop was successfully listed!")}, h.popFlashes(t))
}

/*
TestHandler_Create_Invalid verifies that validation failures are flashed per field.
*/
func TestHandler_Create_Invalid(t *testing.T) {
	h := newHarness(t)
	values := venueValues()
	values.Del("name")
	values.Set("phone", "555 CALL NOW")

	recorder := h.do(postForm("/venues/create", values))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/venues/create", recorder.Header().Get("Location"))
	assert.Equal(t, []flash.Message{
		flash.Error("name: This field is required."),
		flash.Error("phone: Invalid phone number."),
	}, h.popFlashes(t))
	h.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

/*
TestHandler_Create_StoreFailure verifies the generic failure flash.
*/
func TestHandler_Create_StoreFailure(t *testing.T) {
	h := newHarness(t)
	h.repo.On("Create", mock.Anything, mock.Anything).Return(apperr.Internal(errors.New("connection refused")))

	recorder := h.do(postForm("/venues/create", venueValues()))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, []flash.Message{flash.Error("An error occurred. Venue The Musical Hop could not be listed.")}, h.popFlashes(t))
}

/*
TestHandler_Search covers the redirect on a blank term and the results page.
*/
func TestHandler_Search(t *testing.T) {
	h := newHarness(t)
	h.repo.On("Search", mock.Anything, "hop", fixedNow).Return([]Summary{{ID: 1, Name: "The Musical Hop"}}, nil)

	recorder := h.do(postForm("/venues/search", url.Values{"search_term": {"   "}}))
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/venues", recorder.Header().Get("Location"))

	recorder = h.do(postForm("/venues/search", url.Values{"search_term": {"hop"}}))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `Number of search results for "hop": 1`)
	assert.Contains(t, recorder.Body.String(), `href="/venues/1"`)
}

/*
TestHandler_Detail covers the found, unknown and malformed id cases.
*/
func TestHandler_Detail(t *testing.T) {
	h := newHarness(t)
	h.repo.On("Get", mock.Anything, int64(1)).Return(&Venue{
		ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"},
	}, nil)
	h.repo.On("Shows", mock.Anything, int64(1)).Return([]ShowEntry{
		{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: fixedNow.AddDate(0, 0, 1)},
	}, nil)
	h.repo.On("Get", mock.Anything, int64(42)).Return(nil, apperr.NotFound("Venue"))

	recorder := h.do(httptest.NewRequest(http.MethodGet, "/venues/1", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "1 Upcoming Show")
	assert.Contains(t, recorder.Body.String(), "Guns N Petals")

	recorder = h.do(httptest.NewRequest(http.MethodGet, "/venues/42", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = h.do(httptest.NewRequest(http.MethodGet, "/venues/abc", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = h.do(httptest.NewRequest(http.MethodGet, "/venues/3000000000", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_Edit verifies the pre-populated form and the update redirect.
*/
func TestHandler_Edit(t *testing.T) {
	h := newHarness(t)
	h.repo.On("Get", mock.Anything, int64(1)).Return(&Venue{
		ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Phone: "123-123-1234", Genres: []string{"Jazz"},
	}, nil)
	h.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	recorder := h.do(httptest.NewRequest(http.MethodGet, "/venues/1/edit", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `value="1015 Folsom Street"`)

	recorder = h.do(postForm("/venues/1/edit", venueValues()))
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/venues/1", recorder.Header().Get("Location"))
	assert.Equal(t, []flash.Message{flash.Success("Venue The Musical Hop was successfully updated!")}, h.popFlashes(t))
}

/*
TestHandler_Delete verifies the JSON answers.
*/
func TestHandler_Delete(t *testing.T) {
	h := newHarness(t)
	h.repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	h.repo.On("Delete", mock.Anything, int64(2)).Return(apperr.NotFound("Venue"))

	recorder := h.do(httptest.NewRequest(http.MethodDelete, "/venues/1/delete", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success": true}`, recorder.Body.String())
	assert.Equal(t, []flash.Message{flash.Success("Venue 1 was successfully deleted!")}, h.popFlashes(t))

	recorder = h.do(httptest.NewRequest(http.MethodDelete, "/venues/2/delete", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
