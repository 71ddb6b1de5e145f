// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
)

const sessionID = "0192f0c4-7a31-7c3e-9d5e-1b2a3c4d5e6f"

func newRenderer(t *testing.T) (*render.Renderer, *flash.MemoryStore) {
	t.Helper()
	store := flash.NewMemoryStore(time.Minute)
	renderer, err := render.New(store, nil)
	require.NoError(t, err)
	return renderer, store
}

func sessionRequest(method, target string) *http.Request {
	request := httptest.NewRequest(method, target, nil)
	ctx := ctxutil.WithSessionID(request.Context(), sessionID)
	ctx = ctxutil.WithCSRFToken(ctx, "token-123")
	return request.WithContext(ctx)
}

/*
TestNew_ParsesEveryPage verifies that every embedded page is available.
*/
func TestNew_ParsesEveryPage(t *testing.T) {
	renderer, _ := newRenderer(t)

	for _, name := range []string{
		"home",
		"venues/list", "venues/search", "venues/detail", "venues/form",
		"artists/list", "artists/search", "artists/detail", "artists/form",
		"shows/list", "shows/form",
		render.PageBadRequest, render.PageNotFound, render.PageInternal,
	} {
		assert.True(t, renderer.Has(name), name)
	}
	assert.False(t, renderer.Has("layout"))
}

/*
TestPage_FlashShownOnce verifies that pending flashes are rendered and consumed.
*/
func TestPage_FlashShownOnce(t *testing.T) {
	renderer, store := newRenderer(t)
	require.NoError(t, store.Push(context.Background(), sessionID, flash.Success("Venue %s was successfully listed!", "The Musical Hop")))

	recorder := httptest.NewRecorder()
	renderer.Page(recorder, sessionRequest(http.MethodGet, "/"), http.StatusOK, "shows/list", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), "Venue The Musical Hop was successfully listed!")
	assert.Contains(t, recorder.Body.String(), `content="token-123"`)

	recorder = httptest.NewRecorder()
	renderer.Page(recorder, sessionRequest(http.MethodGet, "/"), http.StatusOK, "shows/list", nil)
	assert.NotContains(t, recorder.Body.String(), "successfully listed")
}

/*
TestError_StatusMapping tests error page selection.
*/
func TestError_StatusMapping(t *testing.T) {
	renderer, _ := newRenderer(t)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not_found", apperr.NotFound("Venue"), http.StatusNotFound, "Venue not found"},
		{"bad_request", apperr.BadRequest("The form has expired"), http.StatusBadRequest, "The form has expired"},
		{"internal", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			renderer.Error(recorder, sessionRequest(http.MethodGet, "/venues/9"), tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.body)
			assert.NotContains(t, recorder.Body.String(), "relation does not exist")
		})
	}
}

/*
TestFlashValidation verifies that each field failure becomes one message.
*/
func TestFlashValidation(t *testing.T) {
	renderer, store := newRenderer(t)
	request := sessionRequest(http.MethodPost, "/venues/create")

	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "phone", Message: "Invalid phone number."},
		apperr.FieldError{Field: "genres", Message: "This field is required."},
	)
	assert.True(t, renderer.FlashValidation(request, err))
	assert.False(t, renderer.FlashValidation(request, apperr.Internal(errors.New("down"))))

	messages, popErr := store.Pop(context.Background(), sessionID)
	require.NoError(t, popErr)
	assert.Equal(t, []flash.Message{
		{Level: flash.LevelError, Text: "phone: Invalid phone number."},
		{Level: flash.LevelError, Text: "genres: This field is required."},
	}, messages)
}

/*
TestRedirect verifies the See Other status.
*/
func TestRedirect(t *testing.T) {
	recorder := httptest.NewRecorder()
	render.Redirect(recorder, httptest.NewRequest(http.MethodPost, "/venues/create", nil), "/")

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
}

/*
TestDateTime verifies the helpers through a rendered show list.
*/
func TestDateTime(t *testing.T) {
	renderer, _ := newRenderer(t)

	type show struct {
		VenueID, ArtistID     int64
		VenueName, ArtistName string
		ArtistImageLink       *string
		StartTime             time.Time
	}
	shows := []show{{
		VenueID: 1, ArtistID: 4, VenueName: "The Musical Hop", ArtistName: "Guns N Petals",
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	}}

	recorder := httptest.NewRecorder()
	renderer.Page(recorder, sessionRequest(http.MethodGet, "/shows"), http.StatusOK, "shows/list", shows)

	assert.Contains(t, recorder.Body.String(), "Sunday April 1, 2035 at 8:00PM")
}
