// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/render"
)

const pageHome = "home"

// RecentVenues lists the newest venues.
type RecentVenues interface {
	Recent(ctx context.Context, limit int) ([]venue.Summary, error)
}

// RecentArtists lists the newest artists.
type RecentArtists interface {
	Recent(ctx context.Context, limit int) ([]artist.Summary, error)
}

// HomeView feeds the home page.
type HomeView struct {
	Venues  []venue.Summary
	Artists []artist.Summary
}

// HomeHandler renders the landing page.
type HomeHandler struct {
	venues   RecentVenues
	artists  RecentArtists
	renderer *render.Renderer
	limit    int
}

func NewHomeHandler(venues RecentVenues, artists RecentArtists, renderer *render.Renderer, limit int) *HomeHandler {
	return &HomeHandler{venues: venues, artists: artists, renderer: renderer, limit: limit}
}

// ServeHTTP loads the recent venues and artists concurrently.
func (handler *HomeHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	var view HomeView

	group, ctx := errgroup.WithContext(request.Context())
	group.Go(func() error {
		venues, err := handler.venues.Recent(ctx, handler.limit)
		view.Venues = venues
		return err
	})
	group.Go(func() error {
		artists, err := handler.artists.Recent(ctx, handler.limit)
		view.Artists = artists
		return err
	})

	if err := group.Wait(); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, pageHome, view)
}
