// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render turns handler view models into HTML pages.

Templates are embedded in the binary and parsed once at startup. Each page is
parsed together with the shared layout and partials, so a page only defines its
"title" and "content" blocks.

Every page receives a [View]: the pending flash messages (popped from the
session's [flash.Store]), the CSRF token for its forms, and the handler's data.
*/
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/pkg/pointer"
	"github.com/taibuivan/fyyur/pkg/slice"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsGlob = "templates/partials/*.html"
)

// Error page names.
const (
	PageBadRequest = "errors/400"
	PageNotFound   = "errors/404"
	PageInternal   = "errors/500"
)

// View is the root value passed to every template.
type View struct {
	Flashes   []flash.Message
	CSRFToken string
	Data      any
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages   map[string]*template.Template
	flashes flash.Store
}

/*
New parses every embedded page.

Parameters:
  - flashes: flash.Store (popped on every rendered page)
  - funcs: template.FuncMap (application helpers merged over the built-ins)

Returns:
  - *Renderer: Ready to serve pages
  - error: Template parse errors
*/
func New(flashes flash.Store, funcs template.FuncMap) (*Renderer, error) {
	merged := builtinFuncs()
	for name, fn := range funcs {
		merged[name] = fn
	}

	pages := make(map[string]*template.Template)
	err := fs.WalkDir(templateFS, "templates", func(file string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || file == layoutFile || strings.HasPrefix(file, "templates/partials/") {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), path.Ext(file))
		page, err := template.New(path.Base(layoutFile)).Funcs(merged).ParseFS(templateFS, layoutFile, partialsGlob, file)
		if err != nil {
			return fmt.Errorf("render: parse %s: %w", name, err)
		}

		pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	renderer := &Renderer{pages: pages, flashes: flashes}
	for _, required := range []string{PageBadRequest, PageNotFound, PageInternal} {
		if !renderer.Has(required) {
			return nil, fmt.Errorf("render: missing error page %s", required)
		}
	}

	return renderer, nil
}

// Has reports whether a page with the given name exists.
func (renderer *Renderer) Has(name string) bool {
	_, ok := renderer.pages[name]
	return ok
}

/*
Page renders the named page with status.

The page is executed into a buffer first, so a template failure still produces
a clean 500 instead of a half-written document.
*/
func (renderer *Renderer) Page(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	page, ok := renderer.pages[name]
	if !ok {
		logger.ErrorContext(ctx, "render_unknown_page", slog.String("page", name))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := View{
		CSRFToken: ctxutil.GetCSRFToken(ctx),
		Data:      data,
	}

	if sessionID := ctxutil.GetSessionID(ctx); sessionID != "" {
		messages, err := renderer.flashes.Pop(ctx, sessionID)
		if err != nil {
			logger.WarnContext(ctx, "flash_pop_failed", slog.String("error", err.Error()))
		}
		view.Flashes = messages
	}

	var buffer bytes.Buffer
	if err := page.ExecuteTemplate(&buffer, "layout", view); err != nil {
		logger.ErrorContext(ctx, "render_failed", slog.String("page", name), slog.String("error", err.Error()))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

/*
Error renders the error page matching err.

NotFound maps to the 404 page, 5xx and unknown errors to the 500 page, and any
other client error to the 400 page with its message.
*/
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	switch {
	case appError.HTTPStatus >= http.StatusInternalServerError:
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "web_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
		renderer.Page(writer, request, appError.HTTPStatus, PageInternal, nil)
	case appError.HTTPStatus == http.StatusNotFound:
		renderer.Page(writer, request, http.StatusNotFound, PageNotFound, appError.Message)
	default:
		renderer.Page(writer, request, appError.HTTPStatus, PageBadRequest, appError.Message)
	}
}

// NotFound renders the 404 page. It has the http.HandlerFunc signature for
// use as the router's fallback.
func (renderer *Renderer) NotFound(writer http.ResponseWriter, request *http.Request) {
	renderer.Error(writer, request, apperr.NotFound("Page"))
}

// Flash queues messages for the next page rendered in this session.
// A storage failure is logged, never surfaced: the redirect still happens.
func (renderer *Renderer) Flash(request *http.Request, messages ...flash.Message) {
	ctx := request.Context()
	sessionID := ctxutil.GetSessionID(ctx)
	if sessionID == "" {
		return
	}

	if err := renderer.flashes.Push(ctx, sessionID, messages...); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "flash_push_failed", slog.String("error", err.Error()))
	}
}

/*
FlashValidation flashes each field failure of a validation error as
"field: message".

Returns:
  - bool: true when err was a user-facing validation error and has been flashed
*/
func (renderer *Renderer) FlashValidation(request *http.Request, err error) bool {
	if !apperr.IsUserFacing(err) {
		return false
	}

	appError := apperr.As(err)
	if len(appError.Details) == 0 {
		renderer.Flash(request, flash.Error("%s", appError.Message))
		return true
	}

	renderer.Flash(request, slice.Map(appError.Details, func(detail apperr.FieldError) flash.Message {
		return flash.Error("%s", detail.String())
	})...)
	return true
}

// Redirect sends a 303 See Other, so the browser follows up with a GET.
func Redirect(writer http.ResponseWriter, request *http.Request, url string) {
	http.Redirect(writer, request, url, http.StatusSeeOther)
}

// # Template Helpers

// Date formats accepted by the "datetime" helper.
const (
	formatFull   = "Monday January 2, 2006 at 3:04PM"
	formatMedium = "Mon 01/02/2006 3:04PM"
)

func builtinFuncs() template.FuncMap {
	return template.FuncMap{
		"datetime": formatDateTime,
		"deref":    pointer.Val[string],
		"join":     strings.Join,
		"contains": func(list []string, value string) bool {
			for _, candidate := range list {
				if candidate == value {
					return true
				}
			}
			return false
		},
		// Placeholders so pages parse without application choices.
		"states": func() []string { return nil },
		"genres": func() []string { return nil },
	}
}

func formatDateTime(value time.Time, format string) string {
	switch format {
	case "full":
		return value.Format(formatFull)
	case "medium":
		return value.Format(formatMedium)
	default:
		return value.Format(format)
	}
}
