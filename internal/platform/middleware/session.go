// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/sec"
	"github.com/taibuivan/fyyur/pkg/uuidv7"
)

// # Sessions

// Session ensures every visitor carries an anonymous session id.
//
// The id is a UUIDv7 in an HttpOnly cookie; it keys flash messages and binds
// CSRF tokens. A missing or malformed cookie is replaced.
func Session(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			sessionID := ""
			if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && uuidv7.Valid(cookie.Value) {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				sessionID = uuidv7.New()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(constants.SessionCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithSessionID(request.Context(), sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # CSRF Protection

// CSRF rejects state-changing requests without a valid token and issues a
// fresh token for pages rendered by safe requests.
//
// The token is read from the X-CSRF-Token header first, then from the
// csrf_token form field. It must run after [Session].
func CSRF(csrf *sec.CSRFService, onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			sessionID := ctxutil.GetSessionID(request.Context())

			if !isSafeMethod(request.Method) {
				token := request.Header.Get(constants.HeaderXCSRFToken)
				if token == "" {
					token = request.PostFormValue(constants.CSRFFormField)
				}

				if err := csrf.Verify(token, sessionID); err != nil {
					ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "csrf_rejected",
						slog.String("reason", err.Error()),
					)
					onError(writer, request, apperr.BadRequest("The form has expired or is invalid. Please reload the page and try again."))
					return
				}
			}

			token, err := csrf.Issue(sessionID)
			if err != nil {
				onError(writer, request, apperr.Internal(err))
				return
			}

			ctx := ctxutil.WithCSRFToken(request.Context(), token)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
