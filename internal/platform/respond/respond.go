// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides JSON response helpers.
//
// # Architecture
//
// Pages are rendered by the render package. JSON is reserved for the endpoints
// called from scripts: listing deletion and the health checks. Those share the
// small envelopes defined here.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
)

// ResultEnvelope is the body returned by delete endpoints.
type ResultEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Success writes {"success": true} with 200 OK.
func Success(writer http.ResponseWriter) {
	JSON(writer, http.StatusOK, ResultEnvelope{Success: true})
}

// Failure converts err into {"success": false, ...} with the mapped status code.
// Unexpected errors are logged and hidden behind a generic message.
func Failure(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ResultEnvelope{
		Error: appError.Message,
		Code:  appError.Code,
	})
}
