// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and HTML form decoding,
so handlers deal with trimmed, normalized values instead of raw url.Values.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

/*
IntID parses a positive integer URL parameter. Ids are SERIAL columns, so
anything beyond the int4 range cannot name a row.

Returns:
  - int64: The parsed id
  - error: apperr.NotFound(resource) when the parameter is missing, malformed or out of range
*/
func IntID(request *http.Request, name, resource string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, name), 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(resource)
	}
	return id, nil
}

// Form is a parsed urlencoded or multipart body.
type Form struct {
	request *http.Request
}

/*
ParseForm parses the request body as an HTML form.

Returns:
  - *Form: Accessors over the parsed values
  - error: apperr.BadRequest if the body is not a valid form
*/
func ParseForm(request *http.Request) (*Form, error) {
	if err := request.ParseForm(); err != nil {
		return nil, apperr.BadRequest("Malformed form body")
	}
	return &Form{request: request}, nil
}

// String returns the first value for key, trimmed and NFC-normalized.
func (form *Form) String(key string) string {
	return clean(form.request.PostForm.Get(key))
}

// Strings returns every non-blank value for key, in submission order.
func (form *Form) Strings(key string) []string {
	raw := form.request.PostForm[key]
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		if cleaned := clean(value); cleaned != "" {
			values = append(values, cleaned)
		}
	}
	return values
}

// Bool applies checkbox semantics: a present field is true unless its value
// is empty or "false" (case-insensitive). "n" and "no" from some clients also
// count as false.
func (form *Form) Bool(key string) bool {
	values, ok := form.request.PostForm[key]
	if !ok || len(values) == 0 {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(values[0])) {
	case "", "false", "n", "no", "off":
		return false
	default:
		return true
	}
}

// clean trims whitespace and composes Unicode so "é" typed two ways matches in search.
func clean(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
