// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and the common body decoding
patterns behind helpers that already speak [apperr].
*/
package requestutil

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/sec"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/convert"
)

// maxBodyBytes caps JSON bodies; chapter texts are the largest payloads.
const maxBodyBytes = 4 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (used to cap the body size)
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON.WithCause(err)
	}
	return nil
}

// IsForm reports whether the request body is URL-encoded form data.
func IsForm(request *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

/*
ParseForm reads a URL-encoded body into request.PostForm under the same size
cap as [DecodeJSON].

Returns:
  - error: apperr.ValidationError if the body is not a valid form
*/
func ParseForm(writer http.ResponseWriter, request *http.Request) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := request.ParseForm(); err != nil {
		return apperr.ValidationError("Invalid form payload").WithCause(err)
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64Param parses a named URL parameter as an id.

Returns:
  - int64: the parsed id
  - error: apperr.ValidationError if the parameter is missing or not a number
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	id, ok := convert.ToInt64(chi.URLParam(request, name))
	if !ok {
		return 0, validate.RequiredError(name, "Must be a numeric id")
	}
	return id, nil
}

/*
Int64Query parses a required numeric query parameter such as bookId.
*/
func Int64Query(request *http.Request, name string) (int64, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return 0, apperr.ValidationError(name+" is required", apperr.FieldError{
			Field:   name,
			Message: "This field is required",
		})
	}

	id, ok := convert.ToInt64(raw)
	if !ok {
		return 0, validate.RequiredError(name, "Must be a numeric id")
	}
	return id, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the identity subject of the current user.
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
