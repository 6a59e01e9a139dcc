// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

func withURLParam(request *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
}

/*
TestInt64Param accepts numeric ids and rejects the rest with 400.
*/
func TestInt64Param(t *testing.T) {
	request := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "chapterId", "42")
	id, err := requestutil.Int64Param(request, "chapterId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	request = withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "chapterId", "abc")
	_, err = requestutil.Int64Param(request, "chapterId")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestInt64Query reports a missing bookId as a validation error.
*/
func TestInt64Query(t *testing.T) {
	_, err := requestutil.Int64Query(httptest.NewRequest(http.MethodGet, "/chapters", nil), "bookId")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	id, err := requestutil.Int64Query(httptest.NewRequest(http.MethodGet, "/chapters?bookId=9", nil), "bookId")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

/*
TestParseForm reads URL-encoded bodies and rejects malformed ones.
*/
func TestParseForm(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		isForm      bool
	}{
		{"form", "application/x-www-form-urlencoded", true},
		{"form_with_charset", "application/x-www-form-urlencoded; charset=UTF-8", true},
		{"json", "application/json", false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPut, "/", nil)
			if tt.contentType != "" {
				request.Header.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.isForm, requestutil.IsForm(request))
		})
	}

	request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("commentContent=Loved+it%21"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, requestutil.ParseForm(httptest.NewRecorder(), request))
	assert.Equal(t, "Loved it!", request.PostForm.Get("commentContent"))

	request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("commentContent=%zz"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	err := requestutil.ParseForm(httptest.NewRecorder(), request)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestDecodeJSON maps malformed bodies to a validation error.
*/
func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ch4"}`))
	require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))
	assert.Equal(t, "Ch4", target.Name)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := requestutil.DecodeJSON(httptest.NewRecorder(), request, &target)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestRequiredUserID distinguishes anonymous and signed-in requests.
*/
func TestRequiredUserID(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.RequiredUserID(request)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "user_1"})
	userID, err := requestutil.RequiredUserID(request.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, "user_1", userID)
}
