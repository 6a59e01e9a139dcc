// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/core/chapter"
	"github.com/taibuivan/inkwell/internal/platform/ctxutil"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

func serve(router http.Handler, method, target, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_ChapterFlow publishes, reads and navigates chapters over HTTP.
*/
func TestHandler_ChapterFlow(t *testing.T) {
	router := chi.NewRouter()
	chapter.NewHandler(newService(newFakeRepository())).RegisterRoutes(router)

	fox := &sec.AuthClaims{UserID: inkFox.UserID}
	payload := fmt.Sprintf(`{"chapterName":"Ch1","content":%q}`, body(60))

	recorder := serve(router, http.MethodPost, "/author/book/chapter/10", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var ids []int64
	for i := 0; i < 2; i++ {
		recorder = serve(router, http.MethodPost, "/author/book/chapter/10", payload, fox)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var created chapter.Chapter
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
		ids = append(ids, created.ID)
	}

	recorder = serve(router, http.MethodGet, "/chapters", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = serve(router, http.MethodGet, "/chapters?bookId=10&pageSize=1", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `2`, string(mustField(t, recorder, "total")))

	recorder = serve(router, http.MethodGet, fmt.Sprintf("/front/book/next_chapter_id/%d", ids[0]), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, fmt.Sprint(ids[1]), recorder.Body.String())

	recorder = serve(router, http.MethodGet, fmt.Sprintf("/front/book/pre_chapter_id/%d", ids[0]), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `null`, recorder.Body.String())

	recorder = serve(router, http.MethodGet, fmt.Sprintf("/front/book/content/%d", ids[1]), "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, fmt.Sprintf("%q", body(60)), string(mustField(t, recorder, "bookContent")))

	recorder = serve(router, http.MethodGet, "/front/book/content/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = serve(router, http.MethodDelete, fmt.Sprintf("/author/book/chapter/%d", ids[1]), "", fox)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = serve(router, http.MethodGet, fmt.Sprintf("/front/book/content/%d", ids[1]), "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func mustField(t *testing.T, recorder *httptest.ResponseRecorder, name string) json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fields))
	require.Contains(t, fields, name)
	return fields[name]
}
