// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/internal/core/feedback"
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
TestHandler_Access gates submission on sign-in and the list on the admin role.
*/
func TestHandler_Access(t *testing.T) {
	router := chi.NewRouter()
	feedback.NewHandler(newService(&fakeRepository{}, nil)).RegisterRoutes(router)

	reader := &sec.AuthClaims{UserID: "user_fox"}
	admin := &sec.AuthClaims{UserID: "user_admin", Role: string(sec.RoleAdmin)}

	tests := []struct {
		name   string
		method string
		target string
		body   string
		claims *sec.AuthClaims
		status int
	}{
		{"anonymous_submit", http.MethodPost, "/front/user/feedback", `{"content":"Hi"}`, nil, http.StatusUnauthorized},
		{"reader_submit", http.MethodPost, "/front/user/feedback", `{"content":"Hi"}`, reader, http.StatusCreated},
		{"reader_empty", http.MethodPost, "/front/user/feedback", `{"content":""}`, reader, http.StatusBadRequest},
		{"anonymous_list", http.MethodGet, "/admin/feedback", "", nil, http.StatusUnauthorized},
		{"reader_list", http.MethodGet, "/admin/feedback", "", reader, http.StatusForbidden},
		{"admin_list", http.MethodGet, "/admin/feedback?pageNum=1&pageSize=5", "", admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.target, tt.body, tt.claims)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
