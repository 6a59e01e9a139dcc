// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/api"
	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/config"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/internal/platform/sec"
)

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, apperr.Unauthorized("Invalid token")
	}
	return &sec.AuthClaims{UserID: "user_fox"}, nil
}

// whoami echoes the verified subject.
type whoami struct{}

func (whoami) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Get("/whoami", func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]string{"userId": middleware.GetUser(request.Context()).UserID})
	})
}

func newServer(t *testing.T, dependencies api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	liveness, readiness := api.NewHealthHandlers(dependencies, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	return api.NewServer(ctx, cfg, logger, fakeVerifier{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Domain:    []api.RouteRegistrar{whoami{}},
	}).Handler()
}

/*
TestServer_Probes reports liveness always and readiness per dependency.
*/
func TestServer_Probes(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name   string
		deps   api.HealthDependencies
		status int
		state  string
	}{
		{"all_up", api.HealthDependencies{Database: healthy, Guards: healthy}, http.StatusOK, "ready"},
		{"redis_down", api.HealthDependencies{Database: healthy, Guards: broken}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.deps)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, recorder.Code)

			recorder = httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.status, recorder.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.state, body[constants.FieldStatus])
			assert.Len(t, body[constants.FieldChecks], 2)
		})
	}
}

/*
TestServer_APIMount serves domain routes under /api behind identity verification.
*/
func TestServer_APIMount(t *testing.T) {
	server := newServer(t, api.HealthDependencies{})

	tests := []struct {
		name   string
		target string
		token  string
		status int
	}{
		{"signed_in", "/api/whoami", "good", http.StatusOK},
		{"anonymous", "/api/whoami", "", http.StatusUnauthorized},
		{"bad_token", "/api/whoami", "forged", http.StatusUnauthorized},
		{"outside_prefix", "/whoami", "good", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.token != "" {
				request.Header.Set(constants.HeaderAuthorization, "Bearer "+tt.token)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}
}
