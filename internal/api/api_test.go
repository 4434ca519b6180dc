// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/uibutton/internal/api"
	"github.com/taibuivan/uibutton/internal/core/button"
	"github.com/taibuivan/uibutton/internal/core/contract"
	"github.com/taibuivan/uibutton/internal/core/props"
	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/config"
	"github.com/taibuivan/uibutton/internal/platform/middleware"
	"github.com/taibuivan/uibutton/internal/platform/sec"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// editorVerifier accepts the token "editor".
type editorVerifier struct{}

func (editorVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "editor" {
		return nil, errors.New("unknown token")
	}
	return &sec.AuthClaims{UserID: "u-1", Username: "editor", Role: string(sec.RoleEditor)}, nil
}

func newServer(t *testing.T, checks ...api.DependencyCheck) http.Handler {
	t.Helper()

	publisher := shared.NewLogPublisher(discard)
	buttonService := button.NewService(button.NewCreateButtonUseCase(button.NewAccessibilityValidator()), publisher)
	contractService := contract.NewService(
		contract.NewMemoryRepository(shared.SystemClock),
		contract.NewCreateContractUseCase(contract.NewStandardFactory(shared.SystemClock)),
		publisher,
		contract.NewContractValidator(),
	)

	liveness, readiness := api.NewHealthHandlers(checks, discard)
	cfg := &config.Config{ServerPort: "0", Environment: "test", StorageDriver: config.StorageMemory}

	server := api.NewServer(testContext(t), cfg, discard, editorVerifier{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Button:    button.NewHandler(buttonService),
		Contract:  contract.NewHandler(contractService, middleware.RequireRole(sec.RoleEditor)),
		Props:     props.NewHandler(),
	})
	return server.Handler()
}

func call(handler http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHealth reports liveness and per-dependency readiness.
*/
func TestHealth(t *testing.T) {
	healthy := api.DependencyCheck{Name: "postgres", Ping: func(context.Context) error { return nil }}
	broken := api.DependencyCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name   string
		checks []api.DependencyCheck
		status int
		want   string
	}{
		{
			name:   "no_dependencies",
			status: http.StatusOK,
			want:   `{"data": {"status": "ready", "checks": []}}`,
		},
		{
			name:   "all_healthy",
			checks: []api.DependencyCheck{healthy},
			status: http.StatusOK,
			want:   `{"data": {"status": "ready", "checks": [{"name": "postgres", "ok": true}]}}`,
		},
		{
			name:   "degraded",
			checks: []api.DependencyCheck{healthy, broken},
			status: http.StatusServiceUnavailable,
			want: `{"data": {"status": "degraded", "checks": [
				{"name": "postgres", "ok": true},
				{"name": "redis", "ok": false, "error": "connection refused"}
			]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.checks...)

			live := call(server, http.MethodGet, "/health", "", "")
			assert.Equal(t, http.StatusOK, live.Code)
			jsonassert.New(t).Assertf(live.Body.String(), `{"data": {"status": "ok"}}`)

			ready := call(server, http.MethodGet, "/ready", "", "")
			assert.Equal(t, tt.status, ready.Code)
			jsonassert.New(t).Assertf(ready.Body.String(), "%s", tt.want)
		})
	}
}

/*
TestServer_Routes mounts every handler under /api/v1.
*/
func TestServer_Routes(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		body   string
		status int
	}{
		{"button_create", http.MethodPost, "/api/v1/buttons", "", `{"button_type":"button"}`, http.StatusCreated},
		{"button_validators", http.MethodGet, "/api/v1/buttons/validators", "", "", http.StatusOK},
		{"props_resolve", http.MethodPost, "/api/v1/props/resolve", "", `{}`, http.StatusOK},
		{"contracts_list", http.MethodGet, "/api/v1/contracts", "", "", http.StatusOK},
		{"contracts_anonymous_write", http.MethodPost, "/api/v1/contracts/standard", "", `{"name":"a"}`, http.StatusUnauthorized},
		{"contracts_bad_token", http.MethodPost, "/api/v1/contracts/standard", "forged", `{"name":"a"}`, http.StatusUnauthorized},
		{"contracts_editor_write", http.MethodPost, "/api/v1/contracts/standard", "editor", `{"name":"a"}`, http.StatusCreated},
		{"unknown_route", http.MethodGet, "/api/v1/themes", "", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := call(server, tt.method, tt.target, tt.token, tt.body)
			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

// testContext mirrors testing.T.Context (Go 1.24+): canceled when the test ends.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
