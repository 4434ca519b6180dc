// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/uibutton/internal/platform/ctxutil"
	"github.com/taibuivan/uibutton/internal/platform/middleware"
	"github.com/taibuivan/uibutton/internal/platform/sec"
)

// stubVerifier accepts a single token.
type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &sec.AuthClaims{UserID: "u-1", Username: "editor", Role: string(sec.RoleEditor)}, nil
}

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

func withRole(request *http.Request, role sec.UserRole) *http.Request {
	claims := &sec.AuthClaims{UserID: "u-1", Role: string(role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

/*
TestRequireRole rejects anonymous and under-privileged callers.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"viewer", sec.RoleViewer, http.StatusForbidden},
		{"unknown_role", "guest", http.StatusForbidden},
		{"editor", sec.RoleEditor, http.StatusOK},
		{"admin", sec.RoleAdmin, http.StatusOK},
	}

	handler := middleware.RequireRole(sec.RoleEditor)(okHandler)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.role != "" {
				request = withRole(request, tt.role)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestPassthrough leaves the handler untouched.
*/
func TestPassthrough(t *testing.T) {
	recorder := httptest.NewRecorder()
	middleware.Passthrough(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestAuthenticate injects claims for valid bearer tokens.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		status   int
		wantUser string
	}{
		{"anonymous", "", http.StatusOK, ""},
		{"valid", "Bearer good", http.StatusOK, "editor"},
		{"bad_scheme", "Basic good", http.StatusUnauthorized, ""},
		{"bad_token", "Bearer nope", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if claims := ctxutil.GetAuthUser(request.Context()); claims != nil {
					seen = claims.Username
				}
				writer.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			middleware.Authenticate(stubVerifier{})(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.wantUser, seen)
		})
	}
}

/*
TestRateLimit answers 429 once the burst is spent.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.001, 1)(okHandler)

	serve := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.2"))
}

/*
TestPanicRecovery turns a panic into a 500.
*/
func TestPanicRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	recorder := httptest.NewRecorder()
	middleware.PanicRecovery(logger)(panicking).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","error":"An unexpected error occurred"}`, recorder.Body.String())
}

/*
TestRequestID keeps a client supplied ID and generates one otherwise.
*/
func TestRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	})
	handler := middleware.RequestID()(next)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "req-42")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-42", seen)
}

// corsConfig is a fixed CORS policy.
type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool { return c.development }
func (c corsConfig) AllowedOrigins() []string { return []string{"uibutton.app"} }

/*
TestCORS allows configured origin suffixes and answers pre-flights.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		origin      string
		method      string
		status      int
		allowed     bool
	}{
		{"allowed_suffix", false, "https://docs.uibutton.app", http.MethodGet, http.StatusOK, true},
		{"foreign_origin", false, "https://evil.example", http.MethodGet, http.StatusOK, false},
		{"development_any", true, "http://localhost:3000", http.MethodGet, http.StatusOK, true},
		{"preflight", false, "https://uibutton.app", http.MethodOptions, http.StatusNoContent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, "/", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := httptest.NewRecorder()
			middleware.CORS(corsConfig{development: tt.development})(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestRealIP prefers proxy headers over the remote address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.3")
	assert.Equal(t, "198.51.100.3", middleware.RealIP(request))
}
