// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/uibutton/internal/core/contract"
	"github.com/taibuivan/uibutton/internal/platform/ctxutil"
	"github.com/taibuivan/uibutton/internal/platform/middleware"
	"github.com/taibuivan/uibutton/internal/platform/sec"
)

type apiFixture struct {
	service *contract.Service
	router  http.Handler
}

func newAPI(guard func(http.Handler) http.Handler) *apiFixture {
	service, _ := newService(&recordingPublisher{}, contract.NewContractValidator())
	return &apiFixture{service: service, router: contract.NewHandler(service, guard).Routes()}
}

// do serves one request, authenticated with role unless role is empty.
func (fixture *apiFixture) do(t *testing.T, role sec.UserRole, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	if role != "" {
		claims := &sec.AuthClaims{UserID: "u-1", Username: "tester", Role: string(role)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_CreateContract returns the stored snapshot and the envelope.
*/
func TestHandler_CreateContract(t *testing.T) {
	api := newAPI(middleware.Passthrough)

	recorder := api.do(t, "", http.MethodPost, "/", `{
		"name": "icon-btn",
		"variants": [{"type": "size", "values": ["sm", "md"]}],
		"props": [{"name": "label", "type": "string", "required": true}]
	}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	jsonassert.New(t).Assertf(recorder.Body.String(), `{
		"data": {
			"contract": {
				"id": "<<PRESENCE>>",
				"name": "icon-btn",
				"variants": [{"type": "size", "values": ["sm", "md"]}],
				"props": [{"name": "label", "type": "string", "required": true}],
				"accessibility": {"role": "button", "keyboard": ["Enter", "Space"], "focusable": true},
				"notes": ["Button contracts usually declare both size and intent variants"],
				"created_at": "<<PRESENCE>>",
				"updated_at": "<<PRESENCE>>"
			},
			"success": true,
			"message": "Button contract 'icon-btn' created successfully",
			"accessibility": {"is_accessible": true, "violations": []},
			"domain_events": "<<PRESENCE>>"
		}
	}`)
}

/*
TestHandler_CreateContract_Failures maps the envelope cause to a status.
*/
func TestHandler_CreateContract_Failures(t *testing.T) {
	api := newAPI(middleware.Passthrough)
	require.Equal(t, http.StatusCreated, api.do(t, "", http.MethodPost, "/", `{"name":"taken"}`).Code)

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{
			name:   "suggested_name",
			body:   `{"name":"Primary Button"}`,
			status: http.StatusBadRequest,
			want: `{
				"error": "Contract name must be lowercase with only alphanumeric characters and dashes",
				"code": "VALIDATION_ERROR",
				"details": [
					{"field": "name", "message": "Contract name must be lowercase with only alphanumeric characters and dashes"},
					{"field": "name", "message": "Did you mean 'primary-button'?"}
				]
			}`,
		},
		{
			name:   "taken",
			body:   `{"name":"taken"}`,
			status: http.StatusConflict,
			want:   `{"error": "Button contract name 'taken' is already taken", "code": "CONFLICT"}`,
		},
		{
			name:   "malformed",
			body:   `{"name":`,
			status: http.StatusBadRequest,
			want:   `{"error": "Invalid JSON payload", "code": "VALIDATION_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := api.do(t, "", http.MethodPost, "/", tt.body)

			assert.Equal(t, tt.status, recorder.Code)
			jsonassert.New(t).Assertf(recorder.Body.String(), "%s", tt.want)
		})
	}
}

/*
TestHandler_Lookup covers the public read endpoints.
*/
func TestHandler_Lookup(t *testing.T) {
	api := newAPI(middleware.Passthrough)
	require.Equal(t, http.StatusCreated, api.do(t, "", http.MethodPost, "/standard", `{"name":"standard"}`).Code)
	require.Equal(t, http.StatusCreated, api.do(t, "", http.MethodPost, "/", `{"name":"bare"}`).Code)

	stored, err := api.service.GetByName(testContext(t), "standard")
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
		status int
		want   string
	}{
		{
			name:   "by_id",
			target: "/" + stored.ID(),
			status: http.StatusOK,
			want:   `{"data": {"id": "` + stored.ID() + `", "name": "standard", "variants": "<<PRESENCE>>", "props": "<<PRESENCE>>", "accessibility": "<<PRESENCE>>", "created_at": "<<PRESENCE>>", "updated_at": "<<PRESENCE>>"}}`,
		},
		{
			name:   "by_name_missing",
			target: "/by-name/unknown",
			status: http.StatusNotFound,
			want:   `{"error": "Button contract not found", "code": "NOT_FOUND"}`,
		},
		{
			name:   "list_filtered",
			target: "/?variant=size,intent&limit=5",
			status: http.StatusOK,
			want:   `{"data": ["<<PRESENCE>>"], "meta": {"page": 1, "limit": 5, "total": 1, "total_pages": 1}}`,
		},
		{
			name:   "list_empty_page",
			target: "/?page=3&limit=5",
			status: http.StatusOK,
			want:   `{"data": [], "meta": {"page": 3, "limit": 5, "total": 2, "total_pages": 1}}`,
		},
		{
			name:   "list_bad_variant",
			target: "/?variant=shape",
			status: http.StatusBadRequest,
			want:   `{"error": "Invalid variant type: shape", "code": "VALIDATION_ERROR", "details": [{"field": "variant", "message": "Must be one of: size, intent, tone, emphasis"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := api.do(t, "", http.MethodGet, tt.target, "")

			assert.Equal(t, tt.status, recorder.Code)
			jsonassert.New(t).Assertf(recorder.Body.String(), "%s", tt.want)
		})
	}
}

/*
TestHandler_ValidateContract returns the verdict with 200.
*/
func TestHandler_ValidateContract(t *testing.T) {
	api := newAPI(middleware.Passthrough)
	created, err := api.service.CreateStandard(testContext(t), "standard")
	require.NoError(t, err)

	recorder := api.do(t, "", http.MethodPost, "/validate/"+created.ID(), "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	jsonassert.New(t).Assertf(recorder.Body.String(), `{
		"data": {
			"contract_id": "%s",
			"name": "standard",
			"is_valid": true,
			"validators": [{
				"validator": "%s",
				"is_valid": true,
				"errors": [],
				"warnings": ["Icon buttons should have aria-label prop for accessibility"]
			}],
			"combined": {
				"is_valid": true,
				"errors": [],
				"warnings": ["Icon buttons should have aria-label prop for accessibility"]
			}
		}
	}`, created.ID(), contract.ContractValidatorName)

	assert.Equal(t, http.StatusNotFound, api.do(t, "", http.MethodPost, "/validate/missing", "").Code)
}

/*
TestHandler_AddVariantAndDelete covers the remaining management endpoints.
*/
func TestHandler_AddVariantAndDelete(t *testing.T) {
	api := newAPI(middleware.Passthrough)
	created, err := api.service.CreateStandard(testContext(t), "standard")
	require.NoError(t, err)

	recorder := api.do(t, "", http.MethodPost, "/"+created.ID()+"/variants", `{"type":"size","values":["xl"]}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	jsonassert.New(t).Assertf(recorder.Body.String(), `{
		"error": "Variant type 'size' already exists in this contract",
		"code": "INVALID_OPERATION"
	}`)

	assert.Equal(t, http.StatusNoContent, api.do(t, "", http.MethodDelete, "/"+created.ID(), "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, "", http.MethodDelete, "/"+created.ID(), "").Code)

	bare := api.do(t, "", http.MethodPost, "/", `{"name":"bare"}`)
	require.Equal(t, http.StatusCreated, bare.Code)
	stored, err := api.service.GetByName(testContext(t), "bare")
	require.NoError(t, err)

	recorder = api.do(t, "", http.MethodPost, "/"+stored.ID()+"/variants", `{"type":"tone","values":["subtle"]}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	jsonassert.New(t).Assertf(recorder.Body.String(), `{
		"data": {
			"id": "%s",
			"name": "bare",
			"variants": [{"type": "tone", "values": ["subtle"]}],
			"props": [],
			"accessibility": "<<PRESENCE>>",
			"notes": ["Button contracts usually declare both size and intent variants"],
			"created_at": "<<PRESENCE>>",
			"updated_at": "<<PRESENCE>>"
		}
	}`, stored.ID())
}

/*
TestHandler_Guard protects management endpoints only.
*/
func TestHandler_Guard(t *testing.T) {
	api := newAPI(middleware.RequireRole(sec.RoleEditor))

	tests := []struct {
		name   string
		role   sec.UserRole
		method string
		target string
		body   string
		status int
	}{
		{"anonymous_read", "", http.MethodGet, "/", "", http.StatusOK},
		{"anonymous_create", "", http.MethodPost, "/standard", `{"name":"a"}`, http.StatusUnauthorized},
		{"viewer_create", sec.RoleViewer, http.MethodPost, "/standard", `{"name":"b"}`, http.StatusForbidden},
		{"editor_create", sec.RoleEditor, http.MethodPost, "/standard", `{"name":"c"}`, http.StatusCreated},
		{"admin_create", sec.RoleAdmin, http.MethodPost, "/standard", `{"name":"d"}`, http.StatusCreated},
		{"anonymous_delete", "", http.MethodDelete, "/some-id", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := api.do(t, tt.role, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, recorder.Code)
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
