// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package props_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/uibutton/internal/core/props"
	"github.com/taibuivan/uibutton/internal/platform/apperr"
	"github.com/taibuivan/uibutton/pkg/pointer"
)

/*
TestResolve fills every unset attribute.
*/
func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input props.Props
		want  props.Resolved
	}{
		{
			name:  "empty",
			input: props.Props{},
			want: props.Resolved{
				Type:    "button",
				Variant: props.DefaultVariant,
			},
		},
		{
			name: "partial_variant",
			input: props.Props{
				Type:    pointer.To("submit"),
				Variant: &props.PartialVariant{Size: pointer.To("lg"), Tone: pointer.To("ghost")},
				State:   &props.PartialState{Loading: pointer.To(true)},
			},
			want: props.Resolved{
				Type:    "submit",
				Variant: props.Variant{Size: "lg", Intent: "primary", Tone: "ghost", Emphasis: "medium"},
				State:   props.State{Loading: true},
			},
		},
		{
			name: "link_attributes",
			input: props.Props{
				ID:     pointer.To("cta"),
				Name:   pointer.To("signup"),
				Href:   pointer.To("/signup"),
				Target: pointer.To("_blank"),
				Rel:    pointer.To("noopener"),
			},
			want: props.Resolved{
				ID:      "cta",
				Name:    "signup",
				Type:    "button",
				Href:    "/signup",
				Target:  "_blank",
				Rel:     "noopener",
				Variant: props.DefaultVariant,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, props.Resolve(tt.input))
		})
	}
}

/*
TestResolve_A11yIsCopied keeps the input and output independent.
*/
func TestResolve_A11yIsCopied(t *testing.T) {
	a11y := &props.A11y{
		AriaLabel:   "Close",
		AriaPressed: pointer.To(false),
		TabIndex:    pointer.To(-1),
	}

	resolved := props.Resolve(props.Props{A11y: a11y})
	require.NotNil(t, resolved.A11y.AriaPressed)
	require.NotNil(t, resolved.A11y.TabIndex)

	*a11y.AriaPressed = true
	*a11y.TabIndex = 0

	assert.Equal(t, "Close", resolved.A11y.AriaLabel)
	assert.False(t, *resolved.A11y.AriaPressed)
	assert.Equal(t, -1, *resolved.A11y.TabIndex)
	assert.Nil(t, resolved.A11y.AriaHidden)
}

/*
TestValidate only checks the type vocabulary.
*/
func TestValidate(t *testing.T) {
	assert.NoError(t, props.Validate(props.Props{}))
	assert.NoError(t, props.Validate(props.Props{Type: pointer.To("reset")}))

	err := props.Validate(props.Props{Type: pointer.To("link")})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestHandler_Resolve completes bodies over HTTP.
*/
func TestHandler_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{
			name:   "empty_body",
			body:   "",
			status: http.StatusOK,
			want: `{"data": {
				"id": "", "name": "", "type": "button", "href": "", "target": "", "rel": "",
				"variant": {"size": "md", "intent": "primary", "tone": "solid", "emphasis": "medium"},
				"state": {"disabled": false, "loading": false},
				"a11y": {}
			}}`,
		},
		{
			name:   "partial",
			body:   `{"variant":{"intent":"danger"},"state":{"disabled":true},"a11y":{"ariaLabel":"Delete","ariaHidden":false}}`,
			status: http.StatusOK,
			want: `{"data": {
				"id": "", "name": "", "type": "button", "href": "", "target": "", "rel": "",
				"variant": {"size": "md", "intent": "danger", "tone": "solid", "emphasis": "medium"},
				"state": {"disabled": true, "loading": false},
				"a11y": {"ariaLabel": "Delete", "ariaHidden": false}
			}}`,
		},
		{
			name:   "bad_type",
			body:   `{"type":"link"}`,
			status: http.StatusBadRequest,
			want:   `{"error": "Must be one of: button, submit, reset", "code": "VALIDATION_ERROR", "details": [{"field": "type", "message": "Must be one of: button, submit, reset"}]}`,
		},
		{
			name:   "malformed",
			body:   `{"type":`,
			status: http.StatusBadRequest,
			want:   `{"error": "Invalid JSON payload", "code": "VALIDATION_ERROR"}`,
		},
	}

	router := props.NewHandler().Routes()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			jsonassert.New(t).Assertf(recorder.Body.String(), "%s", tt.want)
		})
	}
}
