// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package props

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/uibutton/internal/platform/request"
	"github.com/taibuivan/uibutton/internal/platform/respond"
)

// Handler exposes props resolution over HTTP.
type Handler struct{}

// NewHandler constructs a props [Handler].
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns a [chi.Router] with the props endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/resolve", handler.resolve)
	return router
}

/*
POST /api/v1/props/resolve.

Description: Completes a partial props object. An empty body resolves to
the defaults.

Response:
  - 200: Resolved
  - 400: VALIDATION_ERROR for an unknown type
*/
func (handler *Handler) resolve(writer http.ResponseWriter, request *http.Request) {
	var input Props
	if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := Validate(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Resolve(input))
}
