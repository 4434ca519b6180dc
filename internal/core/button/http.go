// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/uibutton/internal/platform/request"
	"github.com/taibuivan/uibutton/internal/platform/respond"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for button evaluation.
type Handler struct {
	service *Service
}

// NewHandler constructs a new button [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the button endpoints. All are public:
// nothing is persisted.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createButton)
	router.Get("/validators", handler.listValidators)
	router.Get("/presets/{preset}", handler.describePreset)
	router.Post("/presets/{preset}", handler.createPreset)

	return router
}

// # Response Payloads

// createButtonResponse is the outbound JSON schema for an evaluated button.
type createButtonResponse struct {
	Button Snapshot `json:"button"`
	*CreateButtonOutput
}

func newCreateButtonResponse(output *CreateButtonOutput) createButtonResponse {
	return createButtonResponse{Button: output.Button.Snapshot(), CreateButtonOutput: output}
}

// # Button Endpoints

/*
POST /api/v1/buttons.

Description: Builds a button from the payload and returns its validation report.

Request:
  - button_type: string (button, submit, reset)
  - emphasis: string (low, medium, high)
  - has_icon: bool
  - icon_position: string (start, end)

Response:
  - 201: createButtonResponse
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) createButton(writer http.ResponseWriter, request *http.Request) {
	var input CreateButtonInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	output, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, newCreateButtonResponse(output))
}

/*
GET /api/v1/buttons/validators.

Response:
  - 200: []ValidatorInfo
*/
func (handler *Handler) listValidators(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Validators())
}

/*
GET /api/v1/buttons/presets/{preset}.

Description: Returns the creation payload of a preset without evaluating it.

Request:
  - preset: string (submit, cancel, primary, secondary)
  - emphasis, has_icon, icon_position: optional query overrides

Response:
  - 200: CreateButtonInput
  - 404: Unknown preset
*/
func (handler *Handler) describePreset(writer http.ResponseWriter, request *http.Request) {
	options, err := presetOptionsFromQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := PresetInput(requestutil.Param(request, "preset"), options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
POST /api/v1/buttons/presets/{preset}.

Description: Evaluates a preset. Accepts the same query overrides as the GET form.

Response:
  - 201: createButtonResponse
  - 404: Unknown preset
*/
func (handler *Handler) createPreset(writer http.ResponseWriter, request *http.Request) {
	options, err := presetOptionsFromQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	output, err := handler.service.CreatePreset(request.Context(), requestutil.Param(request, "preset"), options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, newCreateButtonResponse(output))
}

// # Helpers

func presetOptionsFromQuery(request *http.Request) (PresetOptions, error) {
	query := request.URL.Query()

	options := PresetOptions{
		Emphasis:     Emphasis(query.Get("emphasis")),
		IconPosition: IconPosition(query.Get("icon_position")),
	}

	if raw := query.Get("has_icon"); raw != "" {
		hasIcon, err := strconv.ParseBool(raw)
		if err != nil {
			return PresetOptions{}, validate.FieldErr("has_icon", "Must be a boolean")
		}
		options.HasIcon = hasIcon
	}

	return options, nil
}
