// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/uibutton/internal/platform/apperr"
	requestutil "github.com/taibuivan/uibutton/internal/platform/request"
	"github.com/taibuivan/uibutton/internal/platform/respond"
	"github.com/taibuivan/uibutton/pkg/pagination"
	"github.com/taibuivan/uibutton/pkg/query"
	"github.com/taibuivan/uibutton/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for button contracts.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler constructs a contract [Handler]. guard wraps every mutating
// route; pass middleware.RequireRole or middleware.Passthrough.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Routes returns a [chi.Router] configured with the contract endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): listing, lookup, and validation reports.
//   - Management (Guarded): creation, variant changes, and deletion.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Endpoints
	router.Get("/", handler.listContracts)
	router.Get("/{id}", handler.getContract)
	router.Get("/by-name/{name}", handler.getContractByName)
	router.Post("/validate/{id}", handler.validateContract)

	// ## Management Endpoints
	router.Group(func(editor chi.Router) {
		editor.Use(handler.guard)

		editor.Post("/", handler.createContract)
		editor.Post("/standard", handler.createStandardContract)
		editor.Post("/{id}/variants", handler.addVariant)
		editor.Delete("/{id}", handler.deleteContract)
	})

	return router
}

// # Request Payloads

// createStandardRequest is the inbound JSON schema for a standard contract.
type createStandardRequest struct {
	Name string `json:"name"`
}

// # Response Payloads

// createContractResponse is the outbound JSON schema for a creation.
type createContractResponse struct {
	Contract Snapshot `json:"contract"`
	*CreateContractResponse
}

// # Discovery Endpoints

/*
GET /api/v1/contracts.

Request:
  - variant: optional comma-separated variant types; all must be declared
  - page, limit: pagination

Response:
  - 200: []Snapshot with pagination meta
  - 400: Unknown variant type
*/
func (handler *Handler) listContracts(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromRequest(request)
	contracts, total, err := handler.service.List(request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, snapshots(contracts), pagination.NewMeta(page.Page, page.Limit, total))
}

// GET /api/v1/contracts/{id}.
func (handler *Handler) getContract(writer http.ResponseWriter, request *http.Request) {
	contract, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contract.Snapshot())
}

// GET /api/v1/contracts/by-name/{name}.
func (handler *Handler) getContractByName(writer http.ResponseWriter, request *http.Request) {
	contract, err := handler.service.GetByName(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contract.Snapshot())
}

/*
POST /api/v1/contracts/validate/{id}.

Description: Runs every registered validator against the stored contract.
An invalid contract is still a 200; the verdict is in the body.

Response:
  - 200: ValidationReport
  - 404: Unknown contract
*/
func (handler *Handler) validateContract(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.Validate(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

// # Management Endpoints

/*
POST /api/v1/contracts.

Request:
  - CreateContractRequest

Response:
  - 201: createContractResponse
  - 400: VALIDATION_ERROR, with a suggested name when one exists
  - 409: CONFLICT when the name is taken
*/
func (handler *Handler) createContract(writer http.ResponseWriter, request *http.Request) {
	var input CreateContractRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response := handler.service.Create(request.Context(), input)
	if !response.Success {
		respond.Error(writer, request, withSuggestion(response))
		return
	}

	respond.Created(writer, createContractResponse{Contract: response.Contract.Snapshot(), CreateContractResponse: response})
}

// POST /api/v1/contracts/standard. The canonical definition is stored under the given name.
func (handler *Handler) createStandardContract(writer http.ResponseWriter, request *http.Request) {
	var input createStandardRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contract, err := handler.service.CreateStandard(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, contract.Snapshot())
}

/*
POST /api/v1/contracts/{id}/variants.

Request:
  - VariantInput

Response:
  - 200: Snapshot
  - 404: Unknown contract
  - 409: INVALID_OPERATION when the variant or its type is already declared
*/
func (handler *Handler) addVariant(writer http.ResponseWriter, request *http.Request) {
	var input VariantInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contract, err := handler.service.AddVariant(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contract.Snapshot())
}

// DELETE /api/v1/contracts/{id}.
func (handler *Handler) deleteContract(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

func filterFromQuery(request *http.Request) (Filter, error) {
	var filter Filter
	for _, raw := range query.StringSlice(request.URL.Query().Get("variant")) {
		variantType := VariantType(raw)
		if !variantType.IsValid() {
			return Filter{}, apperr.ValidationError(fmt.Sprintf("Invalid variant type: %s", raw),
				apperr.FieldError{Field: "variant", Message: "Must be one of: size, intent, tone, emphasis"})
		}
		filter.VariantTypes = append(filter.VariantTypes, variantType)
	}
	return filter, nil
}

func snapshots(contracts []*Contract) []Snapshot {
	result := slice.Map(contracts, func(contract *Contract) Snapshot { return contract.Snapshot() })
	if result == nil {
		return []Snapshot{}
	}
	return result
}

// withSuggestion returns the failure cause, carrying the suggested name as
// an extra field detail when the use case offered one.
func withSuggestion(response *CreateContractResponse) error {
	appError := apperr.As(response.Err)
	if appError == nil || response.Suggestion == "" {
		return response.Err
	}

	enriched := *appError
	enriched.Details = append(append([]apperr.FieldError{}, appError.Details...), apperr.FieldError{
		Field:   FieldName,
		Message: fmt.Sprintf("Did you mean '%s'?", response.Suggestion),
	})
	return &enriched
}
