// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/validate"
	"github.com/taibuivan/uibutton/pkg/slug"
)

// CreateContractResponse is the envelope returned by [CreateContractUseCase.Execute].
//
// A failed creation is data, not an error: Success is false, Contract is nil,
// and Err keeps the classified cause for the transport layer.
type CreateContractResponse struct {
	Contract      *Contract                  `json:"-"`
	Success       bool                       `json:"success"`
	Message       string                     `json:"message"`
	Suggestion    string                     `json:"suggestion,omitempty"`
	Accessibility shared.AccessibilityReport `json:"accessibility"`
	DomainEvents  []shared.Event             `json:"domain_events"`
	Err           error                      `json:"-"`
}

// CreateContractUseCase validates a raw request and builds the contract through a [Factory].
type CreateContractUseCase struct {
	factory Factory
}

// NewCreateContractUseCase creates the use case around factory.
func NewCreateContractUseCase(factory Factory) *CreateContractUseCase {
	return &CreateContractUseCase{factory: factory}
}

/*
Execute creates a contract and runs its own accessibility check.

Description: Every failure, including a factory error or a cancelled
context, becomes a failure envelope. When the name is malformed but can be
repaired, the repaired identifier is offered as Suggestion.

Parameters:
  - ctx: context.Context
  - request: CreateContractRequest

Returns:
  - *CreateContractResponse: Never nil
*/
func (useCase *CreateContractUseCase) Execute(ctx context.Context, request CreateContractRequest) *CreateContractResponse {
	if err := ctx.Err(); err != nil {
		return failure(err, "")
	}

	if err := validateRequest(request); err != nil {
		return failure(err, suggestName(request.Name))
	}

	contract, err := useCase.factory.CreateContract(request)
	if err != nil {
		return failure(err, "")
	}

	accessibility := contract.ValidateAccessibility()

	return &CreateContractResponse{
		Contract:      contract,
		Success:       true,
		Message:       fmt.Sprintf("Button contract '%s' created successfully", request.Name),
		Accessibility: accessibility,
		DomainEvents:  contract.DomainEvents(),
	}
}

// CreateStandardContract builds the canonical contract for name.
func (useCase *CreateContractUseCase) CreateStandardContract(name string) (*Contract, error) {
	return useCase.factory.CreateStandardButtonContract(name)
}

func validateRequest(request CreateContractRequest) error {
	if strings.TrimSpace(request.Name) == "" {
		return validate.FieldErr(FieldName, "Contract name is required and must be a string")
	}

	if !validate.IsIdentifier(request.Name) {
		return validate.FieldErr(FieldName, "Contract name must be lowercase with only alphanumeric characters and dashes")
	}

	for index, variant := range request.Variants {
		if variant.Type == "" || variant.Values == nil {
			return validate.FieldErr(fmt.Sprintf("%s[%d]", FieldVariants, index),
				fmt.Sprintf("Variant at index %d must have type and values", index))
		}
	}

	return nil
}

// suggestName offers a repaired identifier, or "" when none differs from raw.
func suggestName(raw string) string {
	suggestion := slug.Identifier(raw)
	if suggestion == raw || !validate.IsIdentifier(suggestion) {
		return ""
	}
	return suggestion
}

func failure(err error, suggestion string) *CreateContractResponse {
	return &CreateContractResponse{
		Success:       false,
		Message:       "Failed to create button contract: " + err.Error(),
		Suggestion:    suggestion,
		Accessibility: shared.AccessibilityReport{IsAccessible: false, Violations: []string{}},
		DomainEvents:  []shared.Event{},
		Err:           err,
	}
}
