// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package button

import (
	"context"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # Input / Output

// CreateButtonInput is the request of [CreateButtonUseCase.Execute].
type CreateButtonInput struct {
	ID           string `json:"id,omitempty"`
	ButtonType   string `json:"button_type"`
	Emphasis     string `json:"emphasis,omitempty"`
	HasIcon      bool   `json:"has_icon,omitempty"`
	IconPosition string `json:"icon_position,omitempty"`
}

// ValidationResults breaks the outcome down by source.
type ValidationResults struct {
	// Domain is always valid: a button that failed its invariants is never built.
	Domain        shared.Result              `json:"domain"`
	Validators    []shared.ValidatorResult   `json:"validators"`
	Accessibility shared.AccessibilityReport `json:"accessibility"`
	Combined      shared.Result              `json:"combined"`
}

// CreateButtonOutput is the response of [CreateButtonUseCase.Execute].
type CreateButtonOutput struct {
	Button *Button `json:"-"`
	// IsValid reflects only the registered validators.
	IsValid           bool              `json:"is_valid"`
	ValidationResults ValidationResults `json:"validation_results"`
	DomainEvents      []shared.Event    `json:"domain_events"`
}

// # Use Case

// CreateButtonUseCase builds a [Button] and runs every registered validator against it.
type CreateButtonUseCase struct {
	validators []shared.Validator[*Button]
}

// NewCreateButtonUseCase registers validators. They run in priority order.
func NewCreateButtonUseCase(validators ...shared.Validator[*Button]) *CreateButtonUseCase {
	return &CreateButtonUseCase{validators: validators}
}

/*
Execute validates the input, constructs the button, and merges every signal.

Description: Input errors and entity invariant errors fail the call with a
VALIDATION_ERROR. Once the button exists nothing else fails: a validator that
errors or panics becomes a failed per-validator entry. The combined result is
valid only when the validators found no errors and the entity's own
accessibility check passed.

Parameters:
  - ctx: context.Context
  - input: CreateButtonInput

Returns:
  - *CreateButtonOutput: The button, the report, and its drained events
  - error: VALIDATION_ERROR on bad input
*/
func (useCase *CreateButtonUseCase) Execute(ctx context.Context, input CreateButtonInput) (*CreateButtonOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	button, err := New(CreateParams{
		ID:           input.ID,
		ButtonType:   input.ButtonType,
		Emphasis:     Emphasis(input.Emphasis),
		HasIcon:      input.HasIcon,
		IconPosition: IconPosition(input.IconPosition),
	})
	if err != nil {
		return nil, err
	}

	results := shared.Run(ctx, useCase.validators, button)
	errors, warnings := shared.Merge(results)
	isValid := len(errors) == 0

	accessibility := button.ValidateAccessibility()

	combinedErrors := append(append([]string{}, errors...), accessibility.Violations...)

	return &CreateButtonOutput{
		Button:  button,
		IsValid: isValid,
		ValidationResults: ValidationResults{
			Domain:        shared.NewResult(nil, nil),
			Validators:    results,
			Accessibility: accessibility,
			Combined: shared.Result{
				IsValid:  isValid && accessibility.IsAccessible,
				Errors:   combinedErrors,
				Warnings: warnings,
			},
		},
		DomainEvents: button.DomainEvents(),
	}, nil
}

// validateInput checks the raw request before any entity is built.
func validateInput(input CreateButtonInput) error {
	validator := &validate.Validator{}

	if input.ButtonType == "" {
		validator.Custom(FieldButtonType, true, "Button type is required and must be a string")
	} else if _, err := ParseButtonType(input.ButtonType); err != nil {
		validator.Custom(FieldButtonType, true, "Invalid button type: "+err.Error())
	}

	if input.Emphasis != "" {
		validator.Custom(FieldEmphasis, !Emphasis(input.Emphasis).IsValid(),
			"Invalid emphasis. Must be one of: "+join(Emphases))
	}

	if input.IconPosition != "" {
		validator.Custom(FieldIconPosition, !IconPosition(input.IconPosition).IsValid(),
			`Icon position must be either "start" or "end"`)
	}

	return validator.Err()
}

// # Introspection

// AvailableValidators returns the registered validator names in registration order.
func (useCase *CreateButtonUseCase) AvailableValidators() []string {
	names := make([]string, len(useCase.validators))
	for i, validator := range useCase.validators {
		names[i] = validator.Name()
	}
	return names
}

// HasValidator reports whether a validator with name is registered.
func (useCase *CreateButtonUseCase) HasValidator(name string) bool {
	_, ok := useCase.ValidatorDescription(name)
	return ok
}

// ValidatorDescription returns the description of the named validator.
func (useCase *CreateButtonUseCase) ValidatorDescription(name string) (string, bool) {
	for _, validator := range useCase.validators {
		if validator.Name() == name {
			return validator.Description(), true
		}
	}
	return "", false
}
