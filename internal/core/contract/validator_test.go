// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/uibutton/internal/core/contract"
)

/*
TestContractValidator_Metadata checks identity and tags.
*/
func TestContractValidator_Metadata(t *testing.T) {
	validator := contract.NewContractValidator()

	assert.Equal(t, contract.ContractValidatorName, validator.Name())
	assert.Equal(t, 100, validator.Priority())
	assert.True(t, validator.SupportsValidationType("business-rules"))
	assert.False(t, validator.SupportsValidationType("wcag"))
}

// withIconPositionEnum is the standard contract with the iconPosition enum replaced.
func withIconPositionEnum(t *testing.T, enum []string) *contract.Contract {
	t.Helper()

	standard := standardContract(t, "standard")
	props := standard.Props()
	for i := range props {
		if props[i].Name == "iconPosition" {
			props[i].Enum = enum
		}
	}

	accessibility := standard.Accessibility()
	c, err := contract.New(contract.CreateParams{
		Name:          "custom",
		Variants:      standard.Variants(),
		Props:         props,
		Accessibility: &accessibility,
	})
	require.NoError(t, err)
	return c
}

/*
TestContractValidator_Validate runs the structural and accessibility rules.
*/
func TestContractValidator_Validate(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) *contract.Contract
		errors   []string
		warnings []string
	}{
		{
			name:     "standard",
			build:    func(t *testing.T) *contract.Contract { return standardContract(t, "standard") },
			errors:   []string{},
			warnings: []string{"Icon buttons should have aria-label prop for accessibility"},
		},
		{
			name: "bare",
			build: func(t *testing.T) *contract.Contract {
				c, err := contract.New(contract.CreateParams{Name: "bare"})
				require.NoError(t, err)
				return c
			},
			errors: []string{
				"Button contracts must have 'size' variant",
				"Button contracts must have 'intent' variant",
				"Button contracts must have a label prop",
			},
			warnings: []string{
				"Button contracts typically include 'tone' variant",
				"Button contracts typically include 'emphasis' variant",
				"Button contracts typically include disabled state",
				"Button contracts should require labels for accessibility",
			},
		},
		{
			name: "broken_props_and_keys",
			build: func(t *testing.T) *contract.Contract {
				c, err := contract.New(contract.CreateParams{
					Name: "broken",
					Variants: []contract.Variant{
						contract.MustVariant("size", "sm"),
						contract.MustVariant("intent", "primary"),
						contract.MustVariant("tone", "normal"),
						contract.MustVariant("emphasis", "high"),
					},
					Props: []contract.Prop{
						{Name: "label", Type: contract.PropString},
						{Name: "disabled", Type: contract.PropString, Default: true},
						{Name: "loading", Type: contract.PropNumber},
						{Name: "icon", Type: contract.PropString},
						{Name: "ariaLabel", Type: contract.PropString},
						{Name: "iconPosition", Type: contract.PropString, Enum: []string{"top"}},
					},
					Accessibility: &contract.Accessibility{
						Role:     "link",
						Keyboard: []string{"Enter", "Ctrl+K"},
						Label:    true,
					},
				})
				require.NoError(t, err)
				return c
			},
			errors: []string{
				"Disabled prop must be of type boolean",
				"Loading prop must be of type boolean",
				`Icon position should allow "start" and "end" values`,
				`Button contracts must have role "button"`,
				`Button contracts must support "Space" keyboard action`,
				"Button contracts must be focusable",
				"Invalid keyboard actions: Ctrl+K",
			},
			warnings: []string{
				"Disabled prop should default to false",
				"Primary intent should support multiple sizes (xs, sm, md, lg, xl)",
			},
		},
		{
			name:     "empty_icon_position_enum",
			build:    func(t *testing.T) *contract.Contract { return withIconPositionEnum(t, []string{}) },
			errors:   []string{`Icon position should allow "start" and "end" values`},
			warnings: []string{"Icon buttons should have aria-label prop for accessibility"},
		},
		{
			name:     "unconstrained_icon_position",
			build:    func(t *testing.T) *contract.Contract { return withIconPositionEnum(t, nil) },
			errors:   []string{},
			warnings: []string{"Icon buttons should have aria-label prop for accessibility"},
		},
	}

	validator := contract.NewContractValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.Validate(context.Background(), tt.build(t))
			require.NoError(t, err)

			assert.Equal(t, tt.errors, result.Errors)
			assert.Equal(t, tt.warnings, result.Warnings)
			assert.Equal(t, len(tt.errors) == 0, result.IsValid)
		})
	}
}

/*
TestContractValidator_CancelledContext reports the context error.
*/
func TestContractValidator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := contract.NewContractValidator().Validate(ctx, standardContract(t, "standard"))
	require.ErrorIs(t, err, context.Canceled)
}
