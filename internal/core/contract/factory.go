// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"github.com/taibuivan/uibutton/internal/core/shared"
)

// # Request Payloads

// VariantInput is the raw form of a variant in a creation request.
type VariantInput struct {
	Type   string   `json:"type"   yaml:"type"`
	Values []string `json:"values" yaml:"values"`
}

// CreateContractRequest is the raw form of a contract, as received over HTTP
// or read from a seed file.
type CreateContractRequest struct {
	ID            string         `json:"id,omitempty"            yaml:"id,omitempty"`
	Name          string         `json:"name"                    yaml:"name"`
	Variants      []VariantInput `json:"variants,omitempty"      yaml:"variants,omitempty"`
	Props         []Prop         `json:"props,omitempty"         yaml:"props,omitempty"`
	Accessibility *Accessibility `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`
}

// # Factory

// Factory builds contracts from raw requests.
type Factory interface {
	CreateContract(request CreateContractRequest) (*Contract, error)
	CreateStandardButtonContract(name string) (*Contract, error)
}

// StandardFactory is the default [Factory].
type StandardFactory struct {
	clock shared.Clock
}

// NewStandardFactory creates a [StandardFactory]. A nil clock selects the system clock.
func NewStandardFactory(clock shared.Clock) *StandardFactory {
	return &StandardFactory{clock: clock}
}

// CreateContract converts the raw variants and delegates to [New].
func (factory *StandardFactory) CreateContract(request CreateContractRequest) (*Contract, error) {
	variants := make([]Variant, 0, len(request.Variants))
	for _, input := range request.Variants {
		variant, err := NewVariant(input.Type, input.Values)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	return New(CreateParams{
		ID:            request.ID,
		Name:          request.Name,
		Variants:      variants,
		Props:         request.Props,
		Accessibility: request.Accessibility,
		Clock:         factory.clock,
	})
}

// CreateStandardButtonContract builds a contract with the canonical variants,
// props, and accessibility rules.
func (factory *StandardFactory) CreateStandardButtonContract(name string) (*Contract, error) {
	return factory.CreateContract(StandardRequest(name))
}

// StandardRequest returns the canonical contract request for name.
func StandardRequest(name string) CreateContractRequest {
	return CreateContractRequest{
		Name: name,
		Variants: []VariantInput{
			{Type: string(VariantSize), Values: DefaultSizes},
			{Type: string(VariantIntent), Values: DefaultIntents},
			{Type: string(VariantTone), Values: DefaultTones},
			{Type: string(VariantEmphasis), Values: DefaultEmphases},
		},
		Props: []Prop{
			{Name: "disabled", Type: PropBoolean, Default: false},
			{Name: "loading", Type: PropBoolean, Default: false},
			{Name: "icon", Type: PropString},
			{Name: "iconPosition", Type: PropString, Enum: []string{"start", "end"}, Default: "start"},
			{Name: "label", Type: PropString, Required: true, Description: "Button label text"},
		},
		Accessibility: &Accessibility{
			Role:      "button",
			Keyboard:  []string{"Enter", "Space"},
			Focusable: true,
			Label:     true,
		},
	}
}
