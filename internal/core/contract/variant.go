// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/validate"
)

// # Variant Types

// VariantType is one axis of visual choice a contract can declare.
type VariantType string

const (
	VariantSize     VariantType = "size"
	VariantIntent   VariantType = "intent"
	VariantTone     VariantType = "tone"
	VariantEmphasis VariantType = "emphasis"
)

// VariantTypes lists the fixed vocabulary of variant axes.
var VariantTypes = []VariantType{VariantSize, VariantIntent, VariantTone, VariantEmphasis}

// IsValid reports whether t belongs to the vocabulary.
func (t VariantType) IsValid() bool {
	for _, known := range VariantTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t VariantType) String() string { return string(t) }

// Canonical value sets used by the variant factories.
var (
	DefaultSizes     = []string{"xs", "sm", "md", "lg", "xl"}
	DefaultIntents   = []string{"primary", "secondary", "success", "warning", "error", "info"}
	DefaultTones     = []string{"subtle", "normal", "strong"}
	DefaultEmphases  = []string{"low", "medium", "high"}
	defaultValueSets = map[VariantType][]string{
		VariantSize:     DefaultSizes,
		VariantIntent:   DefaultIntents,
		VariantTone:     DefaultTones,
		VariantEmphasis: DefaultEmphases,
	}
)

// # Value Object

// variantData is the payload compared by [Variant.Equals].
type variantData struct {
	Type   VariantType `json:"type"`
	Values []string    `json:"values"`
}

// Variant is a validated {type, values} pair. Values keep their order and may repeat.
type Variant struct {
	data shared.ValueObject[variantData]
}

// NewVariant validates and wraps a variant.
//
// Values are checked for blankness after trimming but stored as given.
func NewVariant(variantType string, values []string) (Variant, error) {
	if strings.TrimSpace(variantType) == "" {
		return Variant{}, validate.FieldErr(FieldVariantType, "Button variant type must be a non-empty string")
	}

	if (&validate.Validator{}).NonEmpty(FieldVariantValues, values).HasErrors() {
		return Variant{}, validate.FieldErr(FieldVariantValues, "Button variant must have at least one value")
	}

	kind := VariantType(variantType)
	if !kind.IsValid() {
		return Variant{}, validate.FieldErr(FieldVariantType, fmt.Sprintf(
			"Invalid button variant type: %s. Must be one of: size, intent, tone, emphasis", variantType))
	}

	if (&validate.Validator{}).EachNonBlank(FieldVariantValues, values).HasErrors() {
		return Variant{}, validate.FieldErr(FieldVariantValues, "Button variant values must be non-empty strings")
	}

	stored := append([]string(nil), values...)
	return Variant{data: shared.NewValueObject(variantData{Type: kind, Values: stored})}, nil
}

// MustVariant is [NewVariant] for literals. It panics on invalid input.
func MustVariant(variantType string, values ...string) Variant {
	variant, err := NewVariant(variantType, values)
	if err != nil {
		panic(err)
	}
	return variant
}

// # Factories

// SizeVariant builds a size variant; no values selects xs through xl.
func SizeVariant(values ...string) (Variant, error) { return canonical(VariantSize, values) }

// IntentVariant builds an intent variant; no values selects the six standard intents.
func IntentVariant(values ...string) (Variant, error) { return canonical(VariantIntent, values) }

// ToneVariant builds a tone variant; no values selects subtle, normal, strong.
func ToneVariant(values ...string) (Variant, error) { return canonical(VariantTone, values) }

// EmphasisVariant builds an emphasis variant; no values selects low, medium, high.
func EmphasisVariant(values ...string) (Variant, error) { return canonical(VariantEmphasis, values) }

func canonical(kind VariantType, values []string) (Variant, error) {
	if len(values) == 0 {
		values = defaultValueSets[kind]
	}
	return NewVariant(string(kind), values)
}

// # Accessors

// Type returns the variant axis.
func (v Variant) Type() VariantType { return v.data.Value().Type }

// Values returns a copy of the allowed values in declaration order.
func (v Variant) Values() []string {
	return append([]string(nil), v.data.Value().Values...)
}

// DefaultValue is the first value.
func (v Variant) DefaultValue() string {
	values := v.data.Value().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// HasValue reports whether value is allowed.
func (v Variant) HasValue(value string) bool {
	for _, candidate := range v.data.Value().Values {
		if candidate == value {
			return true
		}
	}
	return false
}

// Equals compares type and the ordered values.
func (v Variant) Equals(other Variant) bool { return v.data.Equals(other.data) }

// String renders the variant as JSON.
func (v Variant) String() string { return v.data.String() }

// MarshalJSON implements [json.Marshaler].
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data.Value())
}
